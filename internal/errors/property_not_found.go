package errors

import "net/http"

var ErrPropertyNotFound = &Exception{
	Message:    "property not found",
	StatusCode: http.StatusNotFound,
}
