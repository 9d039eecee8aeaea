package errors

import "net/http"

var ErrDuplicateRecord = &Exception{
	Message:    "record already exists",
	StatusCode: http.StatusConflict,
}
