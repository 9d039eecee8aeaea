package errors

import "net/http"

var ErrInvalidStateTransition = &Exception{
	Message:    "invalid state transition",
	StatusCode: http.StatusConflict,
}
