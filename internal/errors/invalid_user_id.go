package errors

import "net/http"

var ErrInvalidUserID = &Exception{
	Message:    "invalid user id format",
	StatusCode: http.StatusBadRequest,
}
