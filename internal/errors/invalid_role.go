package errors

import "net/http"

var ErrInvalidRole = &Exception{
	Message:    "invalid role specified",
	StatusCode: http.StatusBadRequest,
}
