package errors

import "net/http"

var ErrUnauthorized = &Exception{
	Message:    "invalid or expired token",
	StatusCode: http.StatusUnauthorized,
}
