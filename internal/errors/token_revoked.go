package errors

import "net/http"

var ErrTokenRevoked = &Exception{
	Message:    "token has been revoked",
	StatusCode: http.StatusUnauthorized,
}
