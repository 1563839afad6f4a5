package errors

import "net/http"

var ErrForbidden = &Exception{
	Message:    "insufficient permissions or role",
	StatusCode: http.StatusForbidden,
}
