package errors

import "net/http"

var ErrNoUpdateFields = &Exception{
	Message:    "no fields provided for update",
	StatusCode: http.StatusBadRequest,
}
