package errors

import "net/http"

var ErrTooManyAttachments = &Exception{
	Message:    "too many attachments",
	StatusCode: http.StatusBadRequest,
}
