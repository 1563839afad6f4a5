package errors

import (
	"errors"
	"net/http"
)

// Exception is a sentinel error carrying the HTTP status it maps to:
// 401 for authentication failures, 403 for role mismatches, 400 for
// malformed input, 404 for absent entities.
type Exception struct {
	Message    string
	StatusCode int
}

func (e *Exception) Error() string {
	return e.Message
}

// StatusCode resolves an error to its HTTP status; anything that is
// not an Exception is a store or system failure and maps to 500.
func StatusCode(err error) int {
	var appErr *Exception
	if errors.As(err, &appErr) {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
