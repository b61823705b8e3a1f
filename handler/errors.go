package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse means a handler returned nil instead of a Response.
var ErrNilResponse = errors.New("handler returned nil response")

// HTTPError is an error with a status and a stable machine-readable key.
// Message is shown to clients.
type HTTPError struct {
	Status  int
	Key     string
	Message string
}

func (e HTTPError) Error() string { return e.Message }

var (
	ErrNotFound         = HTTPError{Status: http.StatusNotFound, Key: "not_found", Message: "resource not found"}
	ErrMethodNotAllowed = HTTPError{Status: http.StatusMethodNotAllowed, Key: "method_not_allowed", Message: "method not allowed"}
	ErrInternal         = HTTPError{Status: http.StatusInternalServerError, Key: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
)
