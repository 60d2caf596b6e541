package client

import (
	"errors"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

const (
	// MsgServerError is used when an error body cannot be parsed.
	MsgServerError = "Ocurrió un error en el servidor"
	// MsgNetworkError is used when an error body parses but carries no message.
	MsgNetworkError = "Error de red o del servidor"
)

// RequestError is a non-2xx response from the backend.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

func (e *RequestError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}

// Message returns the user-facing text of err: the backend message for
// request errors, a generic one for anything else.
func Message(err error) string {
	var re *RequestError
	if errors.As(err, &re) {
		return re.Message
	}
	if errors.Is(err, ErrUnavailable) {
		return MsgNetworkError
	}
	return err.Error()
}
