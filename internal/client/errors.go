package client

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Submit when the input is blank after trimming.
	ErrEmptyInput = errors.New("empty email input")
	// ErrBusy is returned by Submit while another submit is in flight.
	ErrBusy = errors.New("a parse request is already in flight")
)

// HTTPError is a non-2xx response. Message is the body's "error" field when
// present, otherwise a generic status line.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// LogicError is a 2xx response whose body carries a truthy "error" field.
type LogicError struct {
	Message string
}

func (e *LogicError) Error() string {
	return e.Message
}

func httpStatusMessage(status int) string {
	return fmt.Sprintf("HTTP error! status: %d", status)
}
