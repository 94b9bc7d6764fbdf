package domain

import (
	"errors"
	"fmt"
)

var (
	ErrIncomplete         = errors.New("please fill in all required fields")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidChoice      = errors.New("invalid choice")
	ErrNotRegistered      = errors.New("no registered user on this device, please register first")
	ErrCredentialRequired = errors.New("an API key is required for this action")
	ErrBusy               = errors.New("a request is already in progress")
	ErrLogoutNotConfirmed = errors.New("logout was not confirmed")
	ErrNoFileSelected     = errors.New("no file selected")
	ErrNotPDF             = errors.New("only PDF files are allowed")
)

// APIError is a non-2xx response from the backend. Detail holds the
// server-provided message and is empty when the body carried none.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("backend error [%d]: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("backend error [%d]", e.StatusCode)
}

// ConnectionError means the backend could not be reached at all.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error to %s: %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}
