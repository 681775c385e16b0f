package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks failures where the remote side was never reached or never answered.
	ErrTransport = errors.New("transport failure")

	// ErrBackend marks a non-2xx answer from a remote service.
	ErrBackend = errors.New("backend error")
)

// TransportError wraps a network, timeout, or decode failure of a remote call.
// Message is the human fallback shown to operators.
type TransportError struct {
	Operation string
	Message   string
	Cause     error
}

func NewTransportError(operation, message string, cause error) *TransportError {
	return &TransportError{
		Operation: operation,
		Message:   message,
		Cause:     cause,
	}
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrTransport, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrTransport, e.Operation)
}

// Unwrap exposes both the sentinel and the cause, so callers can match
// context.DeadlineExceeded as well as ErrTransport.
func (e *TransportError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Cause}
}

func (e *TransportError) UserMessage() string {
	return e.Message
}

// BackendError is a non-2xx response. Message holds the backend's own message
// when it sent one, otherwise the operation fallback.
type BackendError struct {
	Operation  string
	StatusCode int
	Message    string
}

func NewBackendError(operation string, statusCode int, message string) *BackendError {
	return &BackendError{
		Operation:  operation,
		StatusCode: statusCode,
		Message:    message,
	}
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s: %s returned %d: %s", ErrBackend, e.Operation, e.StatusCode, e.Message)
}

func (e *BackendError) Unwrap() error {
	return ErrBackend
}

func (e *BackendError) UserMessage() string {
	return e.Message
}
