package errs

import "errors"

type userMessenger interface {
	UserMessage() string
}

// UserMessage returns the operator-facing text for err.
//
// Errors that carry their own message (backend answers, transport fallbacks,
// rejected transitions) win; everything else yields fallback.
// A nil err yields an empty string.
func UserMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var m userMessenger
	if errors.As(err, &m) {
		if msg := m.UserMessage(); msg != "" {
			return msg
		}
	}
	return fallback
}

// IsRemote reports whether err came from a remote call rather than local validation.
func IsRemote(err error) bool {
	return errors.Is(err, ErrTransport) || errors.Is(err, ErrBackend)
}
