package ports

import "context"

// SessionKeyToken is the key under which the backend bearer token is stored.
const SessionKeyToken = "token"

// SessionStore is the credential storage used by outbound clients.
type SessionStore interface {
	// Get returns the value and true, or "" and false when the key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Clear(ctx context.Context, key string) error
}
