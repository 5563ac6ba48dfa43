package interfaces

import "context"

// CredentialStore persists the session token under a fixed key so a session
// survives process restarts. Only the token is stored; identity is derived
// again on load.
type CredentialStore interface {
	// LoadToken returns the persisted token, if any.
	LoadToken(ctx context.Context) (token string, ok bool, err error)

	// SaveToken persists the token, replacing any previous one.
	SaveToken(ctx context.Context, token string) error

	// ClearToken removes the persisted token. Clearing an absent token is
	// not an error.
	ClearToken(ctx context.Context) error

	// HealthCheck verifies the store is usable.
	HealthCheck(ctx context.Context) error

	// Close releases the underlying resources.
	Close() error
}
