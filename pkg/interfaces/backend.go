package interfaces

import (
	"context"

	"rollcall/pkg/types"
)

// Backend is the consumed REST contract of the activity service. Implemented
// by the HTTP client in internal/api and by test doubles.
type Backend interface {
	// Login exchanges credentials for a token. Failures surface as
	// *apierr.AuthError.
	Login(ctx context.Context, username, password string) (token string, err error)

	// Logout invalidates the token server-side. Best effort: callers ignore
	// the returned error beyond logging it.
	Logout(ctx context.Context, token string) error

	// FetchActivities returns the complete roster in the server's display
	// order. Failures surface as *apierr.FetchError.
	FetchActivities(ctx context.Context) (types.Roster, error)

	// Signup registers email for the named activity. Returns the server's
	// confirmation message. Failures surface as *apierr.MutationError.
	Signup(ctx context.Context, activity, email, token string) (message string, err error)

	// Unregister removes email from the named activity. Same shape as Signup.
	Unregister(ctx context.Context, activity, email, token string) (message string, err error)
}
