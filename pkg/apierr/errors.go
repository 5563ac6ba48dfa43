// Package apierr defines the error taxonomy every backend-facing component
// converts to at its boundary. Transport failures and non-2xx statuses never
// escape to the controller in any other shape.
package apierr

import "fmt"

// AuthError kinds.
const (
	AuthInvalidCredentials = "invalid_credentials"
	AuthNetworkFailure     = "network_failure"
)

// FetchError kinds.
const (
	FetchNetworkFailure = "network_failure"
	FetchServerError    = "server_error"
)

// MutationError kinds.
const (
	MutationUnauthorized   = "unauthorized"
	MutationServerRejected = "server_rejected"
	MutationNetworkFailure = "network_failure"
)

// AuthError is a failed login.
type AuthError struct {
	Kind string
	Err  error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("auth %s: %v", e.Kind, e.Err)
	}
	return "auth " + e.Kind
}

func (e *AuthError) Unwrap() error { return e.Err }

// FetchError is a failed roster fetch. Status carries the HTTP status code
// for ServerError kinds, zero otherwise.
type FetchError struct {
	Kind   string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Kind == FetchServerError {
		return fmt.Sprintf("fetch %s: status %d", e.Kind, e.Status)
	}
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.Kind, e.Err)
	}
	return "fetch " + e.Kind
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError is a failed signup or unregister. Unauthorized is produced
// locally before any network call; ServerRejected carries the server's
// detail message when one was provided.
type MutationError struct {
	Kind   string
	Detail string
	Err    error
}

func (e *MutationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("mutation %s: %s", e.Kind, e.Detail)
	}
	if e.Err != nil {
		return fmt.Sprintf("mutation %s: %v", e.Kind, e.Err)
	}
	return "mutation " + e.Kind
}

func (e *MutationError) Unwrap() error { return e.Err }
