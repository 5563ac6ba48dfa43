package session

import "errors"

// Session store error types.
var (
	ErrEmptyCredentials = errors.New("username and password are required")
)
