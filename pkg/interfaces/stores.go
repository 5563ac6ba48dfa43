package interfaces

import (
	"context"

	"rollcall/pkg/types"
)

// TokenSource is the read side of the session store. The dispatcher gates
// every mutating call on it.
type TokenSource interface {
	Token() (string, bool)
}

// SessionStore owns the authentication state.
type SessionStore interface {
	TokenSource
	Current() types.Session
	Login(ctx context.Context, username, password string) (identity string, err error)
	Logout(ctx context.Context)
	Subscribe(fn func(types.Session))
}

// RosterSource is the read side of the roster cache.
type RosterSource interface {
	// Snapshot returns a copy of the cached roster and whether a fetch has
	// ever succeeded. A false flag with a prior error means "never loaded";
	// a true flag after a failed refresh means "stale but present".
	Snapshot() (types.Roster, bool)
}

// RosterRefresher triggers a full roster replacement fetch.
type RosterRefresher interface {
	Refresh(ctx context.Context) error
}

// RosterStore is the full roster cache surface.
type RosterStore interface {
	RosterSource
	RosterRefresher
}

// MutationDispatcher is the authorization-gated write path for roster
// mutations, and the owner of the transient status message.
type MutationDispatcher interface {
	Signup(ctx context.Context, activity, email string) error
	Unregister(ctx context.Context, activity, email string) error
	Status() types.StatusMessage
	SubscribeStatus(fn func(types.StatusMessage))
}
