// Package session owns the authentication token and derived identity. It is
// the only writer of session state; everything else reads through accessors
// or reacts to its notifications.
package session

import (
	"context"
	"log"
	"sync"

	"rollcall/pkg/apierr"
	"rollcall/pkg/interfaces"
	"rollcall/pkg/types"
)

// restoredIdentity is the display name used when a persisted token is loaded
// at startup. The token is opaque, so the original username is not
// recoverable from it.
const restoredIdentity = "Teacher"

// Store implements the SessionStore interface.
type Store struct {
	backend interfaces.Backend
	creds   interfaces.CredentialStore

	mu      sync.RWMutex
	current types.Session
	subs    []func(types.Session)
}

// NewStore creates a session store. Call Load before first use to restore a
// persisted session.
func NewStore(backend interfaces.Backend, creds interfaces.CredentialStore) *Store {
	return &Store{backend: backend, creds: creds}
}

// Load restores the persisted session, if any. There is no "unknown"
// authentication state: after Load the store is either authenticated or
// anonymous, synchronously.
func (s *Store) Load(ctx context.Context) error {
	token, ok, err := s.creds.LoadToken(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.current = types.Session{Token: token, Identity: restoredIdentity}
	s.mu.Unlock()
	return nil
}

// Token returns the current token, if authenticated.
func (s *Store) Token() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token, s.current.Token != ""
}

// Identity returns the current display name, if authenticated.
func (s *Store) Identity() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Identity, s.current.Identity != ""
}

// Current returns a copy of the session state.
func (s *Store) Current() types.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers fn to be called synchronously after every successful
// login and every logout. Not safe to call concurrently with mutations;
// subscribers are expected to be wired once at startup.
func (s *Store) Subscribe(fn func(types.Session)) {
	s.subs = append(s.subs, fn)
}

// Login exchanges credentials for a token and stores it. Empty credentials
// are rejected locally without a network call. On failure the prior session
// state, if any, is left untouched.
func (s *Store) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", &apierr.AuthError{Kind: apierr.AuthInvalidCredentials, Err: ErrEmptyCredentials}
	}

	token, err := s.backend.Login(ctx, username, password)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.current = types.Session{Token: token, Identity: username}
	snapshot := s.current
	s.mu.Unlock()

	// The in-memory session is authoritative; a persistence failure costs
	// the user a re-login after restart, nothing more.
	if err := s.creds.SaveToken(ctx, token); err != nil {
		log.Printf("session: failed to persist token: %v", err)
	}

	s.notify(snapshot)
	log.Printf("session: logged in as %s", username)
	return username, nil
}

// Logout clears the session unconditionally. The server-side invalidation is
// best effort: its failure is logged and otherwise ignored, so logging out
// works even when the network is down. Idempotent.
func (s *Store) Logout(ctx context.Context) {
	if token, ok := s.Token(); ok {
		if err := s.backend.Logout(ctx, token); err != nil {
			log.Printf("session: logout call failed: %v", err)
		}
	}

	s.mu.Lock()
	s.current = types.Session{}
	snapshot := s.current
	s.mu.Unlock()

	if err := s.creds.ClearToken(ctx); err != nil {
		log.Printf("session: failed to clear persisted token: %v", err)
	}

	s.notify(snapshot)
	log.Printf("session: logged out")
}

func (s *Store) notify(snapshot types.Session) {
	for _, fn := range s.subs {
		fn(snapshot)
	}
}
