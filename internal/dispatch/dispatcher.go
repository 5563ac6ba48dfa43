// Package dispatch is the authorization-gated write path. Every mutating
// call follows the same template: check the token locally, make exactly one
// network call, then surface the outcome as a transient status message and,
// on success only, trigger a roster refresh.
package dispatch

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"rollcall/pkg/apierr"
	"rollcall/pkg/interfaces"
	"rollcall/pkg/types"
)

// User-facing message texts, matching the deployed service wording.
const (
	signupLoginRequired     = "You must be logged in as a teacher to register students"
	unregisterLoginRequired = "You must be logged in as a teacher to unregister students"
	signupFailed            = "Failed to sign up. Please try again."
	unregisterFailed        = "Failed to unregister. Please try again."
	genericRejection        = "An error occurred"
)

// Dispatcher executes signup/unregister requests. It owns the status
// message and its auto-hide timer; a newer message cancels the pending hide
// and restarts the delay, so messages replace rather than stack.
type Dispatcher struct {
	tokens    interfaces.TokenSource
	backend   interfaces.Backend
	refresher interfaces.RosterRefresher
	clock     Clock
	hideDelay time.Duration

	mu        sync.Mutex
	status    types.StatusMessage
	hideTimer Timer
	statusGen uint64
	subs      []func(types.StatusMessage)
}

// NewDispatcher creates a dispatcher. hideDelay is how long a status message
// stays visible unless superseded.
func NewDispatcher(tokens interfaces.TokenSource, backend interfaces.Backend, refresher interfaces.RosterRefresher, clock Clock, hideDelay time.Duration) *Dispatcher {
	return &Dispatcher{
		tokens:    tokens,
		backend:   backend,
		refresher: refresher,
		clock:     clock,
		hideDelay: hideDelay,
	}
}

// SubscribeStatus registers fn to be called synchronously on every status
// change, including the auto-hide. Wired once at startup.
func (d *Dispatcher) SubscribeStatus(fn func(types.StatusMessage)) {
	d.subs = append(d.subs, fn)
}

// Status returns the current status message.
func (d *Dispatcher) Status() types.StatusMessage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// Signup registers email for the activity. Without a token no network call
// is made and the gate failure is reported locally.
func (d *Dispatcher) Signup(ctx context.Context, activity, email string) error {
	return d.mutate(ctx, activity, email, signupLoginRequired, signupFailed, d.backend.Signup)
}

// Unregister removes email from the activity, under the same gate.
func (d *Dispatcher) Unregister(ctx context.Context, activity, email string) error {
	return d.mutate(ctx, activity, email, unregisterLoginRequired, unregisterFailed, d.backend.Unregister)
}

type mutationCall func(ctx context.Context, activity, email, token string) (string, error)

func (d *Dispatcher) mutate(ctx context.Context, activity, email, gateText, networkText string, call mutationCall) error {
	// Fail fast locally: the server would reject an unauthenticated call
	// anyway, but the user gets deterministic feedback and no request is
	// wasted.
	token, ok := d.tokens.Token()
	if !ok {
		d.setStatus(gateText, types.StatusError)
		return &apierr.MutationError{Kind: apierr.MutationUnauthorized}
	}

	message, err := call(ctx, activity, email, token)
	if err != nil {
		d.setStatus(failureText(err, networkText), types.StatusError)
		return err
	}

	d.setStatus(message, types.StatusSuccess)

	// Refresh so the displayed roster is the server's truth, never a local
	// guess. A failed refresh keeps the previous roster; the success
	// message stands, since the mutation itself went through.
	if err := d.refresher.Refresh(ctx); err != nil {
		log.Printf("dispatch: post-mutation refresh failed: %v", err)
	}
	return nil
}

// failureText picks the server's detail when it sent one, the generic
// rejection when it rejected without detail, and the transport fallback for
// everything that never reached the server.
func failureText(err error, networkText string) string {
	var merr *apierr.MutationError
	if errors.As(err, &merr) && merr.Kind == apierr.MutationServerRejected {
		if merr.Detail != "" {
			return merr.Detail
		}
		return genericRejection
	}
	return networkText
}

func (d *Dispatcher) setStatus(text, kind string) {
	d.mu.Lock()
	if d.hideTimer != nil {
		d.hideTimer.Stop()
		d.hideTimer = nil
	}
	d.statusGen++
	gen := d.statusGen
	d.status = types.StatusMessage{Text: text, Kind: kind, Visible: true}
	snapshot := d.status
	d.hideTimer = d.clock.AfterFunc(d.hideDelay, func() { d.hide(gen) })
	d.mu.Unlock()

	d.notify(snapshot)
}

// hide clears visibility for the message of generation gen. A timer that
// fires after its message was superseded finds a newer generation and does
// nothing; the race between Stop and an already-fired timer is settled by
// the generation check, not by the timer API.
func (d *Dispatcher) hide(gen uint64) {
	d.mu.Lock()
	if gen != d.statusGen {
		d.mu.Unlock()
		return
	}
	d.status.Visible = false
	snapshot := d.status
	d.hideTimer = nil
	d.mu.Unlock()

	d.notify(snapshot)
}

func (d *Dispatcher) notify(snapshot types.StatusMessage) {
	for _, fn := range d.subs {
		fn(snapshot)
	}
}
