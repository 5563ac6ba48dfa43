// Package controller is the state machine over the two UI modes, anonymous
// and authenticated. The mode is derived from session token presence and
// nothing else; there is no separate logged-in flag to drift out of sync.
package controller

import (
	"context"
	"log"
	"sync"

	"rollcall/internal/render"
	"rollcall/pkg/interfaces"
	"rollcall/pkg/types"
)

// Controller wires user actions to the dispatcher and stores, and keeps the
// current ViewModel up to date across every transition.
type Controller struct {
	sessions   interfaces.SessionStore
	roster     interfaces.RosterStore
	dispatcher interfaces.MutationDispatcher

	mu   sync.RWMutex
	mode string
	view types.ViewModel
}

// NewController builds the controller and derives the initial mode
// synchronously from whatever session was loaded at startup. It subscribes
// to session and status changes, so every transition re-projects the view.
func NewController(sessions interfaces.SessionStore, roster interfaces.RosterStore, dispatcher interfaces.MutationDispatcher) *Controller {
	c := &Controller{
		sessions:   sessions,
		roster:     roster,
		dispatcher: dispatcher,
		mode:       modeFor(sessions.Current()),
	}
	c.rerender()

	sessions.Subscribe(c.onSessionChange)
	dispatcher.SubscribeStatus(func(types.StatusMessage) { c.rerender() })
	return c
}

// Mode returns the current mode.
func (c *Controller) Mode() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// View returns the current ViewModel.
func (c *Controller) View() types.ViewModel {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.view
}

// Reload refreshes the roster and re-projects. A failed refresh keeps the
// previous view data; the error tells the caller which error presentation
// applies (the view's RosterLoaded flag separates never-loaded from stale).
func (c *Controller) Reload(ctx context.Context) error {
	err := c.roster.Refresh(ctx)
	c.rerender()
	return err
}

// Login authenticates and, via the session notification, transitions to
// authenticated mode. The error is returned for inline presentation; it
// does not pass through the status message channel.
func (c *Controller) Login(ctx context.Context, username, password string) (string, error) {
	return c.sessions.Login(ctx, username, password)
}

// Logout always transitions to anonymous mode, whatever the network does.
func (c *Controller) Logout(ctx context.Context) {
	c.sessions.Logout(ctx)
}

// Signup registers a student through the gated write path.
func (c *Controller) Signup(ctx context.Context, activity, email string) error {
	err := c.dispatcher.Signup(ctx, activity, email)
	c.rerender()
	return err
}

// Unregister removes a student through the gated write path.
func (c *Controller) Unregister(ctx context.Context, activity, email string) error {
	err := c.dispatcher.Unregister(ctx, activity, email)
	c.rerender()
	return err
}

// onSessionChange is the single transition point between the two modes.
func (c *Controller) onSessionChange(sess types.Session) {
	next := modeFor(sess)

	c.mu.Lock()
	prev := c.mode
	c.mode = next
	c.mu.Unlock()

	if prev != next {
		log.Printf("controller: %s -> %s", prev, next)
	}
	c.rerender()
}

func (c *Controller) rerender() {
	roster, loaded := c.roster.Snapshot()
	vm := render.Project(roster, loaded, c.sessions.Current(), c.dispatcher.Status())

	c.mu.Lock()
	c.view = vm
	c.mu.Unlock()
}

func modeFor(sess types.Session) string {
	if sess.Authenticated() {
		return types.ModeAuthenticated
	}
	return types.ModeAnonymous
}
