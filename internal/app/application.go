// Package app wires the client components together in dependency order:
// storage, backend client, session store, roster cache, dispatcher,
// controller.
package app

import (
	"context"
	"fmt"
	"log"

	"rollcall/internal/api"
	"rollcall/internal/config"
	"rollcall/internal/controller"
	"rollcall/internal/dispatch"
	"rollcall/internal/roster"
	"rollcall/internal/session"
	"rollcall/internal/storage"
)

// Application holds every component of the client.
type Application struct {
	Config     *config.Config
	Store      *storage.Store
	Backend    *api.Client
	Sessions   *session.Store
	Roster     *roster.Client
	Dispatcher *dispatch.Dispatcher
	Controller *controller.Controller
}

// NewApplication builds a fully wired client. The persisted session, if
// any, is restored before the controller derives its initial mode, so the
// client starts authenticated after a restart without re-login.
func NewApplication(ctx context.Context, cfg *config.Config) (*Application, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	store, err := storage.NewStore(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("initialize credential store: %w", err)
	}

	backend := api.NewClient(cfg.Server.BaseURL, cfg.Server.Timeout)

	sessions := session.NewStore(backend, store)
	if err := sessions.Load(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	rosterClient := roster.NewClient(backend)

	dispatcher := dispatch.NewDispatcher(sessions, backend, rosterClient,
		dispatch.NewClock(), cfg.UI.StatusHideDelay)

	ctrl := controller.NewController(sessions, rosterClient, dispatcher)

	log.Printf("app: initialized against %s", cfg.Server.BaseURL)
	return &Application{
		Config:     cfg,
		Store:      store,
		Backend:    backend,
		Sessions:   sessions,
		Roster:     rosterClient,
		Dispatcher: dispatcher,
		Controller: ctrl,
	}, nil
}

// Close releases held resources.
func (a *Application) Close() error {
	return a.Store.Close()
}
