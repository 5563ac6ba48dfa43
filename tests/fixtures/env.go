// Package fixtures provides a fully wired client against an in-process fake
// activity service for scenario tests.
package fixtures

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"rollcall/internal/app"
	"rollcall/internal/config"
	"rollcall/internal/fakeserver"
)

// Credentials of the account the fake service seeds.
const (
	Username = "teacher"
	Password = "mergington"
)

// Env is one client process talking to one fake service.
type Env struct {
	Fake   *fakeserver.Server
	Server *httptest.Server
	Config *config.Config
	App    *app.Application
}

// NewEnv starts a fake service and wires a client against it. The credential
// database lives in a per-test temp directory, so Restart can simulate a
// process reload with persisted state.
func NewEnv(t *testing.T) *Env {
	t.Helper()

	fake := fakeserver.New()
	server := httptest.NewServer(fake.Handler())
	t.Cleanup(server.Close)

	cfg := config.DefaultConfig()
	cfg.Server.BaseURL = server.URL
	cfg.Server.Timeout = 5 * time.Second
	cfg.Storage.Path = filepath.Join(t.TempDir(), "credentials.db")

	env := &Env{Fake: fake, Server: server, Config: cfg}
	env.start(t)
	return env
}

// Restart closes the client and builds a fresh one over the same credential
// database and service, the in-process equivalent of a page reload.
func (e *Env) Restart(t *testing.T) {
	t.Helper()
	if err := e.App.Close(); err != nil {
		t.Fatalf("close application: %v", err)
	}
	e.start(t)
}

// Login authenticates with the seeded account.
func (e *Env) Login(t *testing.T) {
	t.Helper()
	if _, err := e.App.Controller.Login(context.Background(), Username, Password); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func (e *Env) start(t *testing.T) {
	t.Helper()
	application, err := app.NewApplication(context.Background(), e.Config)
	if err != nil {
		t.Fatalf("build application: %v", err)
	}
	e.App = application
	t.Cleanup(func() { _ = application.Close() })
}
