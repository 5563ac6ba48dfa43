package scenarios

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollcall/pkg/types"
	"rollcall/tests/fixtures"
)

func TestLoginPersistsAcrossRestart(t *testing.T) {
	env := fixtures.NewEnv(t)
	require.Equal(t, types.ModeAnonymous, env.App.Controller.Mode())

	env.Login(t)
	require.Equal(t, types.ModeAuthenticated, env.App.Controller.Mode())
	require.Equal(t, 1, env.Fake.Count("login"))

	// A fresh process over the same credential database comes up
	// authenticated without another login round trip.
	env.Restart(t)
	assert.Equal(t, types.ModeAuthenticated, env.App.Controller.Mode())
	assert.Equal(t, 1, env.Fake.Count("login"))
	assert.True(t, env.App.Controller.View().ShowSignupForm)
}

func TestSignupRefreshesFromServerTruth(t *testing.T) {
	env := fixtures.NewEnv(t)
	env.Login(t)
	require.NoError(t, env.App.Controller.Reload(context.Background()))
	fetchesBefore := env.Fake.Count("activities")

	err := env.App.Controller.Signup(context.Background(), "Chess Club", "new@mergington.edu")
	require.NoError(t, err)

	assert.Equal(t, 1, env.Fake.Count("signup"))
	assert.Equal(t, fetchesBefore+1, env.Fake.Count("activities"), "exactly one refresh after a successful mutation")

	vm := env.App.Controller.View()
	var chess types.ActivityCard
	for _, card := range vm.Activities {
		if card.Name == "Chess Club" {
			chess = card
		}
	}
	emails := make([]string, 0, len(chess.Participants))
	for _, row := range chess.Participants {
		emails = append(emails, row.Email)
	}
	assert.Contains(t, emails, "new@mergington.edu")
	assert.Equal(t, types.StatusSuccess, vm.Status.Kind)
}

func TestRejectedSignupLeavesRosterUntouched(t *testing.T) {
	env := fixtures.NewEnv(t)
	env.Login(t)
	require.NoError(t, env.App.Controller.Reload(context.Background()))
	before := env.App.Controller.View()
	fetchesBefore := env.Fake.Count("activities")

	// michael@ is already enrolled in the seeded Chess Club.
	err := env.App.Controller.Signup(context.Background(), "Chess Club", "michael@mergington.edu")
	require.Error(t, err)

	vm := env.App.Controller.View()
	assert.Equal(t, "Already registered", vm.Status.Text)
	assert.Equal(t, types.StatusError, vm.Status.Kind)
	assert.Equal(t, fetchesBefore, env.Fake.Count("activities"), "a failed mutation must not refresh")
	assert.Equal(t, before.Activities, vm.Activities)
}

func TestAnonymousMutationMakesNoNetworkCall(t *testing.T) {
	env := fixtures.NewEnv(t)

	err := env.App.Controller.Signup(context.Background(), "Chess Club", "a@x.com")
	require.Error(t, err)

	assert.Equal(t, 0, env.Fake.Count("signup"))
	vm := env.App.Controller.View()
	assert.Equal(t, types.StatusError, vm.Status.Kind)
	assert.Equal(t, "You must be logged in as a teacher to register students", vm.Status.Text)
}

func TestLogoutWorksWithServerDown(t *testing.T) {
	env := fixtures.NewEnv(t)
	env.Login(t)
	require.Equal(t, types.ModeAuthenticated, env.App.Controller.Mode())

	env.Server.Close()
	env.App.Controller.Logout(context.Background())

	assert.Equal(t, types.ModeAnonymous, env.App.Controller.Mode())

	// The cleared session stays cleared across a restart.
	env.Restart(t)
	assert.Equal(t, types.ModeAnonymous, env.App.Controller.Mode())
}

func TestOutOfOrderUnregisterResponses(t *testing.T) {
	env := fixtures.NewEnv(t)
	env.Login(t)
	require.NoError(t, env.App.Controller.Reload(context.Background()))

	// Hold the first unregister inside the server until the second has
	// fully completed, so the responses arrive in reverse issue order.
	firstHeld := make(chan struct{})
	release := make(chan struct{})
	env.Fake.BeforeMutation = func(action, activity, email string) {
		if email == "michael@mergington.edu" {
			close(firstHeld)
			<-release
		}
	}

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- env.App.Controller.Unregister(context.Background(), "Chess Club", "michael@mergington.edu")
	}()
	<-firstHeld

	require.NoError(t, env.App.Controller.Unregister(context.Background(), "Chess Club", "daniel@mergington.edu"))
	close(release)
	require.NoError(t, <-firstDone)

	// Each completion triggered a full-replacement refresh; once both have
	// resolved, the view reflects both removals regardless of arrival
	// order.
	assert.Empty(t, env.Fake.Participants("Chess Club"))
	vm := env.App.Controller.View()
	for _, card := range vm.Activities {
		if card.Name == "Chess Club" {
			assert.Empty(t, card.Participants)
			assert.True(t, card.NoParticipants)
		}
	}
}

func TestStaleTokenSurfacesServerDetail(t *testing.T) {
	env := fixtures.NewEnv(t)
	env.Login(t)
	require.NoError(t, env.App.Controller.Reload(context.Background()))

	// Invalidate the token server-side; the client still holds it. The
	// mutation fails with the server's detail message, and the client
	// stays authenticated rather than forcing a logout.
	env.Fake.RevokeAll()
	err := env.App.Controller.Signup(context.Background(), "Chess Club", "new@mergington.edu")
	require.Error(t, err)

	vm := env.App.Controller.View()
	assert.Equal(t, "Invalid or missing authentication token", vm.Status.Text)
	assert.Equal(t, types.StatusError, vm.Status.Kind)
	assert.Equal(t, types.ModeAuthenticated, env.App.Controller.Mode())
}

func TestRosterUnavailableThenRecovered(t *testing.T) {
	env := fixtures.NewEnv(t)

	env.Fake.SetFailActivities(true)
	err := env.App.Controller.Reload(context.Background())
	require.Error(t, err)
	assert.False(t, env.App.Controller.View().RosterLoaded)

	env.Fake.SetFailActivities(false)
	require.NoError(t, env.App.Controller.Reload(context.Background()))
	vm := env.App.Controller.View()
	assert.True(t, vm.RosterLoaded)
	assert.Len(t, vm.Activities, 3)

	// A later failure keeps the stale roster on display.
	env.Fake.SetFailActivities(true)
	require.Error(t, env.App.Controller.Reload(context.Background()))
	after := env.App.Controller.View()
	assert.True(t, after.RosterLoaded)
	assert.Equal(t, vm.Activities, after.Activities)
}
