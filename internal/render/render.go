// Package render projects roster + session + status into a ViewModel. The
// projection is a pure function: no I/O, no store mutation, so it can be
// tested (and golden-snapshotted) in isolation from any front end.
package render

import "rollcall/pkg/types"

// Project builds the view for the given state. loaded distinguishes a
// never-fetched roster (unavailable view) from a present one; a stale roster
// after a failed refresh still renders, with the failure carried by status.
func Project(roster types.Roster, loaded bool, sess types.Session, status types.StatusMessage) types.ViewModel {
	authenticated := sess.Authenticated()

	vm := types.ViewModel{
		Mode:            types.ModeAnonymous,
		ShowSignupForm:  authenticated,
		ShowLoginNotice: !authenticated,
		RosterLoaded:    loaded,
		Activities:      []types.ActivityCard{},
		ActivityOptions: []string{},
		Status:          status,
	}
	if authenticated {
		vm.Mode = types.ModeAuthenticated
		vm.Identity = sess.Identity
	}
	if !loaded {
		return vm
	}

	for _, a := range roster.Activities() {
		card := types.ActivityCard{
			Name:        a.Name,
			Description: a.Description,
			Schedule:    a.Schedule,
			// Reported as-is, negative when the server over-enrolled.
			SpotsLeft:      a.SpotsLeft(),
			Participants:   make([]types.ParticipantRow, 0, len(a.Participants)),
			NoParticipants: len(a.Participants) == 0,
		}
		for _, email := range a.Participants {
			card.Participants = append(card.Participants, types.ParticipantRow{
				Email:     email,
				Removable: authenticated,
			})
		}
		vm.Activities = append(vm.Activities, card)
		vm.ActivityOptions = append(vm.ActivityOptions, a.Name)
	}
	return vm
}
