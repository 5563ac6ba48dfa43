package types

import (
	"reflect"
	"testing"
)

func TestSessionConsistent(t *testing.T) {
	cases := []struct {
		name string
		sess Session
		want bool
	}{
		{"anonymous", Session{}, true},
		{"authenticated", Session{Token: "t", Identity: "teacher"}, true},
		{"token without identity", Session{Token: "t"}, false},
		{"identity without token", Session{Identity: "teacher"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.sess.Consistent(); got != tc.want {
				t.Errorf("Consistent() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSessionAuthenticated(t *testing.T) {
	if (Session{}).Authenticated() {
		t.Error("zero session should not be authenticated")
	}
	if !(Session{Token: "t", Identity: "x"}).Authenticated() {
		t.Error("session with token should be authenticated")
	}
}

func TestActivitySpotsLeft(t *testing.T) {
	a := Activity{MaxParticipants: 3, Participants: []string{"a@x.com", "b@x.com"}}
	if got := a.SpotsLeft(); got != 1 {
		t.Errorf("SpotsLeft() = %d, want 1", got)
	}

	// Over-enrollment is reported as-is, not clamped.
	over := Activity{MaxParticipants: 1, Participants: []string{"a@x.com", "b@x.com", "c@x.com"}}
	if got := over.SpotsLeft(); got != -2 {
		t.Errorf("SpotsLeft() = %d, want -2", got)
	}
}

func TestRosterKeepsInsertionOrder(t *testing.T) {
	r := NewRoster()
	r.Add(Activity{Name: "Zeta Club"})
	r.Add(Activity{Name: "Alpha Club"})
	r.Add(Activity{Name: "Middle Club"})

	want := []string{"Zeta Club", "Alpha Club", "Middle Club"}
	if got := r.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestRosterAddOverwriteKeepsPosition(t *testing.T) {
	r := NewRoster()
	r.Add(Activity{Name: "A", Description: "first"})
	r.Add(Activity{Name: "B"})
	r.Add(Activity{Name: "A", Description: "second"})

	if got := r.Names(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Names() = %v, want [A B]", got)
	}
	a, ok := r.Get("A")
	if !ok || a.Description != "second" {
		t.Errorf("Get(A) = %+v, want overwritten entry", a)
	}
}

func TestRosterCloneIsIndependent(t *testing.T) {
	r := NewRoster()
	r.Add(Activity{Name: "Chess Club", Participants: []string{"a@x.com"}})

	clone := r.Clone()
	a, _ := clone.Get("Chess Club")
	a.Participants[0] = "mutated@x.com"
	clone.Add(Activity{Name: "New Club"})

	orig, _ := r.Get("Chess Club")
	if orig.Participants[0] != "a@x.com" {
		t.Error("mutating a clone's participants changed the original")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after clone mutation, want 1", r.Len())
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"a@x.com", "first.last+tag@school.edu"}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}

	invalid := []string{"", "@x.com", "a@", "no-at-sign", "a b@x.com"}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidActivityName(t *testing.T) {
	if !IsValidActivityName("Chess Club & Friends / Level 2") {
		t.Error("names with reserved characters are valid; escaping is the transport's job")
	}
	if IsValidActivityName("") {
		t.Error("empty name should be invalid")
	}
}
