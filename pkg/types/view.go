package types

// View modes. The mode is derived from session token presence and nothing
// else, so the rendered state can never disagree with the session.
const (
	ModeAnonymous     = "anonymous"
	ModeAuthenticated = "authenticated"
)

// ViewModel is the pure projection of roster + session + status that any
// front end renders. It carries no behavior and holds no references into the
// stores it was projected from.
type ViewModel struct {
	Mode            string         `json:"mode"`
	Identity        string         `json:"identity,omitempty"`
	ShowSignupForm  bool           `json:"show_signup_form"`
	ShowLoginNotice bool           `json:"show_login_notice"`
	RosterLoaded    bool           `json:"roster_loaded"`
	Activities      []ActivityCard `json:"activities"`
	ActivityOptions []string       `json:"activity_options"`
	Status          StatusMessage  `json:"status"`
}

// ActivityCard is one activity prepared for display.
type ActivityCard struct {
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	Schedule       string           `json:"schedule"`
	SpotsLeft      int              `json:"spots_left"`
	Participants   []ParticipantRow `json:"participants"`
	NoParticipants bool             `json:"no_participants"`
}

// ParticipantRow is one enrolled email plus whether the current session may
// remove it.
type ParticipantRow struct {
	Email     string `json:"email"`
	Removable bool   `json:"removable"`
}
