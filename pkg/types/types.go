package types

// Status message kinds shown after a mutation completes.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Session holds the authentication state of the client. The zero value is
// the anonymous session. Token and Identity are set and cleared together:
// Identity is present exactly when Token is present.
type Session struct {
	Token    string `json:"token,omitempty"`
	Identity string `json:"identity,omitempty"`
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Consistent reports whether the token/identity pairing invariant holds.
func (s Session) Consistent() bool {
	return (s.Token == "") == (s.Identity == "")
}

// Activity is one sign-up activity as served by the backend.
// Participants keeps the server's order and any duplicates the server allows.
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// SpotsLeft returns remaining capacity. Negative values are possible when the
// server over-enrolls and are reported as-is.
func (a Activity) SpotsLeft() int {
	return a.MaxParticipants - len(a.Participants)
}

// StatusMessage is transient user-facing feedback produced by a mutation
// outcome. Visible flips to false after the hide delay unless a newer
// message supersedes it first.
type StatusMessage struct {
	Text    string `json:"text"`
	Kind    string `json:"kind"`
	Visible bool   `json:"visible"`
}
