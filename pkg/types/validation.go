package types

import "strings"

// IsValidActivityName accepts any non-empty name up to 200 characters. Names
// come from the server and may contain spaces and punctuation; they are
// percent-encoded at the transport layer, not restricted here.
func IsValidActivityName(name string) bool {
	return name != "" && len(name) <= 200
}

// IsValidEmail is a light shape check: something@something, no whitespace.
// The backend owns real validation; this only catches obviously empty or
// malformed input before a round trip is wasted on it.
func IsValidEmail(email string) bool {
	if email == "" || len(email) > 254 {
		return false
	}
	if strings.ContainsAny(email, " \t\r\n") {
		return false
	}
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1
}
