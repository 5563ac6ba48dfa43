// Package fakeserver is an in-memory stand-in for the activity service,
// implementing the same REST contract the client consumes. It backs the
// scenario tests and the `rollcall fake-server` development command; it is
// not the real service.
package fakeserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/google/uuid"
)

type activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Server holds the in-memory roster and issued tokens.
type Server struct {
	mu         sync.Mutex
	order      []string
	activities map[string]*activity
	users      map[string]string
	tokens     map[string]string
	counts     map[string]int

	failActivities bool

	// BeforeMutation, when set, runs before a signup/unregister is applied.
	// Scenario tests use it to force specific completion orderings.
	BeforeMutation func(action, activityName, email string)
}

// New creates a server seeded with the default school roster and a single
// teacher account (teacher / mergington).
func New() *Server {
	s := &Server{
		activities: make(map[string]*activity),
		users:      map[string]string{"teacher": "mergington"},
		tokens:     make(map[string]string),
		counts:     make(map[string]int),
	}
	s.AddActivity("Chess Club", "Learn strategies and compete in chess tournaments",
		"Fridays, 3:30 PM - 5:00 PM", 12, "michael@mergington.edu", "daniel@mergington.edu")
	s.AddActivity("Programming Class", "Learn programming fundamentals and build software projects",
		"Tuesdays and Thursdays, 3:30 PM - 4:30 PM", 20, "emma@mergington.edu", "sophia@mergington.edu")
	s.AddActivity("Gym Class", "Physical education and sports activities",
		"Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM", 30, "john@mergington.edu", "olivia@mergington.edu")
	return s
}

// AddActivity inserts or replaces an activity.
func (s *Server) AddActivity(name, description, schedule string, maxParticipants int, participants ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.activities[name]; !exists {
		s.order = append(s.order, name)
	}
	s.activities[name] = &activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    append([]string{}, participants...),
	}
}

// AddUser registers a login account.
func (s *Server) AddUser(username, password string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = password
}

// RevokeAll invalidates every issued token, as a server-side expiry would.
func (s *Server) RevokeAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens = make(map[string]string)
}

// SetFailActivities makes GET /activities answer 500 until reset.
func (s *Server) SetFailActivities(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failActivities = fail
}

// Count returns how many requests hit the named endpoint
// (login, logout, activities, signup, unregister).
func (s *Server) Count(endpoint string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts[endpoint]
}

// Participants returns a copy of an activity's participant list.
func (s *Server) Participants(name string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.activities[name]
	if !ok {
		return nil
	}
	return append([]string{}, a.Participants...)
}

// Handler returns the HTTP surface of the fake service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /activities", s.handleActivities)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("POST /activities/{name}/signup", s.handleMutation("signup"))
	mux.HandleFunc("DELETE /activities/{name}/unregister", s.handleMutation("unregister"))
	return mux
}

func (s *Server) handleActivities(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.counts["activities"]++
	if s.failActivities {
		s.mu.Unlock()
		sendJSON(w, http.StatusInternalServerError, map[string]string{"detail": "Internal server error"})
		return
	}

	// Hand-build the object so key order matches insertion order; the
	// client treats it as display order.
	var buf []byte
	buf = append(buf, '{')
	for i, name := range s.order {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, _ := json.Marshal(name)
		val, _ := json.Marshal(s.activities[name])
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	buf = append(buf, '}')
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.counts["login"]++
	s.mu.Unlock()

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"detail": "Invalid request body"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if password, ok := s.users[req.Username]; !ok || password != req.Password {
		sendJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid username or password"})
		return
	}
	token := uuid.New().String()
	s.tokens[token] = req.Username
	sendJSON(w, http.StatusOK, map[string]string{"token": token})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.counts["logout"]++
	delete(s.tokens, r.URL.Query().Get("token"))
	s.mu.Unlock()
	sendJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (s *Server) handleMutation(action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := r.PathValue("name")
		email := r.URL.Query().Get("email")
		token := r.URL.Query().Get("token")

		s.mu.Lock()
		s.counts[action]++
		_, authed := s.tokens[token]
		hook := s.BeforeMutation
		s.mu.Unlock()

		if !authed {
			sendJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid or missing authentication token"})
			return
		}
		if hook != nil {
			hook(action, name, email)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		a, ok := s.activities[name]
		if !ok {
			sendJSON(w, http.StatusNotFound, map[string]string{"detail": "Activity not found"})
			return
		}

		switch action {
		case "signup":
			for _, p := range a.Participants {
				if p == email {
					sendJSON(w, http.StatusBadRequest, map[string]string{"detail": "Already registered"})
					return
				}
			}
			if len(a.Participants) >= a.MaxParticipants {
				sendJSON(w, http.StatusBadRequest, map[string]string{"detail": "Activity is full"})
				return
			}
			a.Participants = append(a.Participants, email)
			sendJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Signed up %s for %s", email, name)})

		case "unregister":
			for i, p := range a.Participants {
				if p == email {
					a.Participants = append(a.Participants[:i], a.Participants[i+1:]...)
					sendJSON(w, http.StatusOK, map[string]string{"message": fmt.Sprintf("Unregistered %s from %s", email, name)})
					return
				}
			}
			sendJSON(w, http.StatusBadRequest, map[string]string{"detail": "Student is not registered for this activity"})
		}
	}
}

func sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
