package fakeserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func login(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	body := bytes.NewBufferString(`{"username": "teacher", "password": "mergington"}`)
	resp, err := http.Post(srv.URL+"/login", "application/json", body)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d", resp.StatusCode)
	}
	var out struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	return out.Token
}

func TestSignupFlow(t *testing.T) {
	fake := New()
	srv := httptest.NewServer(fake.Handler())
	defer srv.Close()

	token := login(t, srv)

	q := url.Values{"email": {"new@mergington.edu"}, "token": {token}}
	resp, err := http.Post(srv.URL+"/activities/Chess%20Club/signup?"+q.Encode(), "", nil)
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signup status = %d", resp.StatusCode)
	}

	participants := fake.Participants("Chess Club")
	if participants[len(participants)-1] != "new@mergington.edu" {
		t.Errorf("participants = %v, want new@mergington.edu appended", participants)
	}
	if fake.Count("signup") != 1 {
		t.Errorf("signup count = %d, want 1", fake.Count("signup"))
	}
}

func TestSignupDuplicateRejected(t *testing.T) {
	fake := New()
	srv := httptest.NewServer(fake.Handler())
	defer srv.Close()

	token := login(t, srv)

	q := url.Values{"email": {"michael@mergington.edu"}, "token": {token}}
	resp, err := http.Post(srv.URL+"/activities/Chess%20Club/signup?"+q.Encode(), "", nil)
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("signup status = %d, want 400", resp.StatusCode)
	}
	var out struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode detail: %v", err)
	}
	if out.Detail != "Already registered" {
		t.Errorf("detail = %q", out.Detail)
	}
}

func TestMutationWithoutTokenRejected(t *testing.T) {
	fake := New()
	srv := httptest.NewServer(fake.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/activities/Chess%20Club/signup?email=a%40x.com", "", nil)
	if err != nil {
		t.Fatalf("signup request: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("signup status = %d, want 401", resp.StatusCode)
	}
}

func TestActivitiesOrderStable(t *testing.T) {
	fake := New()
	srv := httptest.NewServer(fake.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/activities")
	if err != nil {
		t.Fatalf("activities request: %v", err)
	}
	defer resp.Body.Close()

	dec := json.NewDecoder(resp.Body)
	if _, err := dec.Token(); err != nil {
		t.Fatalf("read opening brace: %v", err)
	}
	var names []string
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			t.Fatalf("read key: %v", err)
		}
		names = append(names, key.(string))
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			t.Fatalf("skip value: %v", err)
		}
	}

	want := []string{"Chess Club", "Programming Class", "Gym Class"}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
