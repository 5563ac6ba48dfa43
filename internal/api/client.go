// Package api implements the HTTP client for the activity service contract:
// login/logout, the activities roster, and the signup/unregister mutations.
// Every failure is converted to the pkg/apierr taxonomy at this boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"rollcall/pkg/apierr"
	"rollcall/pkg/types"
)

// Client talks to one activity service instance. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Request/response wire shapes, mirrored from the service.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type mutationResponse struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

type wireActivity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewClient creates a client for the service at baseURL. A zero timeout
// leaves the transport default in place; there is no retry policy.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return "", &apierr.AuthError{Kind: apierr.AuthNetworkFailure, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", &apierr.AuthError{Kind: apierr.AuthNetworkFailure, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apierr.AuthError{Kind: apierr.AuthNetworkFailure, Err: err}
	}
	defer drain(resp.Body)

	if !success(resp.StatusCode) {
		// No guaranteed body on failure; any non-2xx means bad credentials.
		return "", &apierr.AuthError{Kind: apierr.AuthInvalidCredentials}
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return "", &apierr.AuthError{Kind: apierr.AuthNetworkFailure, Err: fmt.Errorf("decode login response: %w", err)}
	}
	return lr.Token, nil
}

// Logout asks the server to invalidate the token. The response is ignored;
// only transport failures are reported, and callers treat even those as
// advisory.
func (c *Client) Logout(ctx context.Context, token string) error {
	q := url.Values{}
	q.Set("token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/logout?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	drain(resp.Body)
	return nil
}

// FetchActivities returns the full roster. The server responds with a JSON
// object keyed by activity name; key order is the display order, so the
// object is decoded token by token instead of into a map.
func (c *Client) FetchActivities(ctx context.Context) (types.Roster, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/activities", nil)
	if err != nil {
		return types.Roster{}, &apierr.FetchError{Kind: apierr.FetchNetworkFailure, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return types.Roster{}, &apierr.FetchError{Kind: apierr.FetchNetworkFailure, Err: err}
	}
	defer drain(resp.Body)

	if !success(resp.StatusCode) {
		return types.Roster{}, &apierr.FetchError{Kind: apierr.FetchServerError, Status: resp.StatusCode}
	}

	roster, err := decodeRoster(resp.Body)
	if err != nil {
		return types.Roster{}, &apierr.FetchError{Kind: apierr.FetchNetworkFailure, Err: err}
	}
	return roster, nil
}

// Signup registers email for the named activity.
func (c *Client) Signup(ctx context.Context, activity, email, token string) (string, error) {
	return c.mutate(ctx, http.MethodPost, activity, "signup", email, token)
}

// Unregister removes email from the named activity.
func (c *Client) Unregister(ctx context.Context, activity, email, token string) (string, error) {
	return c.mutate(ctx, http.MethodDelete, activity, "unregister", email, token)
}

// mutate performs one signup/unregister round trip. Activity names and
// emails may contain reserved characters, so the name is path-escaped and
// the query is built through url.Values.
func (c *Client) mutate(ctx context.Context, method, activity, action, email, token string) (string, error) {
	q := url.Values{}
	q.Set("email", email)
	q.Set("token", token)
	endpoint := fmt.Sprintf("%s/activities/%s/%s?%s", c.baseURL, url.PathEscape(activity), action, q.Encode())

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return "", &apierr.MutationError{Kind: apierr.MutationNetworkFailure, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &apierr.MutationError{Kind: apierr.MutationNetworkFailure, Err: err}
	}
	defer drain(resp.Body)

	var mr mutationResponse
	decodeErr := json.NewDecoder(resp.Body).Decode(&mr)

	if !success(resp.StatusCode) {
		// Detail is optional; an empty one falls back to the generic
		// message at the presentation layer.
		return "", &apierr.MutationError{Kind: apierr.MutationServerRejected, Detail: mr.Detail}
	}
	if decodeErr != nil {
		return "", &apierr.MutationError{Kind: apierr.MutationNetworkFailure, Err: fmt.Errorf("decode response: %w", decodeErr)}
	}
	return mr.Message, nil
}

// decodeRoster reads the activities object preserving key order.
func decodeRoster(r io.Reader) (types.Roster, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return types.Roster{}, fmt.Errorf("decode activities: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return types.Roster{}, fmt.Errorf("decode activities: expected object, got %v", tok)
	}

	roster := types.NewRoster()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return types.Roster{}, fmt.Errorf("decode activity name: %w", err)
		}
		name, ok := keyTok.(string)
		if !ok {
			return types.Roster{}, fmt.Errorf("decode activity name: got %v", keyTok)
		}

		var w wireActivity
		if err := dec.Decode(&w); err != nil {
			return types.Roster{}, fmt.Errorf("decode activity %q: %w", name, err)
		}
		roster.Add(types.Activity{
			Name:            name,
			Description:     w.Description,
			Schedule:        w.Schedule,
			MaxParticipants: w.MaxParticipants,
			Participants:    w.Participants,
		})
	}

	if _, err := dec.Token(); err != nil {
		return types.Roster{}, fmt.Errorf("decode activities: %w", err)
	}
	return roster, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}

// drain discards the remainder of a response body so the connection can be
// reused, then closes it.
func drain(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
