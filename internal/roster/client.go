// Package roster caches the activity roster fetched from the backend. The
// cache is only ever replaced wholesale by a successful fetch; a failed
// fetch leaves the last good roster in place.
package roster

import (
	"context"
	"log"
	"sync"

	"rollcall/pkg/interfaces"
	"rollcall/pkg/types"
)

// Client implements RosterSource and RosterRefresher over a Backend.
type Client struct {
	backend interfaces.Backend

	mu     sync.RWMutex
	roster types.Roster
	loaded bool
}

// NewClient creates an empty, not-yet-loaded roster cache.
func NewClient(backend interfaces.Backend) *Client {
	return &Client{backend: backend}
}

// Refresh performs a full fetch and atomically replaces the cache on
// success. There is no polling; refreshes happen only when a caller asks
// (startup, and after each successful mutation).
func (c *Client) Refresh(ctx context.Context) error {
	fetched, err := c.backend.FetchActivities(ctx)
	if err != nil {
		log.Printf("roster: refresh failed: %v", err)
		return err
	}

	c.mu.Lock()
	c.roster = fetched
	c.loaded = true
	c.mu.Unlock()

	log.Printf("roster: refreshed, %d activities", fetched.Len())
	return nil
}

// Snapshot returns a copy of the cached roster and whether any fetch has
// succeeded. Callers use the flag to distinguish "never loaded" from "stale
// but present" when a refresh fails.
func (c *Client) Snapshot() (types.Roster, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.roster.Clone(), c.loaded
}
