package cloudsync

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

// ErrNoRemote means the account has never pushed a snapshot. Pulling into a
// fresh install treats it as "nothing to merge", not a failure.
var ErrNoRemote = errors.New("no remote snapshot")

// Client moves full state snapshots to and from the sync account. The remote
// is a dumb keyed store: push upserts the whole snapshot under the account
// token, pull fetches it back. Network trouble never touches local state.
type Client struct {
	endpoint   string
	token      string
	httpClient *http.Client
}

func NewClient(endpoint, token string) *Client {
	return &Client{
		endpoint: endpoint,
		token:    token,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (c *Client) Push(ctx context.Context, snap tracker.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.endpoint+"/v1/snapshot", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach sync server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("sync server returned %s", resp.Status)
	}
	return nil
}

func (c *Client) Pull(ctx context.Context) (tracker.Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/v1/snapshot", nil)
	if err != nil {
		return tracker.Snapshot{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return tracker.Snapshot{}, fmt.Errorf("failed to reach sync server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return tracker.Snapshot{}, ErrNoRemote
	}
	if resp.StatusCode != http.StatusOK {
		return tracker.Snapshot{}, fmt.Errorf("sync server returned %s", resp.Status)
	}

	var snap tracker.Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return tracker.Snapshot{}, fmt.Errorf("failed to decode remote snapshot: %w", err)
	}
	return snap, nil
}
