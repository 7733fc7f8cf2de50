package cloudsync

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

func TestClient_PushPull(t *testing.T) {
	var stored []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/snapshot", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodPut:
			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			stored = body
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			if stored == nil {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Write(stored)
		}
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret")

	// Fresh account: nothing to pull yet.
	_, err := c.Pull(context.Background())
	assert.ErrorIs(t, err, ErrNoRemote)

	snap := tracker.Snapshot{
		FoodLogs: map[string][]models.FoodEntry{
			"2024-01-05": {{Name: "Egg", Calories: 70}},
		},
		Goals: models.DefaultGoals(),
	}
	require.NoError(t, c.Push(context.Background(), snap))

	var onWire tracker.Snapshot
	require.NoError(t, json.Unmarshal(stored, &onWire))
	assert.Equal(t, snap.FoodLogs, onWire.FoodLogs)

	got, err := c.Pull(context.Background())
	require.NoError(t, err)
	assert.Equal(t, snap.FoodLogs, got.FoodLogs)
	assert.Equal(t, snap.Goals, got.Goals)
}

func TestClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL, "secret")
	assert.Error(t, c.Push(context.Background(), tracker.Snapshot{}))
	_, err := c.Pull(context.Background())
	assert.Error(t, err)
}

// A pulled snapshot overwrites matching local keys wholesale but leaves
// collections the remote doesn't have.
func TestRestore_MergeSemantics(t *testing.T) {
	store := tracker.NewStore(nil)
	reg := tracker.NewRegistry(nil)
	require.NoError(t, store.AddEntry("2024-01-01", models.FoodEntry{Name: "Local Toast", Calories: 200}))
	require.NoError(t, store.AddWeight("2024-01-01", 80))

	remote := tracker.Snapshot{
		FoodLogs: map[string][]models.FoodEntry{
			"2024-01-01": {{Name: "Remote Oats", Calories: 300}},
		},
	}
	require.NoError(t, tracker.RestoreSnapshot(store, reg, remote))

	entries := store.Entries("2024-01-01")
	require.Len(t, entries, 1)
	assert.Equal(t, "Remote Oats", entries[0].Name)

	// Weight history had no remote counterpart and survives.
	assert.Len(t, store.WeightHistory(0), 1)
}
