package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/cloudsync"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push or pull the diary snapshot to a remote backup",
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the current diary snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, client, err := newSyncClient()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snap := tracker.BuildSnapshot(app.store, app.goals)
		if err := client.Push(ctx, snap); err != nil {
			return err
		}

		fmt.Println("✅ Snapshot pushed")
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the remote snapshot and merge it into the local diary",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, client, err := newSyncClient()
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		snap, err := client.Pull(ctx)
		if errors.Is(err, cloudsync.ErrNoRemote) {
			fmt.Println("No remote snapshot yet — push one first")
			return nil
		}
		if err != nil {
			return err
		}

		if err := tracker.RestoreSnapshot(app.store, app.goals, snap); err != nil {
			return err
		}

		fmt.Println("✅ Snapshot pulled")
		return nil
	},
}

func newSyncClient() (*app, *cloudsync.Client, error) {
	a, err := newApp()
	if err != nil {
		return nil, nil, err
	}
	if a.cfg.Sync.Endpoint == "" || a.cfg.Sync.Token == "" {
		a.Close()
		return nil, nil, fmt.Errorf("sync is not configured: set sync.endpoint in config.toml and FITLOG_SYNC_TOKEN")
	}
	return a, cloudsync.NewClient(a.cfg.Sync.Endpoint, a.cfg.Sync.Token), nil
}

func init() {
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)
	rootCmd.AddCommand(syncCmd)
}
