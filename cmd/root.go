package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/config"
	"github.com/Rhysnute92/fitlog/internal/storage"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var rootCmd = &cobra.Command{
	Use:   "fitlog",
	Short: "Food, training and habit diary with daily goals",
}

func Execute() error {
	return rootCmd.Execute()
}

// app wires the store, goal registry and aggregator on top of the database.
type app struct {
	cfg   *config.Config
	st    *storage.Storage
	store *tracker.Store
	goals *tracker.Registry
	agg   *tracker.Aggregator
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	st, err := storage.NewStorage(cfg)
	if err != nil {
		return nil, err
	}

	store := tracker.NewStore(st)
	store.LoadAll()
	goals := tracker.NewRegistry(st)

	return &app{
		cfg:   cfg,
		st:    st,
		store: store,
		goals: goals,
		agg:   tracker.NewAggregator(store, goals),
	}, nil
}

func (a *app) Close() {
	a.st.Close()
}
