package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var copyFrom string

var copyCmd = &cobra.Command{
	Use:   "copy [target-date]",
	Short: "Copy a whole day's food log onto another date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parsed, err := tracker.ParseDay(args[0])
		if err != nil {
			return err
		}
		to := parsed.Format(tracker.DayFormat)

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		from := copyFrom
		if from == "" {
			from = tracker.Today()
		}
		if from == to {
			return fmt.Errorf("source and target are the same day (%s)", to)
		}

		if err := app.store.CopyDay(from, to); err != nil {
			return err
		}

		fmt.Printf("✅ Copied %d entries from %s to %s\n", len(app.store.Entries(to)), from, to)
		return nil
	},
}

func init() {
	copyCmd.Flags().StringVarP(&copyFrom, "from", "f", "", "Day to copy from (default today)")
	rootCmd.AddCommand(copyCmd)
}
