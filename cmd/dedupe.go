package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var (
	dedupeDate  string
	dedupeFuzzy bool
)

var dedupeCmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate food entries from a day (strict match by default, --fuzzy matches name+calories)",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		day := dedupeDate
		if day == "" {
			day = tracker.Today()
		}

		removed, err := app.store.Deduplicate(day, dedupeFuzzy)
		if err != nil {
			return err
		}

		if removed == 0 {
			fmt.Printf("No duplicates found on %s\n", day)
			return nil
		}
		fmt.Printf("✅ Removed %d duplicate(s) from %s\n", removed, day)
		return nil
	},
}

func init() {
	dedupeCmd.Flags().StringVarP(&dedupeDate, "date", "d", "", "Day to deduplicate (default today)")
	dedupeCmd.Flags().BoolVar(&dedupeFuzzy, "fuzzy", false, "Match on name and calories only")
	rootCmd.AddCommand(dedupeCmd)
}
