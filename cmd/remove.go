package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var removeDate string

var removeCmd = &cobra.Command{
	Use:   "remove [entry-index]",
	Short: "Remove a food entry from a day's diary by its position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		idx, err := strconv.Atoi(args[0])
		if err != nil || idx < 1 {
			return fmt.Errorf("Invalid entry index. Must be a positive integer")
		}
		idx--

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		day := removeDate
		if day == "" {
			day = tracker.Today()
		}

		entries := app.store.Entries(day)
		if idx >= len(entries) {
			fmt.Printf("Nothing at position %d on %s (%d entries logged)\n", idx+1, day, len(entries))
			return nil
		}
		name := entries[idx].Name

		if err := app.store.RemoveEntry(day, idx); err != nil {
			return err
		}

		fmt.Printf("✅ Removed '%s' from %s\n", name, day)
		return nil
	},
}

func init() {
	removeCmd.Flags().StringVarP(&removeDate, "date", "d", "", "Day to remove from (default today)")
	rootCmd.AddCommand(removeCmd)
}
