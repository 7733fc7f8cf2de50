package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var quickaddTop int

var quickaddCmd = &cobra.Command{
	Use:   "quickadd [n]",
	Short: "List your most-logged foods, or re-log the nth one for today",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		ranked := app.agg.FrequencyRanked(quickaddTop)
		if len(ranked) == 0 {
			fmt.Println("No food history yet — log something first")
			return nil
		}

		if len(args) == 0 {
			fmt.Println("Most logged foods:")
			for i, name := range ranked {
				fmt.Printf("  %d. %s\n", i+1, name)
			}
			fmt.Println("\nRun 'fitlog quickadd [n]' to log one for today")
			return nil
		}

		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > len(ranked) {
			return fmt.Errorf("Invalid pick. Must be 1-%d", len(ranked))
		}
		name := ranked[n-1]

		last, ok := lastEntryNamed(app.store, name)
		if !ok {
			return fmt.Errorf("No previous entry found for %q", name)
		}

		entry := last
		entry.ID = uuid.New().String()
		entry.Timestamp = time.Now().UTC()

		day := tracker.Today()
		if err := app.store.AddEntry(day, entry); err != nil {
			return err
		}

		fmt.Printf("✅ Logged '%s' (%.0f kcal) for today\n", entry.Name, entry.Calories)
		return nil
	},
}

// lastEntryNamed finds the most recent logged entry with the given name, so a
// quick-add repeats the macros the user last used for it.
func lastEntryNamed(store *tracker.Store, name string) (models.FoodEntry, bool) {
	all := store.AggregateAll()
	for i := len(all) - 1; i >= 0; i-- {
		if all[i].Name == name {
			return all[i], true
		}
	}
	return models.FoodEntry{}, false
}

func init() {
	quickaddCmd.Flags().IntVarP(&quickaddTop, "top", "t", 5, "How many foods to rank")
	rootCmd.AddCommand(quickaddCmd)
}
