package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var (
	trackUnit string
	trackStep float64
	trackGoal float64
	trackDate string
)

var trackCmd = &cobra.Command{
	Use:   "track",
	Short: "Custom daily counters: water, steps, sleep, whatever",
}

var trackNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a custom tracker tile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.store.AddTracker(args[0], trackUnit, trackStep, trackGoal); err != nil {
			return err
		}

		fmt.Printf("✅ Tracker '%s' ready (+%v %s per add)\n", args[0], trackStep, trackUnit)
		return nil
	},
}

var trackAddCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Bump a tracker's count for the day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		day := trackDate
		if day == "" {
			day = tracker.Today()
		}

		// Water exists out of the box: 8 glasses a day, one per add.
		if _, ok := app.store.Tracker(name); !ok && name == "water" {
			if err := app.store.AddTracker("water", "glasses", 1, 8); err != nil {
				return err
			}
		}

		amount, err := app.store.Increment(name, day)
		if err != nil {
			return err
		}

		t, _ := app.store.Tracker(name)
		if t != nil && t.Goal > 0 {
			fmt.Printf("💧 %s: %.0f/%.0f %s on %s\n", name, amount, t.Goal, t.Unit, day)
		} else {
			fmt.Printf("✅ %s: %v on %s\n", name, amount, day)
		}
		return nil
	},
}

var trackShowCmd = &cobra.Command{
	Use:   "show",
	Short: "List all trackers with today's counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		trackers := app.store.Trackers()
		if len(trackers) == 0 {
			fmt.Println("No trackers yet. Create one with 'fitlog track new'")
			return nil
		}

		day := tracker.Today()
		for _, t := range trackers {
			if t.Goal > 0 {
				fmt.Printf("%-12s %v/%v %s\n", t.Name, t.Amount(day), t.Goal, t.Unit)
			} else {
				fmt.Printf("%-12s %v %s\n", t.Name, t.Amount(day), t.Unit)
			}
		}
		return nil
	},
}

func init() {
	trackNewCmd.Flags().StringVarP(&trackUnit, "unit", "u", "", "Unit label (glasses, steps, hours...)")
	trackNewCmd.Flags().Float64VarP(&trackStep, "step", "s", 1, "How much one add counts for")
	trackNewCmd.Flags().Float64VarP(&trackGoal, "goal", "g", 0, "Daily goal (0 for none)")
	trackAddCmd.Flags().StringVarP(&trackDate, "date", "d", "", "Day to count on (default today)")
	trackCmd.AddCommand(trackNewCmd)
	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackShowCmd)
	rootCmd.AddCommand(trackCmd)
}
