package cmd

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
	"github.com/Rhysnute92/fitlog/internal/utils"
)

var weighCmd = &cobra.Command{
	Use:   "weigh [kg]",
	Short: "Log today's body weight, or show the recent trend",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if len(args) == 1 {
			kg, err := strconv.ParseFloat(args[0], 64)
			if err != nil || kg <= 0 {
				return fmt.Errorf("Invalid weight %q: must be a positive number of kg", args[0])
			}
			if err := app.store.AddWeight(tracker.Today(), kg); err != nil {
				return err
			}
			fmt.Printf("✅ Logged %s\n", displayWeight(app, kg))
		}

		history := app.store.WeightHistory(7)
		if len(history) == 0 {
			fmt.Println("No weigh-ins yet")
			return nil
		}

		target := app.goals.Goals().TargetWeight
		fmt.Println("\nRecent weigh-ins:")
		for _, w := range history {
			fmt.Printf("  %s  %s\n", w.Date, displayWeight(app, w.Weight))
		}

		latest := history[len(history)-1].Weight
		diff := latest - target
		switch {
		case diff > 0:
			color.Yellow("%s to go until %s", displayWeight(app, diff), displayWeight(app, target))
		case diff < 0:
			color.Green("🎯 %s under your %s target", displayWeight(app, -diff), displayWeight(app, target))
		default:
			color.Green("🎯 Right on target at %s", displayWeight(app, target))
		}
		return nil
	},
}

// displayWeight renders a kg value in whichever unit the config asks for.
func displayWeight(a *app, kg float64) string {
	return utils.DisplayWeight(kg, a.cfg.Display.WeightUnit)
}

func init() {
	rootCmd.AddCommand(weighCmd)
}
