package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

// trainingMarker is the zero-calorie diary entry that marks a day as trained,
// so the diary itself shows which days were training days.
const trainingMarker = "Workout 💪"

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show and change daily goals, or toggle training mode",
}

var goalShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		g := app.goals.Goals()
		mode := "rest"
		if app.goals.IsTrainingDay() {
			mode = "training"
		}
		fmt.Printf("Mode:           %s (active goal %.0f kcal)\n", mode, app.goals.ActiveCalorieGoal())
		fmt.Printf("Rest calories:  %.0f\n", g.RestCalories)
		fmt.Printf("Train calories: %.0f\n", g.TrainCalories)
		fmt.Printf("Protein:        %.0fg\n", g.Protein)
		fmt.Printf("Carbs:          %.0fg\n", g.Carbs)
		fmt.Printf("Fat:            %.0fg\n", g.Fat)
		fmt.Printf("Target weight:  %.1fkg\n", g.TargetWeight)
		return nil
	},
}

var goalSetCmd = &cobra.Command{
	Use:   "set [kind] [value]",
	Short: "Set one goal: rest-calories, train-calories, protein, carbs, fat or target-weight",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("Invalid goal value %q: must be a number", args[1])
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		if err := app.goals.SetGoal(tracker.GoalKind(args[0]), value); err != nil {
			return err
		}

		fmt.Printf("✅ Set %s goal to %v\n", args[0], value)
		return nil
	},
}

var goalToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip between rest and training day",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		active, err := app.goals.ToggleTrainingMode()
		if err != nil {
			return err
		}

		day := tracker.Today()
		if app.goals.IsTrainingDay() {
			if err := addTrainingMarker(app, day); err != nil {
				return err
			}
			color.Green("💪 Training day — goal is now %.0f kcal", active)
		} else {
			if err := removeTrainingMarker(app, day); err != nil {
				return err
			}
			color.Cyan("😴 Rest day — goal is now %.0f kcal", active)
		}
		return nil
	},
}

func addTrainingMarker(app *app, day string) error {
	for _, e := range app.store.Entries(day) {
		if e.Name == trainingMarker {
			return nil
		}
	}
	return app.store.AddEntry(day, models.FoodEntry{
		ID:        uuid.New().String(),
		Name:      trainingMarker,
		Timestamp: time.Now().UTC(),
	})
}

func removeTrainingMarker(app *app, day string) error {
	// Walk backwards so removals don't shift the indexes still to visit.
	entries := app.store.Entries(day)
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Name == trainingMarker {
			if err := app.store.RemoveEntry(day, i); err != nil {
				return err
			}
		}
	}
	return nil
}

func init() {
	goalCmd.AddCommand(goalShowCmd)
	goalCmd.AddCommand(goalSetCmd)
	goalCmd.AddCommand(goalToggleCmd)
	rootCmd.AddCommand(goalCmd)
}
