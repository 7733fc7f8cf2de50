package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var (
	liftWeight float64
	liftReps   int
	liftSets   int
	liftDate   string
)

var liftCmd = &cobra.Command{
	Use:   "lift [exercise]",
	Short: "Log a workout set and get the estimated 1RM",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise := args[0]

		oneRM, err := tracker.OneRepMax(liftWeight, liftReps)
		if err != nil {
			return err
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		day := liftDate
		if day == "" {
			day = tracker.Today()
		}

		// PB check runs against history before this set lands in it.
		isPB := app.store.IsPersonalBest(exercise, liftWeight)

		set := models.WorkoutSet{
			ID:           uuid.New().String(),
			ExerciseName: exercise,
			Sets:         liftSets,
			Reps:         liftReps,
			Weight:       liftWeight,
			OneRepMax:    oneRM,
			Timestamp:    time.Now().UTC(),
		}
		if err := app.store.AddSet(day, set); err != nil {
			return err
		}

		fmt.Printf("✅ Logged %s %dx%d @ %s — est. 1RM %s\n",
			exercise, liftSets, liftReps,
			displayWeight(app, liftWeight), displayWeight(app, oneRM))
		if isPB {
			color.Yellow("🏆 New personal best on %s!", exercise)
		}
		return nil
	},
}

func init() {
	liftCmd.Flags().Float64VarP(&liftWeight, "weight", "w", 0, "Weight used for the set (kg)")
	liftCmd.Flags().IntVarP(&liftReps, "reps", "r", 0, "Reps performed")
	liftCmd.Flags().IntVarP(&liftSets, "sets", "s", 1, "Number of sets performed")
	liftCmd.Flags().StringVarP(&liftDate, "date", "d", "", "Day to log on (default today)")
	liftCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(liftCmd)
}
