package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var statusDate string

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the day's totals, remaining calories and macro progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		day := statusDate
		if day == "" {
			day = tracker.Today()
		}

		totals := app.agg.DailyTotals(day)
		goals := app.goals.Goals()
		activeGoal := app.goals.ActiveCalorieGoal()
		remaining := app.agg.Remaining(day)

		printBoxedHeader("STATUS " + day)

		mode := "Rest Day"
		modeColor := color.New(color.FgCyan)
		if app.goals.IsTrainingDay() {
			mode = "Training Day"
			modeColor = color.New(color.FgGreen)
		}
		fmt.Printf("%s — goal %.0f kcal\n\n", modeColor.Sprint(mode), activeGoal)

		fmt.Printf("Calories  %s %.0f / %.0f\n",
			renderBar(tracker.ProgressPercent(totals.Calories, activeGoal)), totals.Calories, activeGoal)
		fmt.Printf("Protein   %s %.0fg / %.0fg\n",
			renderBar(tracker.ProgressPercent(totals.Protein, goals.Protein)), totals.Protein, goals.Protein)
		fmt.Printf("Carbs     %s %.0fg / %.0fg\n",
			renderBar(tracker.ProgressPercent(totals.Carbs, goals.Carbs)), totals.Carbs, goals.Carbs)
		fmt.Printf("Fat       %s %.0fg / %.0fg\n",
			renderBar(tracker.ProgressPercent(totals.Fat, goals.Fat)), totals.Fat, goals.Fat)

		fmt.Println()
		if remaining < 0 {
			color.Red("Remaining: %.0f kcal (over budget)", remaining)
		} else {
			color.Green("Remaining: %.0f kcal", remaining)
		}

		entries := app.store.Entries(day)
		if len(entries) > 0 {
			fmt.Println("\nDiary:")
			for i, e := range entries {
				fmt.Printf("  %2d. %s (%.0f kcal) P:%.0f C:%.0f F:%.0f\n",
					i+1, e.Name, e.Calories, e.Protein, e.Carbs, e.Fat)
			}
		}

		if sets := app.store.Sets(day); len(sets) > 0 {
			fmt.Println("\nTraining:")
			for _, w := range sets {
				fmt.Printf("  %s %dx%d @ %s (vol %.0f)\n",
					w.ExerciseName, w.Sets, w.Reps, displayWeight(app, w.Weight), w.Volume())
			}
		}

		for _, t := range app.store.Trackers() {
			amount := t.Amount(day)
			if t.Goal > 0 {
				fmt.Printf("\n%s: %.0f/%.0f %s %s\n", t.Name, amount, t.Goal, t.Unit,
					renderBar(tracker.ProgressPercent(amount, t.Goal)))
			} else {
				fmt.Printf("\n%s: %.0f %s\n", t.Name, amount, t.Unit)
			}
		}

		return nil
	},
}

const barWidth = 20

func renderBar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
	if pct >= 100 {
		return color.New(color.FgRed).Sprint(bar)
	}
	return color.New(color.FgGreen).Sprint(bar)
}

func printBoxedHeader(title string) {
	line := strings.Repeat("═", len(title)+4)
	fmt.Printf("╔%s╗\n║  %s  ║\n╚%s╝\n", line, title, line)
}

func init() {
	statusCmd.Flags().StringVarP(&statusDate, "date", "d", "", "Day to show (default today)")
	rootCmd.AddCommand(statusCmd)
}
