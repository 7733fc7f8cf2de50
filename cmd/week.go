package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

var (
	weekEnd  string
	weekDays int
)

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show a rolling multi-day summary table ending at a date",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		end := weekEnd
		if end == "" {
			end = tracker.Today()
		}

		rollup, err := app.agg.WeeklyRollup(end, weekDays)
		if err != nil {
			return err
		}

		activeGoal := app.goals.ActiveCalorieGoal()

		fmt.Printf("%-12s %8s %8s %8s %8s\n", "Date", "Kcal", "Protein", "Carbs", "Fat")
		var total tracker.Totals
		for _, day := range rollup {
			t := day.Totals
			line := fmt.Sprintf("%-12s %8.0f %8.0f %8.0f %8.0f", day.Date, t.Calories, t.Protein, t.Carbs, t.Fat)
			if t.Calories > activeGoal {
				color.Red(line)
			} else {
				fmt.Println(line)
			}
			total.Calories += t.Calories
			total.Protein += t.Protein
			total.Carbs += t.Carbs
			total.Fat += t.Fat
		}

		n := float64(len(rollup))
		fmt.Printf("%-12s %8.0f %8.0f %8.0f %8.0f\n", "avg/day",
			total.Calories/n, total.Protein/n, total.Carbs/n, total.Fat/n)
		return nil
	},
}

func init() {
	weekCmd.Flags().StringVarP(&weekEnd, "end", "e", "", "Last day of the range (default today)")
	weekCmd.Flags().IntVarP(&weekDays, "days", "n", 7, "Number of days to include")
	rootCmd.AddCommand(weekCmd)
}
