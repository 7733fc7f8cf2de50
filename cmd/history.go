package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLast int

var historyCmd = &cobra.Command{
	Use:   "history [exercise]",
	Short: "Show logged sets for an exercise, oldest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exercise := args[0]

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		var matched []struct {
			day    string
			line   string
			weight float64
		}
		best := 0.0
		for _, w := range app.store.AllSets() {
			if !strings.EqualFold(w.ExerciseName, exercise) {
				continue
			}
			if w.Weight > best {
				best = w.Weight
			}
			matched = append(matched, struct {
				day    string
				line   string
				weight float64
			}{
				day: w.Timestamp.Format("2006-01-02"),
				line: fmt.Sprintf("%dx%d @ %s (vol %.0f, est. 1RM %s)",
					w.Sets, w.Reps, displayWeight(app, w.Weight), w.Volume(), displayWeight(app, w.OneRepMax)),
				weight: w.Weight,
			})
		}

		if len(matched) == 0 {
			fmt.Printf("No sets logged for %q yet\n", exercise)
			return nil
		}
		if historyLast > 0 && len(matched) > historyLast {
			matched = matched[len(matched)-historyLast:]
		}

		fmt.Printf("History for %s:\n", exercise)
		for _, m := range matched {
			line := fmt.Sprintf("  %s  %s", m.day, m.line)
			if m.weight == best {
				color.Yellow("%s 🏆", line)
			} else {
				fmt.Println(line)
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLast, "last", "l", 0, "Only show the most recent N sets")
	rootCmd.AddCommand(historyCmd)
}
