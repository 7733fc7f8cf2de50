package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

// calendarCmd prints a month grid of the diary.
// Days with food logged are marked, and training days get their own color,
// with a legend printed below the calendar.
var calendarCmd = &cobra.Command{
	Use:   "calendar [month] [year]",
	Short: "Display a calendar showing logged days and training days",
	Args:  cobra.RangeArgs(0, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Determine month and year (default to current month/year).
		now := time.Now()
		month := now.Month()
		year := now.Year()
		if len(args) >= 1 {
			m, err := strconv.Atoi(args[0])
			if err != nil || m < 1 || m > 12 {
				return fmt.Errorf("invalid month: %s", args[0])
			}
			month = time.Month(m)
		}
		if len(args) == 2 {
			y, err := strconv.Atoi(args[1])
			if err != nil || y < 1 {
				return fmt.Errorf("invalid year: %s", args[1])
			}
			year = y
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
		lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

		// Classify each day of the month from its diary entries.
		logged := make(map[int]bool)
		trained := make(map[int]bool)
		for day := 1; day <= lastOfMonth.Day(); day++ {
			key := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(tracker.DayFormat)
			entries := app.store.Entries(key)
			if len(entries) == 0 {
				continue
			}
			logged[day] = true
			for _, e := range entries {
				if e.Name == trainingMarker {
					trained[day] = true
					break
				}
			}
		}

		trainColor := color.New(color.FgGreen).SprintFunc()
		logColor := color.New(color.FgCyan).SprintFunc()

		// Print the calendar header.
		header := fmt.Sprintf("%s %d", month.String(), year)
		fmt.Println(centerText(header, 20))
		fmt.Println("Su Mo Tu We Th Fr Sa")

		// Determine weekday of first day (0 = Sunday).
		weekday := int(firstOfMonth.Weekday())
		for i := 0; i < weekday; i++ {
			fmt.Print("   ")
		}

		for day := 1; day <= lastOfMonth.Day(); day++ {
			dayStr := fmt.Sprintf("%2d", day)
			switch {
			case trained[day]:
				dayStr = trainColor(dayStr + "*")
			case logged[day]:
				dayStr = logColor(dayStr + "*")
			}
			fmt.Printf("%s ", dayStr)
			weekday++
			if weekday%7 == 0 {
				fmt.Println()
			}
		}
		fmt.Print("\n\n")

		fmt.Println("Legend:")
		fmt.Printf("  %s: training day\n", trainColor("██"))
		fmt.Printf("  %s: food logged\n", logColor("██"))

		return nil
	},
}

// centerText centers the given string in a field of the specified width.
func centerText(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := (width - len(s)) / 2
	return strings.Repeat(" ", padding) + s
}

func init() {
	rootCmd.AddCommand(calendarCmd)
}
