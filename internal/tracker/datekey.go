package tracker

import (
	"fmt"
	"time"
)

// DayFormat is the canonical date key layout. Every per-day collection in the
// store is keyed by a string in this form, in the user's local calendar day.
const DayFormat = "2006-01-02"

func Today() string {
	return time.Now().Format(DayFormat)
}

// ParseDay parses a date key, also accepting the short dd/mm/yy form people
// type on the command line.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(DayFormat, s)
	if err != nil {
		t, err = time.Parse("02/01/06", s)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func AddDays(day string, n int) (string, error) {
	t, err := ParseDay(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayFormat), nil
}

// DayRange returns the `days` date keys ending at end inclusive, walking
// backward one calendar day at a time, in chronological order.
func DayRange(end string, days int) ([]string, error) {
	t, err := ParseDay(end)
	if err != nil {
		return nil, err
	}
	if days < 1 {
		return nil, fmt.Errorf("invalid day count %d", days)
	}

	out := make([]string, days)
	for i := days - 1; i >= 0; i-- {
		out[i] = t.Format(DayFormat)
		t = t.AddDate(0, 0, -1)
	}
	return out, nil
}
