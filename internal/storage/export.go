package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Rhysnute92/fitlog/internal/tracker"
)

// BuildCSV flattens a snapshot into the export sheet: one row per logged
// item, sorted by date. Non-food rows carry their detail in the Name column
// and zero macros so the column set stays fixed.
func BuildCSV(snap tracker.Snapshot) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"Date", "Category", "Name", "Calories", "Protein", "Fat", "Carbs"}); err != nil {
		return "", err
	}

	write := func(date, category, name string, cal, protein, fat, carbs float64) {
		w.Write([]string{
			date, category, name,
			num(cal), num(protein), num(fat), num(carbs),
		})
	}

	for _, day := range sortedKeys(snap.FoodLogs) {
		for _, e := range snap.FoodLogs[day] {
			write(day, "Food", e.Name, e.Calories, e.Protein, e.Fat, e.Carbs)
		}
	}
	for _, day := range sortedKeys(snap.WorkoutLogs) {
		for _, s := range snap.WorkoutLogs[day] {
			name := fmt.Sprintf("%s %dx%d @ %s", s.ExerciseName, s.Sets, s.Reps, num(s.Weight))
			write(day, "Workout", name, 0, 0, 0, 0)
		}
	}

	trackerNames := make([]string, 0, len(snap.Trackers))
	for n := range snap.Trackers {
		trackerNames = append(trackerNames, n)
	}
	sort.Strings(trackerNames)
	for _, n := range trackerNames {
		t := snap.Trackers[n]
		for _, day := range sortedKeys(t.History) {
			name := fmt.Sprintf("%s: %s %s", t.Name, num(t.History[day]), t.Unit)
			write(day, "Tracker", name, 0, 0, 0, 0)
		}
	}

	for _, we := range snap.WeightHistory {
		write(we.Date, "Weight", num(we.Weight)+"kg", 0, 0, 0, 0)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// BuildJSON is the full backup: the snapshot as indented JSON.
func BuildJSON(snap tracker.Snapshot) ([]byte, error) {
	return json.MarshalIndent(snap, "", "  ")
}

// ParseJSON decodes a backup produced by BuildJSON.
func ParseJSON(data []byte) (tracker.Snapshot, error) {
	var snap tracker.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return tracker.Snapshot{}, fmt.Errorf("unreadable backup: %w", err)
	}
	return snap, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
