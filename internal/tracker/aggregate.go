package tracker

import (
	"sort"
	"strings"
)

// Totals is one day's summed nutrition.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type DayTotals struct {
	Date   string `json:"date"`
	Totals Totals `json:"totals"`
}

// Aggregator folds the store's entries into totals and derived metrics for a
// given goal snapshot. It is a pure view over the current store state: no
// hidden counters, calling anything twice gives the same answer.
type Aggregator struct {
	store *Store
	goals *Registry
}

func NewAggregator(store *Store, goals *Registry) *Aggregator {
	return &Aggregator{store: store, goals: goals}
}

// DailyTotals sums each macro over the day's entries. Absent days sum to
// zero; the sum is commutative, so entry order never matters.
func (a *Aggregator) DailyTotals(day string) Totals {
	var t Totals
	for _, e := range a.store.Entries(day) {
		t.Calories += num(e.Calories)
		t.Protein += num(e.Protein)
		t.Carbs += num(e.Carbs)
		t.Fat += num(e.Fat)
	}
	return t
}

// Remaining is the active calorie goal minus the day's consumed calories,
// unclamped. Negative means over budget.
func (a *Aggregator) Remaining(day string) float64 {
	return a.goals.ActiveCalorieGoal() - a.DailyTotals(day).Calories
}

// ProgressPercent is current/goal as a percentage, capped at 100. A goal of
// zero or less yields 0 rather than a division blowup.
func ProgressPercent(current, goal float64) float64 {
	if goal <= 0 {
		return 0
	}
	pct := current / goal * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// WeeklyRollup returns per-day totals for the `days` dates ending at end
// inclusive, in chronological order. Days with nothing logged appear with
// zero totals rather than being dropped, so tables and charts stay aligned.
func (a *Aggregator) WeeklyRollup(end string, days int) ([]DayTotals, error) {
	keys, err := DayRange(end, days)
	if err != nil {
		return nil, err
	}
	out := make([]DayTotals, len(keys))
	for i, d := range keys {
		out[i] = DayTotals{Date: d, Totals: a.DailyTotals(d)}
	}
	return out, nil
}

// FrequencyRanked returns the names of the topN most-logged foods across all
// history. The sort is stable on descending count, so ties keep the order in
// which names were first encountered during the scan.
func (a *Aggregator) FrequencyRanked(topN int) []string {
	counts := make(map[string]int)
	var order []string
	for _, e := range a.store.AggregateAll() {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		if _, seen := counts[name]; !seen {
			order = append(order, name)
		}
		counts[name]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}
	return order
}
