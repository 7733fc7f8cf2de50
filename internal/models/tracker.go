package models

// CustomTracker is a user-defined daily counter tile (water, steps, sleep...).
// Amounts are keyed by day, so every tile starts back at zero at the day
// boundary without any reset bookkeeping.
type CustomTracker struct {
	Name    string             `json:"name"`
	Unit    string             `json:"unit"`
	Step    float64            `json:"step"`
	Goal    float64            `json:"goal,omitempty"`
	History map[string]float64 `json:"history"`
}

func (t *CustomTracker) Amount(day string) float64 {
	if t.History == nil {
		return 0
	}
	return t.History[day]
}
