package models

import "time"

type WorkoutSet struct {
	ID           string    `json:"id"`
	ExerciseName string    `json:"exercise_name"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	Weight       float64   `json:"weight"`
	OneRepMax    float64   `json:"one_rep_max"` // Computed once at creation, never recomputed.
	Timestamp    time.Time `json:"timestamp"`
}

// Volume is the classic sets x reps x weight tonnage of the set.
func (w WorkoutSet) Volume() float64 {
	return float64(w.Sets*w.Reps) * w.Weight
}

type WeightEntry struct {
	Date   string  `json:"date"`
	Weight float64 `json:"weight"` // Always stored in kg.
}
