package tracker

import (
	"time"

	"github.com/Rhysnute92/fitlog/internal/models"
)

// Snapshot is the full serializable state of the app: every logged entry plus
// the goal configuration. It is what export, backup, and cloud sync move
// around.
type Snapshot struct {
	FoodLogs      map[string][]models.FoodEntry    `json:"foodLogs"`
	WorkoutLogs   map[string][]models.WorkoutSet   `json:"workoutLogs"`
	Trackers      map[string]*models.CustomTracker `json:"customTrackers"`
	WeightHistory []models.WeightEntry             `json:"weightHistory"`
	Goals         models.GoalConfig                `json:"userGoals"`
	TrainingDay   bool                             `json:"isTrainingDay"`
	ExportedAt    time.Time                        `json:"exported_at"`
}

func BuildSnapshot(s *Store, r *Registry) Snapshot {
	s.mu.Lock()
	snap := Snapshot{
		FoodLogs:      make(map[string][]models.FoodEntry, len(s.food)),
		WorkoutLogs:   make(map[string][]models.WorkoutSet, len(s.workouts)),
		Trackers:      make(map[string]*models.CustomTracker, len(s.trackers)),
		WeightHistory: append([]models.WeightEntry(nil), s.weights...),
		ExportedAt:    time.Now().UTC(),
	}
	for d, entries := range s.food {
		snap.FoodLogs[d] = append([]models.FoodEntry(nil), entries...)
	}
	for d, sets := range s.workouts {
		snap.WorkoutLogs[d] = append([]models.WorkoutSet(nil), sets...)
	}
	for n, t := range s.trackers {
		cp := *t
		snap.Trackers[n] = &cp
	}
	s.mu.Unlock()

	snap.Goals = r.Goals()
	snap.TrainingDay = r.IsTrainingDay()
	return snap
}

// RestoreSnapshot replaces matching local state wholesale with the snapshot's
// collections. Empty snapshot fields leave the local data alone, so a partial
// remote never wipes anything. Everything is persisted once restored.
func RestoreSnapshot(s *Store, r *Registry, snap Snapshot) error {
	s.mu.Lock()
	if len(snap.FoodLogs) > 0 {
		s.food = snap.FoodLogs
	}
	if len(snap.WorkoutLogs) > 0 {
		s.workouts = snap.WorkoutLogs
	}
	if len(snap.Trackers) > 0 {
		s.trackers = snap.Trackers
	}
	if len(snap.WeightHistory) > 0 {
		s.weights = snap.WeightHistory
	}
	err := s.save(KeyFoodLogs, s.food)
	if err == nil {
		err = s.save(KeyWorkoutLogs, s.workouts)
	}
	if err == nil {
		err = s.save(KeyTrackers, s.trackers)
	}
	if err == nil {
		err = s.save(KeyWeightHistory, s.weights)
	}
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if snap.Goals != (models.GoalConfig{}) {
		r.mu.Lock()
		r.goals = snap.Goals
		r.trainingDay = snap.TrainingDay
		err = r.saveLocked()
		r.mu.Unlock()
	}
	return err
}
