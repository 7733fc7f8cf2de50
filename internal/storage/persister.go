package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

// Storage implements tracker.Persister. The well-known logical keys map onto
// real tables; anything else round-trips as JSON through the snapshots table.
// Each Save rewrites the key's rows in one transaction, matching the
// write-the-whole-key behaviour the store promises.

func (s *Storage) Save(key string, value any) error {
	switch key {
	case tracker.KeyFoodLogs:
		logs, ok := value.(map[string][]models.FoodEntry)
		if !ok {
			return fmt.Errorf("unexpected value type for %s", key)
		}
		return s.saveFoodLogs(logs)
	case tracker.KeyWorkoutLogs:
		logs, ok := value.(map[string][]models.WorkoutSet)
		if !ok {
			return fmt.Errorf("unexpected value type for %s", key)
		}
		return s.saveWorkoutLogs(logs)
	case tracker.KeyTrackers:
		trackers, ok := value.(map[string]*models.CustomTracker)
		if !ok {
			return fmt.Errorf("unexpected value type for %s", key)
		}
		return s.saveTrackers(trackers)
	case tracker.KeyWeightHistory:
		weights, ok := value.([]models.WeightEntry)
		if !ok {
			return fmt.Errorf("unexpected value type for %s", key)
		}
		return s.saveWeightHistory(weights)
	case tracker.KeyGoals:
		goals, ok := value.(models.GoalConfig)
		if !ok {
			return fmt.Errorf("unexpected value type for %s", key)
		}
		return s.saveGoals(goals)
	default:
		return s.saveSnapshot(key, value)
	}
}

func (s *Storage) Load(key string, out any) error {
	switch key {
	case tracker.KeyFoodLogs:
		logs, ok := out.(*map[string][]models.FoodEntry)
		if !ok {
			return fmt.Errorf("unexpected out type for %s", key)
		}
		return s.loadFoodLogs(logs)
	case tracker.KeyWorkoutLogs:
		logs, ok := out.(*map[string][]models.WorkoutSet)
		if !ok {
			return fmt.Errorf("unexpected out type for %s", key)
		}
		return s.loadWorkoutLogs(logs)
	case tracker.KeyTrackers:
		trackers, ok := out.(*map[string]*models.CustomTracker)
		if !ok {
			return fmt.Errorf("unexpected out type for %s", key)
		}
		return s.loadTrackers(trackers)
	case tracker.KeyWeightHistory:
		weights, ok := out.(*[]models.WeightEntry)
		if !ok {
			return fmt.Errorf("unexpected out type for %s", key)
		}
		return s.loadWeightHistory(weights)
	case tracker.KeyGoals:
		goals, ok := out.(*models.GoalConfig)
		if !ok {
			return fmt.Errorf("unexpected out type for %s", key)
		}
		return s.loadGoals(goals)
	default:
		return s.loadSnapshot(key, out)
	}
}

func (s *Storage) saveFoodLogs(logs map[string][]models.FoodEntry) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM food_entries"); err != nil {
		return fmt.Errorf("clearing food entries: %w", err)
	}
	for day, entries := range logs {
		for i, e := range entries {
			if _, err := tx.Exec(
				`INSERT INTO food_entries
                    (id, day, position, name, calories, protein, carbs, fat, logged_at)
                    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				e.ID, day, i, e.Name, e.Calories, e.Protein, e.Carbs, e.Fat,
				e.Timestamp.UTC().Format(time.RFC3339),
			); err != nil {
				return fmt.Errorf("inserting food entry: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (s *Storage) loadFoodLogs(out *map[string][]models.FoodEntry) error {
	rows, err := s.DB.Query(
		`SELECT id, day, name, calories, protein, carbs, fat, logged_at
        FROM food_entries ORDER BY day, position`)
	if err != nil {
		return err
	}
	defer rows.Close()

	logs := make(map[string][]models.FoodEntry)
	for rows.Next() {
		var e models.FoodEntry
		var day, loggedAt string
		if err := rows.Scan(&e.ID, &day, &e.Name, &e.Calories, &e.Protein, &e.Carbs, &e.Fat, &loggedAt); err != nil {
			continue // corrupt row, skip rather than fail the load
		}
		e.Timestamp, _ = time.Parse(time.RFC3339, loggedAt)
		logs[day] = append(logs[day], e)
	}
	if len(logs) > 0 {
		*out = logs
	}
	return nil
}

func (s *Storage) saveWorkoutLogs(logs map[string][]models.WorkoutSet) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM workout_sets"); err != nil {
		return fmt.Errorf("clearing workout sets: %w", err)
	}
	for day, sets := range logs {
		for i, w := range sets {
			if _, err := tx.Exec(
				`INSERT INTO workout_sets
                    (id, day, position, exercise, sets, reps, weight, one_rep_max, logged_at)
                    VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				w.ID, day, i, w.ExerciseName, w.Sets, w.Reps, w.Weight, w.OneRepMax,
				w.Timestamp.UTC().Format(time.RFC3339),
			); err != nil {
				return fmt.Errorf("inserting workout set: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (s *Storage) loadWorkoutLogs(out *map[string][]models.WorkoutSet) error {
	rows, err := s.DB.Query(
		`SELECT id, day, exercise, sets, reps, weight, one_rep_max, logged_at
        FROM workout_sets ORDER BY day, position`)
	if err != nil {
		return err
	}
	defer rows.Close()

	logs := make(map[string][]models.WorkoutSet)
	for rows.Next() {
		var w models.WorkoutSet
		var day, loggedAt string
		if err := rows.Scan(&w.ID, &day, &w.ExerciseName, &w.Sets, &w.Reps, &w.Weight, &w.OneRepMax, &loggedAt); err != nil {
			continue
		}
		w.Timestamp, _ = time.Parse(time.RFC3339, loggedAt)
		logs[day] = append(logs[day], w)
	}
	if len(logs) > 0 {
		*out = logs
	}
	return nil
}

func (s *Storage) saveTrackers(trackers map[string]*models.CustomTracker) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tracker_entries"); err != nil {
		return fmt.Errorf("clearing tracker entries: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM trackers"); err != nil {
		return fmt.Errorf("clearing trackers: %w", err)
	}
	for _, t := range trackers {
		if _, err := tx.Exec(
			"INSERT INTO trackers (name, unit, step, goal) VALUES (?, ?, ?, ?)",
			t.Name, t.Unit, t.Step, t.Goal,
		); err != nil {
			return fmt.Errorf("inserting tracker: %w", err)
		}
		days := make([]string, 0, len(t.History))
		for d := range t.History {
			days = append(days, d)
		}
		sort.Strings(days)
		for _, d := range days {
			if _, err := tx.Exec(
				"INSERT INTO tracker_entries (tracker, day, amount) VALUES (?, ?, ?)",
				t.Name, d, t.History[d],
			); err != nil {
				return fmt.Errorf("inserting tracker entry: %w", err)
			}
		}
	}
	return tx.Commit()
}

func (s *Storage) loadTrackers(out *map[string]*models.CustomTracker) error {
	rows, err := s.DB.Query("SELECT name, unit, step, goal FROM trackers")
	if err != nil {
		return err
	}
	defer rows.Close()

	trackers := make(map[string]*models.CustomTracker)
	for rows.Next() {
		t := &models.CustomTracker{History: make(map[string]float64)}
		var goal sql.NullFloat64
		if err := rows.Scan(&t.Name, &t.Unit, &t.Step, &goal); err != nil {
			continue
		}
		t.Goal = goal.Float64
		trackers[t.Name] = t
	}

	entries, err := s.DB.Query("SELECT tracker, day, amount FROM tracker_entries")
	if err != nil {
		return err
	}
	defer entries.Close()
	for entries.Next() {
		var name, day string
		var amount float64
		if err := entries.Scan(&name, &day, &amount); err != nil {
			continue
		}
		if t, ok := trackers[name]; ok {
			t.History[day] = amount
		}
	}

	if len(trackers) > 0 {
		*out = trackers
	}
	return nil
}

func (s *Storage) saveWeightHistory(weights []models.WeightEntry) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM weight_history"); err != nil {
		return fmt.Errorf("clearing weight history: %w", err)
	}
	for _, w := range weights {
		if _, err := tx.Exec(
			"INSERT INTO weight_history (day, weight) VALUES (?, ?)",
			w.Date, w.Weight,
		); err != nil {
			return fmt.Errorf("inserting weight entry: %w", err)
		}
	}
	return tx.Commit()
}

func (s *Storage) loadWeightHistory(out *[]models.WeightEntry) error {
	rows, err := s.DB.Query("SELECT day, weight FROM weight_history ORDER BY position")
	if err != nil {
		return err
	}
	defer rows.Close()

	var weights []models.WeightEntry
	for rows.Next() {
		var w models.WeightEntry
		if err := rows.Scan(&w.Date, &w.Weight); err != nil {
			continue
		}
		weights = append(weights, w)
	}
	if len(weights) > 0 {
		*out = weights
	}
	return nil
}

func (s *Storage) saveGoals(g models.GoalConfig) error {
	_, err := s.DB.Exec(
		`INSERT INTO goals (id, rest_calories, train_calories, protein, carbs, fat, target_weight)
            VALUES (1, ?, ?, ?, ?, ?, ?)
            ON CONFLICT(id) DO UPDATE SET
                rest_calories = excluded.rest_calories,
                train_calories = excluded.train_calories,
                protein = excluded.protein,
                carbs = excluded.carbs,
                fat = excluded.fat,
                target_weight = excluded.target_weight`,
		g.RestCalories, g.TrainCalories, g.Protein, g.Carbs, g.Fat, g.TargetWeight,
	)
	return err
}

func (s *Storage) loadGoals(out *models.GoalConfig) error {
	var g models.GoalConfig
	err := s.DB.QueryRow(
		"SELECT rest_calories, train_calories, protein, carbs, fat, target_weight FROM goals WHERE id = 1",
	).Scan(&g.RestCalories, &g.TrainCalories, &g.Protein, &g.Carbs, &g.Fat, &g.TargetWeight)
	if err != nil {
		// Absent or unreadable goals keep the caller's defaults.
		return nil
	}
	*out = g
	return nil
}

func (s *Storage) saveSnapshot(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	_, err = s.DB.Exec(
		`INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
            ON CONFLICT(key) DO UPDATE SET
                value = excluded.value,
                updated_at = excluded.updated_at`,
		key, string(data), time.Now().UTC().Format(time.RFC3339),
	)
	return err
}

func (s *Storage) loadSnapshot(key string, out any) error {
	var data string
	err := s.DB.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&data)
	if err != nil {
		return nil
	}
	// A snapshot that no longer parses falls back to the caller's defaults
	// instead of propagating a decode failure.
	json.Unmarshal([]byte(data), out)
	return nil
}
