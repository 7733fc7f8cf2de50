package tracker

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/Rhysnute92/fitlog/internal/models"
)

// Logical persistence keys. The storage layer decides how each one is laid
// out on disk; the store only promises to write a key back out after every
// mutation of the collection behind it.
const (
	KeyFoodLogs      = "foodLogs"
	KeyWorkoutLogs   = "workoutLogs"
	KeyTrackers      = "customTrackers"
	KeyWeightHistory = "weightHistory"
	KeyGoals         = "userGoals"
	KeyTrainingDays  = "trainingDays"
)

// Persister is the persistence collaborator. Load fills out with the stored
// value for key and leaves it untouched when nothing (or garbage) is stored,
// so callers pre-fill out with their defaults.
type Persister interface {
	Save(key string, value any) error
	Load(key string, out any) error
}

// Store holds every logged entry, keyed by day. Mutations write through to
// the persister before returning; a persist failure is reported to the caller
// but the in-memory state stays authoritative, so the app keeps working
// offline.
type Store struct {
	mu       sync.Mutex
	food     map[string][]models.FoodEntry
	workouts map[string][]models.WorkoutSet
	trackers map[string]*models.CustomTracker
	weights  []models.WeightEntry
	persist  Persister
}

func NewStore(p Persister) *Store {
	return &Store{
		food:     make(map[string][]models.FoodEntry),
		workouts: make(map[string][]models.WorkoutSet),
		trackers: make(map[string]*models.CustomTracker),
		persist:  p,
	}
}

// LoadAll hydrates the store from the persister. Absent or corrupt keys are
// not errors, they just leave the collection empty.
func (s *Store) LoadAll() {
	if s.persist == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist.Load(KeyFoodLogs, &s.food)
	s.persist.Load(KeyWorkoutLogs, &s.workouts)
	s.persist.Load(KeyTrackers, &s.trackers)
	s.persist.Load(KeyWeightHistory, &s.weights)
}

func (s *Store) save(key string, value any) error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(key, value); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

//
// Food entries
//

// AddEntry appends the entry to the day's log. Entries are append-only: the
// list is never reordered or overwritten, only delete-by-index and dedupe
// remove from it.
func (s *Store) AddEntry(day string, e models.FoodEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.food[day] = append(s.food[day], sanitizeEntry(e))
	return s.save(KeyFoodLogs, s.food)
}

// RemoveEntry deletes by positional index. An out-of-range index is a silent
// no-op: the UI calls this straight from delete buttons and expects nothing
// back.
func (s *Store) RemoveEntry(day string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries := s.food[day]
	if index < 0 || index >= len(entries) {
		return nil
	}
	s.food[day] = append(entries[:index], entries[index+1:]...)
	return s.save(KeyFoodLogs, s.food)
}

// Entries returns the day's log in insertion order. Days with no data yield
// an empty slice, never an error.
func (s *Store) Entries(day string) []models.FoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.FoodEntry, len(s.food[day]))
	copy(out, s.food[day])
	return out
}

// Deduplicate removes duplicate food entries for the day, keeping the first
// occurrence. The default policy treats entries as duplicates only when name
// and every macro match; the fuzzy policy matches on trimmed, lowercased name
// plus calories. Returns the number of entries removed.
func (s *Store) Deduplicate(day string, fuzzy bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.food[day]
	seen := make(map[string]bool, len(entries))
	kept := entries[:0]
	removed := 0
	for _, e := range entries {
		var k string
		if fuzzy {
			k = fmt.Sprintf("%s|%v", strings.ToLower(strings.TrimSpace(e.Name)), e.Calories)
		} else {
			k = fmt.Sprintf("%s|%v|%v|%v|%v", e.Name, e.Calories, e.Protein, e.Fat, e.Carbs)
		}
		if seen[k] {
			removed++
			continue
		}
		seen[k] = true
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0, nil
	}
	s.food[day] = kept
	return removed, s.save(KeyFoodLogs, s.food)
}

// AggregateAll flattens every food entry across every day, ordered by day key
// and insertion order within a day. Feeds the frequency analysis.
func (s *Store) AggregateAll() []models.FoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := make([]string, 0, len(s.food))
	for d := range s.food {
		days = append(days, d)
	}
	sort.Strings(days)

	var out []models.FoodEntry
	for _, d := range days {
		out = append(out, s.food[d]...)
	}
	return out
}

// CopyDay copies one day's food log wholesale onto another day, replacing
// whatever the target day had.
func (s *Store) CopyDay(from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.food[from]) == 0 {
		return fmt.Errorf("nothing to copy from %s", from)
	}
	s.food[to] = append([]models.FoodEntry(nil), s.food[from]...)
	return s.save(KeyFoodLogs, s.food)
}

//
// Workout sets
//

func (s *Store) AddSet(day string, w models.WorkoutSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workouts[day] = append(s.workouts[day], w)
	return s.save(KeyWorkoutLogs, s.workouts)
}

func (s *Store) Sets(day string) []models.WorkoutSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WorkoutSet, len(s.workouts[day]))
	copy(out, s.workouts[day])
	return out
}

func (s *Store) AllSets() []models.WorkoutSet {
	s.mu.Lock()
	defer s.mu.Unlock()

	days := make([]string, 0, len(s.workouts))
	for d := range s.workouts {
		days = append(days, d)
	}
	sort.Strings(days)

	var out []models.WorkoutSet
	for _, d := range days {
		out = append(out, s.workouts[d]...)
	}
	return out
}

// IsPersonalBest reports whether weight beats every previously logged set of
// the exercise. A first-ever lift is not a PB, there is nothing to beat yet.
func (s *Store) IsPersonalBest(exercise string, weight float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	best := math.Inf(-1)
	found := false
	for _, sets := range s.workouts {
		for _, w := range sets {
			if strings.EqualFold(w.ExerciseName, exercise) {
				found = true
				if w.Weight > best {
					best = w.Weight
				}
			}
		}
	}
	return found && weight > best
}

//
// Custom trackers
//

// AddTracker registers a new daily counter tile. Re-registering an existing
// tile just updates its unit/step/goal and keeps the history.
func (s *Store) AddTracker(name, unit string, step, goal float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[name]
	if !ok {
		t = &models.CustomTracker{Name: name, History: make(map[string]float64)}
		s.trackers[name] = t
	}
	t.Unit = unit
	t.Step = step
	t.Goal = goal
	return s.save(KeyTrackers, s.trackers)
}

// Increment bumps the tracker's amount for the day by its step. The history
// is day-keyed, so a new day starts from zero on its own.
func (s *Store) Increment(name, day string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[name]
	if !ok {
		return 0, fmt.Errorf("no tracker named %q", name)
	}
	if t.History == nil {
		t.History = make(map[string]float64)
	}
	t.History[day] += t.Step
	return t.History[day], s.save(KeyTrackers, s.trackers)
}

func (s *Store) Tracker(name string) (*models.CustomTracker, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.trackers[name]
	if !ok {
		return nil, false
	}
	cp := *t
	return &cp, true
}

func (s *Store) Trackers() []*models.CustomTracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := make([]string, 0, len(s.trackers))
	for n := range s.trackers {
		names = append(names, n)
	}
	sort.Strings(names)

	out := make([]*models.CustomTracker, 0, len(names))
	for _, n := range names {
		cp := *s.trackers[n]
		out = append(out, &cp)
	}
	return out
}

//
// Body weight
//

func (s *Store) AddWeight(day string, kg float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.weights = append(s.weights, models.WeightEntry{Date: day, Weight: kg})
	return s.save(KeyWeightHistory, s.weights)
}

// WeightHistory returns the most recent `last` entries, oldest first.
// last <= 0 returns everything.
func (s *Store) WeightHistory(last int) []models.WeightEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	start := 0
	if last > 0 && len(s.weights) > last {
		start = len(s.weights) - last
	}
	out := make([]models.WeightEntry, len(s.weights)-start)
	copy(out, s.weights[start:])
	return out
}

// sanitizeEntry zeroes any unparsable numeric field so NaN never propagates
// into totals.
func sanitizeEntry(e models.FoodEntry) models.FoodEntry {
	e.Calories = num(e.Calories)
	e.Protein = num(e.Protein)
	e.Carbs = num(e.Carbs)
	e.Fat = num(e.Fat)
	return e
}

func num(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
