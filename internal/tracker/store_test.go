package tracker

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhysnute92/fitlog/internal/models"
)

// fakePersister records every save so tests can assert write-through
// behaviour without a database.
type fakePersister struct {
	saves  map[string]int
	failOn string
}

func newFakePersister() *fakePersister {
	return &fakePersister{saves: make(map[string]int)}
}

func (p *fakePersister) Save(key string, _ any) error {
	if key == p.failOn {
		return errors.New("disk on fire")
	}
	p.saves[key]++
	return nil
}

func (p *fakePersister) Load(string, any) error { return nil }

func egg() models.FoodEntry {
	return models.FoodEntry{Name: "Egg", Calories: 70, Protein: 6, Fat: 5, Carbs: 1}
}

func TestStore_AddAndGetEntries(t *testing.T) {
	s := NewStore(nil)
	day := "2024-01-05"

	assert.Empty(t, s.Entries(day))

	require.NoError(t, s.AddEntry(day, egg()))
	require.NoError(t, s.AddEntry(day, models.FoodEntry{Name: "Rice", Calories: 130}))

	entries := s.Entries(day)
	require.Len(t, entries, 2)
	assert.Equal(t, "Egg", entries[0].Name)
	assert.Equal(t, "Rice", entries[1].Name)

	// Other days are untouched and never error.
	assert.Empty(t, s.Entries("2024-01-06"))
}

func TestStore_AddEntry_SanitizesNaN(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddEntry("2024-01-05", models.FoodEntry{
		Name:     "Mystery",
		Calories: math.NaN(),
		Protein:  math.Inf(1),
	}))

	e := s.Entries("2024-01-05")[0]
	assert.Zero(t, e.Calories)
	assert.Zero(t, e.Protein)
}

func TestStore_RemoveEntry_OutOfRange(t *testing.T) {
	s := NewStore(nil)
	day := "2024-01-05"
	require.NoError(t, s.AddEntry(day, egg()))

	require.NoError(t, s.RemoveEntry(day, 5))
	require.NoError(t, s.RemoveEntry(day, -1))
	require.NoError(t, s.RemoveEntry("2024-02-02", 0))
	assert.Len(t, s.Entries(day), 1)

	require.NoError(t, s.RemoveEntry(day, 0))
	assert.Empty(t, s.Entries(day))
}

func TestStore_Deduplicate_Strict(t *testing.T) {
	s := NewStore(nil)
	day := "2024-01-05"

	// Two byte-identical eggs, one with a different fat value.
	require.NoError(t, s.AddEntry(day, egg()))
	require.NoError(t, s.AddEntry(day, egg()))
	other := egg()
	other.Fat = 6
	require.NoError(t, s.AddEntry(day, other))

	removed, err := s.Deduplicate(day, false)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Len(t, s.Entries(day), 2)

	// Idempotent: nothing left to remove.
	removed, err = s.Deduplicate(day, false)
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestStore_Deduplicate_Fuzzy(t *testing.T) {
	s := NewStore(nil)
	day := "2024-01-05"

	require.NoError(t, s.AddEntry(day, egg()))
	loose := models.FoodEntry{Name: "  egg ", Calories: 70, Protein: 99}
	require.NoError(t, s.AddEntry(day, loose))

	// Strict policy sees two different entries.
	removed, err := s.Deduplicate(day, false)
	require.NoError(t, err)
	assert.Zero(t, removed)

	// Fuzzy policy collapses them on (name, calories), first one wins.
	removed, err = s.Deduplicate(day, true)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	entries := s.Entries(day)
	require.Len(t, entries, 1)
	assert.Equal(t, "Egg", entries[0].Name)
}

func TestStore_WriteThroughPersistence(t *testing.T) {
	p := newFakePersister()
	s := NewStore(p)
	day := "2024-01-05"

	require.NoError(t, s.AddEntry(day, egg()))
	require.NoError(t, s.RemoveEntry(day, 0))
	assert.Equal(t, 2, p.saves[KeyFoodLogs])

	require.NoError(t, s.AddSet(day, models.WorkoutSet{ExerciseName: "Squat", Sets: 3, Reps: 5, Weight: 100}))
	assert.Equal(t, 1, p.saves[KeyWorkoutLogs])
}

func TestStore_PersistFailureKeepsMemoryState(t *testing.T) {
	p := newFakePersister()
	p.failOn = KeyFoodLogs
	s := NewStore(p)
	day := "2024-01-05"

	err := s.AddEntry(day, egg())
	require.Error(t, err)

	// The entry is still there: local state stays authoritative.
	assert.Len(t, s.Entries(day), 1)
}

func TestStore_CopyDay(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddEntry("2024-01-05", egg()))

	require.NoError(t, s.CopyDay("2024-01-05", "2024-01-06"))
	assert.Len(t, s.Entries("2024-01-06"), 1)

	assert.Error(t, s.CopyDay("2020-12-12", "2024-01-06"))
}

func TestStore_IsPersonalBest(t *testing.T) {
	s := NewStore(nil)

	// No history yet: nothing to beat.
	assert.False(t, s.IsPersonalBest("Deadlift", 180))

	require.NoError(t, s.AddSet("2024-01-03", models.WorkoutSet{ExerciseName: "Deadlift", Sets: 1, Reps: 5, Weight: 160}))
	require.NoError(t, s.AddSet("2024-01-05", models.WorkoutSet{ExerciseName: "deadlift", Sets: 1, Reps: 3, Weight: 170}))

	assert.True(t, s.IsPersonalBest("Deadlift", 175))
	assert.False(t, s.IsPersonalBest("Deadlift", 170))
}

func TestStore_Trackers_DayScoped(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddTracker("water", "glasses", 1, 8))

	got, err := s.Increment("water", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)
	got, err = s.Increment("water", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got)

	// A new day starts back at zero, yesterday keeps its count.
	got, err = s.Increment("water", "2024-01-06")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	w, ok := s.Tracker("water")
	require.True(t, ok)
	assert.Equal(t, 2.0, w.Amount("2024-01-05"))
	assert.Zero(t, w.Amount("2023-12-31"))

	_, err = s.Increment("steps", "2024-01-05")
	assert.Error(t, err)
}

func TestStore_AggregateAll_OrderedByDay(t *testing.T) {
	s := NewStore(nil)
	require.NoError(t, s.AddEntry("2024-01-06", models.FoodEntry{Name: "B"}))
	require.NoError(t, s.AddEntry("2024-01-05", models.FoodEntry{Name: "A"}))
	require.NoError(t, s.AddEntry("2024-01-06", models.FoodEntry{Name: "C"}))

	var names []string
	for _, e := range s.AggregateAll() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestStore_WeightHistory(t *testing.T) {
	s := NewStore(nil)
	for i := 1; i <= 10; i++ {
		require.NoError(t, s.AddWeight("2024-01-05", 80+float64(i)))
	}

	last7 := s.WeightHistory(7)
	require.Len(t, last7, 7)
	assert.Equal(t, 84.0, last7[0].Weight)
	assert.Equal(t, 90.0, last7[6].Weight)

	assert.Len(t, s.WeightHistory(0), 10)
}

// Shuffling the insertion order never changes what the day sums to.
func TestAggregation_Commutative(t *testing.T) {
	entries := []models.FoodEntry{
		{Name: "Egg", Calories: 70, Protein: 6, Fat: 5, Carbs: 1},
		{Name: "Rice", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28},
		{Name: "Chicken", Calories: 165, Protein: 31, Fat: 3.6},
		{Name: "Shake", Calories: 220, Protein: 40, Carbs: 12},
	}

	day := "2024-01-05"
	var want Totals
	{
		s := NewStore(nil)
		for _, e := range entries {
			require.NoError(t, s.AddEntry(day, e))
		}
		want = NewAggregator(s, NewRegistry(nil)).DailyTotals(day)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]models.FoodEntry(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		s := NewStore(nil)
		for _, e := range shuffled {
			require.NoError(t, s.AddEntry(day, e))
		}
		assert.Equal(t, want, NewAggregator(s, NewRegistry(nil)).DailyTotals(day))
	}
}
