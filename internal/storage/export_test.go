package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rhysnute92/fitlog/internal/models"
	"github.com/Rhysnute92/fitlog/internal/tracker"
)

func sampleSnapshot() tracker.Snapshot {
	return tracker.Snapshot{
		FoodLogs: map[string][]models.FoodEntry{
			"2024-01-05": {
				{Name: "Egg", Calories: 70, Protein: 6, Fat: 5, Carbs: 1},
				{Name: "Rice", Calories: 130, Protein: 2.7, Fat: 0.3, Carbs: 28},
			},
			"2024-01-04": {
				{Name: "Chicken", Calories: 165, Protein: 31, Fat: 3.6},
			},
		},
		WorkoutLogs: map[string][]models.WorkoutSet{
			"2024-01-05": {
				{ExerciseName: "Squat", Sets: 3, Reps: 5, Weight: 100, OneRepMax: 113},
			},
		},
		Trackers: map[string]*models.CustomTracker{
			"water": {Name: "water", Unit: "glasses", Step: 1, Goal: 8,
				History: map[string]float64{"2024-01-05": 6}},
		},
		WeightHistory: []models.WeightEntry{{Date: "2024-01-05", Weight: 82.5}},
		Goals:         models.DefaultGoals(),
	}
}

func TestBuildCSV(t *testing.T) {
	out, err := BuildCSV(sampleSnapshot())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "Date,Category,Name,Calories,Protein,Fat,Carbs", lines[0])
	// 3 food + 1 workout + 1 tracker + 1 weight
	assert.Len(t, lines, 7)

	// Food rows come date-sorted.
	assert.Equal(t, "2024-01-04,Food,Chicken,165,31,3.6,0", lines[1])
	assert.Equal(t, "2024-01-05,Food,Egg,70,6,5,1", lines[2])
	assert.Equal(t, "2024-01-05,Food,Rice,130,2.7,0.3,28", lines[3])

	assert.Contains(t, out, "2024-01-05,Workout,Squat 3x5 @ 100,0,0,0,0")
	assert.Contains(t, out, "2024-01-05,Tracker,water: 6 glasses,0,0,0,0")
	assert.Contains(t, out, "2024-01-05,Weight,82.5kg,0,0,0,0")
}

func TestBuildJSON_RoundTrip(t *testing.T) {
	snap := sampleSnapshot()

	data, err := BuildJSON(snap)
	require.NoError(t, err)

	got, err := ParseJSON(data)
	require.NoError(t, err)
	assert.Equal(t, snap.FoodLogs, got.FoodLogs)
	assert.Equal(t, snap.WorkoutLogs, got.WorkoutLogs)
	assert.Equal(t, snap.Trackers, got.Trackers)
	assert.Equal(t, snap.Goals, got.Goals)
}

func TestParseJSON_Corrupt(t *testing.T) {
	_, err := ParseJSON([]byte("{not json"))
	assert.Error(t, err)
}
