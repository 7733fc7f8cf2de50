package tracker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Defaults(t *testing.T) {
	r := NewRegistry(nil)
	assert.False(t, r.IsTrainingDay())
	assert.Equal(t, 1500.0, r.ActiveCalorieGoal())

	g := r.Goals()
	assert.Equal(t, 1800.0, g.TrainCalories)
	assert.Equal(t, 200.0, g.Protein)
	assert.Equal(t, 145.0, g.Carbs)
	assert.Equal(t, 45.0, g.Fat)
}

func TestRegistry_SetGoal(t *testing.T) {
	r := NewRegistry(nil)

	require.NoError(t, r.SetGoal(GoalProtein, 180))
	assert.Equal(t, 180.0, r.Goals().Protein)

	require.NoError(t, r.SetGoal(GoalRestCalories, 1600))
	assert.Equal(t, 1600.0, r.ActiveCalorieGoal())
}

func TestRegistry_SetGoal_RejectsBadInput(t *testing.T) {
	r := NewRegistry(nil)

	assert.Error(t, r.SetGoal(GoalProtein, 0))
	assert.Error(t, r.SetGoal(GoalProtein, -20))
	assert.Error(t, r.SetGoal(GoalProtein, math.NaN()))
	assert.Error(t, r.SetGoal(GoalKind("steps"), 100))

	// Rejection leaves the old value alone, never zeroes it.
	assert.Equal(t, 200.0, r.Goals().Protein)
}

func TestRegistry_ToggleTrainingMode(t *testing.T) {
	r := NewRegistry(nil)
	require.NoError(t, r.SetGoal(GoalRestCalories, 1500))
	require.NoError(t, r.SetGoal(GoalTrainCalories, 1800))

	// Each toggle switches exactly between the two targets.
	active, err := r.ToggleTrainingMode()
	require.NoError(t, err)
	assert.Equal(t, 1800.0, active)
	assert.True(t, r.IsTrainingDay())
	assert.Equal(t, 1800.0, r.ActiveCalorieGoal())

	active, err = r.ToggleTrainingMode()
	require.NoError(t, err)
	assert.Equal(t, 1500.0, active)
	assert.False(t, r.IsTrainingDay())

	active, err = r.ToggleTrainingMode()
	require.NoError(t, err)
	assert.Equal(t, 1800.0, active)
}

func TestRegistry_PersistsOnMutation(t *testing.T) {
	p := newFakePersister()
	r := NewRegistry(p)

	require.NoError(t, r.SetGoal(GoalFat, 50))
	_, err := r.ToggleTrainingMode()
	require.NoError(t, err)

	assert.Equal(t, 2, p.saves[KeyGoals])
	assert.Equal(t, 2, p.saves[KeyTrainingDays])
}
