package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOneRepMax(t *testing.T) {
	// A single rep is already the max, no formula involved.
	got, err := OneRepMax(100, 1)
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	// Brzycki: 100 / (1.0278 - 0.0278*5) = 112.51..., rounded.
	got, err = OneRepMax(100, 5)
	require.NoError(t, err)
	assert.Equal(t, 113.0, got)

	got, err = OneRepMax(80, 10)
	require.NoError(t, err)
	assert.Equal(t, 107.0, got)
}

func TestOneRepMax_RejectsInvalidReps(t *testing.T) {
	_, err := OneRepMax(100, 0)
	assert.Error(t, err)

	_, err = OneRepMax(100, -3)
	assert.Error(t, err)

	// Denominator hits zero/negative territory at 37 reps.
	_, err = OneRepMax(100, 37)
	assert.Error(t, err)
	_, err = OneRepMax(100, 50)
	assert.Error(t, err)

	_, err = OneRepMax(100, 36)
	assert.NoError(t, err)
}
