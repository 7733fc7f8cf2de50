package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	got, err := ParseDay("2024-01-07")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-07", got.Format(DayFormat))

	// Short form is accepted too.
	got, err = ParseDay("07/02/25")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-07", got.Format(DayFormat))

	_, err = ParseDay("7th of January")
	assert.Error(t, err)
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2024-02-28", 1)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-29", got)

	got, err = AddDays("2024-01-01", -1)
	require.NoError(t, err)
	assert.Equal(t, "2023-12-31", got)
}

func TestDayRange(t *testing.T) {
	keys, err := DayRange("2024-01-07", 7)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04",
		"2024-01-05", "2024-01-06", "2024-01-07",
	}, keys)

	keys, err = DayRange("2024-01-07", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-01-07"}, keys)

	_, err = DayRange("2024-01-07", 0)
	assert.Error(t, err)
	_, err = DayRange("soon", 7)
	assert.Error(t, err)
}
