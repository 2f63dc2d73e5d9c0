package court

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSportTypeValid(t *testing.T) {
	assert.True(t, SportType("badminton").Valid())
	assert.True(t, SportType("table_tennis").Valid())
	assert.False(t, SportType("cricket").Valid())
	assert.False(t, SportType("").Valid())
}

func TestWeekScheduleForDate(t *testing.T) {
	w := WeekSchedule{
		"monday": {IsOpen: true, Intervals: []Interval{{Start: "06:00", End: "22:00"}}},
		"sunday": {IsOpen: false},
	}

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	ds, ok := w.ForDate(monday)
	require.True(t, ok)
	assert.True(t, ds.IsOpen)

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	ds, ok = w.ForDate(sunday)
	require.True(t, ok)
	assert.False(t, ds.IsOpen)

	tuesday := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	_, ok = w.ForDate(tuesday)
	assert.False(t, ok)

	var nilSchedule WeekSchedule
	_, ok = nilSchedule.ForDate(monday)
	assert.False(t, ok)
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, validateSchedule(WeekSchedule{
		"monday": {IsOpen: true, Intervals: []Interval{{Start: "06:00", End: "22:00"}}},
	}))

	assert.ErrorIs(t, validateSchedule(WeekSchedule{
		"funday": {IsOpen: true},
	}), ErrInvalidSchedule)

	assert.ErrorIs(t, validateSchedule(WeekSchedule{
		"monday": {IsOpen: true, Intervals: []Interval{{Start: "6am", End: "22:00"}}},
	}), ErrInvalidSchedule)

	// Non-padded times would break the lexicographic availability checks.
	assert.ErrorIs(t, validateSchedule(WeekSchedule{
		"monday": {IsOpen: true, Intervals: []Interval{{Start: "9:00", End: "22:00"}}},
	}), ErrInvalidSchedule)

	// Logically empty interval parses; the availability side treats it as closed.
	assert.NoError(t, validateSchedule(WeekSchedule{
		"monday": {IsOpen: true, Intervals: []Interval{{Start: "22:00", End: "06:00"}}},
	}))
}

func TestValidatePeak(t *testing.T) {
	assert.NoError(t, validatePeak(nil))
	assert.NoError(t, validatePeak(&PeakHours{Start: "17:00", End: "21:00", PricePerHour: 800}))
	assert.ErrorIs(t, validatePeak(&PeakHours{Start: "5pm", End: "21:00", PricePerHour: 800}), ErrInvalidSchedule)
	assert.ErrorIs(t, validatePeak(&PeakHours{Start: "9:00", End: "21:00", PricePerHour: 800}), ErrInvalidSchedule)
	assert.ErrorIs(t, validatePeak(&PeakHours{Start: "17:00", End: "21:00", PricePerHour: 0}), ErrInvalidPrice)
}
