package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindowToday(t *testing.T) {
	now := time.Date(2026, time.August, 26, 14, 30, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodToday, nil, nil, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 26, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, now, w.End)
}

func TestResolveWindowWeekStartsMonday(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	now := time.Date(2026, time.August, 26, 14, 30, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodWeek, nil, nil, now)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, w.Start.Weekday())
	assert.Equal(t, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, now, w.End)
}

func TestResolveWindowWeekOnMonday(t *testing.T) {
	now := time.Date(2026, time.August, 24, 1, 0, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodWeek, nil, nil, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC), w.Start)
}

func TestResolveWindowMonth(t *testing.T) {
	now := time.Date(2026, time.August, 26, 14, 30, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodMonth, nil, nil, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, now, w.End)
}

func TestResolveWindowRange(t *testing.T) {
	now := time.Now()
	from := time.Date(2026, time.August, 1, 10, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 15, 10, 0, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodRange, &from, &to, now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, 15, w.End.Day())
	assert.Equal(t, 23, w.End.Hour())
}

func TestResolveWindowRejectsInvertedRange(t *testing.T) {
	now := time.Now()
	from := time.Date(2026, time.August, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	_, err := ResolveWindow(PeriodRange, &from, &to, now)
	assert.ErrorIs(t, err, ErrInvalidRange, "an inverted range is rejected, never swapped")
}

func TestResolveWindowRangeRequiresBothEnds(t *testing.T) {
	now := time.Now()
	from := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)

	_, err := ResolveWindow(PeriodRange, &from, nil, now)
	assert.ErrorIs(t, err, ErrMissingRange)
}

func TestResolveWindowUnknownPeriod(t *testing.T) {
	_, err := ResolveWindow("quarter", nil, nil, time.Now())
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}

func TestResolveWindowSingleDayRange(t *testing.T) {
	now := time.Now()
	day := time.Date(2026, time.August, 10, 12, 0, 0, 0, time.UTC)

	w, err := ResolveWindow(PeriodRange, &day, &day, now)
	require.NoError(t, err)
	assert.True(t, w.Start.Before(w.End))
}

func TestPreviousWindow(t *testing.T) {
	w := Window{
		Start: time.Date(2026, time.August, 10, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.August, 17, 0, 0, 0, 0, time.UTC),
	}

	prev := PreviousWindow(w)
	assert.True(t, prev.End.Before(w.Start))
	assert.Equal(t, w.End.Sub(w.Start), prev.End.Sub(prev.Start))
}
