package shared

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, v string) *time.Time {
	t.Helper()
	d, err := time.ParseInLocation(DateLayout, v, time.UTC)
	require.NoError(t, err)
	return &d
}

func TestScheduleDerive(t *testing.T) {
	t.Run("both bounds", func(t *testing.T) {
		s := Schedule{StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-15")}
		require.NoError(t, s.Derive())
		require.NotNil(t, s.Duration)
		assert.Equal(t, 14, *s.Duration)
	})

	t.Run("same day is zero", func(t *testing.T) {
		s := Schedule{StartDate: date(t, "2024-03-10"), EndDate: date(t, "2024-03-10")}
		require.NoError(t, s.Derive())
		require.NotNil(t, s.Duration)
		assert.Equal(t, 0, *s.Duration)
	})

	t.Run("leap year", func(t *testing.T) {
		s := Schedule{StartDate: date(t, "2024-02-01"), EndDate: date(t, "2024-03-01")}
		require.NoError(t, s.Derive())
		assert.Equal(t, 29, *s.Duration)
	})

	t.Run("spans beyond three centuries", func(t *testing.T) {
		s := Schedule{StartDate: date(t, "1700-01-01"), EndDate: date(t, "2100-01-01")}
		require.NoError(t, s.Derive())
		require.NotNil(t, s.Duration)
		assert.Equal(t, 146097, *s.Duration)
	})

	t.Run("end before start", func(t *testing.T) {
		s := Schedule{StartDate: date(t, "2024-01-15"), EndDate: date(t, "2024-01-01")}
		err := s.Derive()
		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "end_date")
	})

	t.Run("missing end clears duration", func(t *testing.T) {
		d := 3
		s := Schedule{StartDate: date(t, "2024-01-01"), Duration: &d}
		require.NoError(t, s.Derive())
		assert.Nil(t, s.Duration)
	})

	t.Run("missing start clears duration", func(t *testing.T) {
		s := Schedule{EndDate: date(t, "2024-01-01")}
		require.NoError(t, s.Derive())
		assert.Nil(t, s.Duration)
	})

	t.Run("recomputed after bound change", func(t *testing.T) {
		s := Schedule{StartDate: date(t, "2024-01-01"), EndDate: date(t, "2024-01-05")}
		require.NoError(t, s.Derive())
		assert.Equal(t, 4, *s.Duration)

		s.EndDate = date(t, "2024-01-11")
		require.NoError(t, s.Derive())
		assert.Equal(t, 10, *s.Duration)
	})
}

func TestScheduleSetBounds(t *testing.T) {
	start, end := "2024-05-01", "2024-05-31"
	var s Schedule
	require.NoError(t, s.SetBounds(&start, &end))
	assert.Equal(t, "2024-05-01", s.StartDate.Format(DateLayout))
	assert.Equal(t, "2024-05-31", s.EndDate.Format(DateLayout))

	empty := ""
	require.NoError(t, s.SetBounds(&start, &empty))
	assert.Nil(t, s.EndDate)

	bad := "31/05/2024"
	err := s.SetBounds(&bad, &end)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "start_date")
	assert.Equal(t, "2024-05-01", s.StartDate.Format(DateLayout), "bounds are untouched on error")
}

func TestStamp(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	earlier := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	got := Stamp(false, true, nil, now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(now))

	assert.Nil(t, Stamp(false, false, nil, now))

	got = Stamp(true, true, &earlier, now)
	assert.True(t, got.Equal(earlier), "staying set keeps the first stamp")

	got = Stamp(true, false, &earlier, now)
	assert.True(t, got.Equal(earlier), "clearing keeps the stamp")

	got = Stamp(false, true, &earlier, now)
	assert.True(t, got.Equal(now), "setting again re-stamps")
}

func TestValidationErrorMessage(t *testing.T) {
	e := NewValidationError("name", "required")
	e.Add("end_date", "bad")
	assert.Equal(t, "validation failed: end_date: bad; name: required", e.Error())
	assert.True(t, e.HasErrors())
}

func TestScheduleDeriveFloorsPartialDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 9, 0, 0, 0, time.UTC)
	s := Schedule{StartDate: &start, EndDate: &end}
	require.NoError(t, s.Derive())
	assert.Equal(t, 1, *s.Duration)

	start = time.Date(2024, 1, 1, 0, 0, 0, 500, time.UTC)
	end = time.Date(2024, 1, 2, 0, 0, 0, 400, time.UTC)
	require.NoError(t, s.Derive())
	assert.Equal(t, 0, *s.Duration, "a day short by nanoseconds is not a whole day")
}

func TestParseDateAcceptsTimestamps(t *testing.T) {
	v := "2024-01-02T15:04:05+02:00"
	got, err := ParseDate(&v)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 2, 13, 4, 5, 0, time.UTC), *got)
}
