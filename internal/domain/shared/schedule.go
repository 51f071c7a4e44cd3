package shared

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

var ErrEndBeforeStart = errors.New("end date cannot be earlier than start date")

// Schedule is embedded by every entity that tracks a start/end window.
// Duration is derived from the bounds and is never written directly.
type Schedule struct {
	StartDate *time.Time `gorm:"column:start_date" json:"start_date"`
	EndDate   *time.Time `gorm:"column:end_date" json:"end_date"`
	Duration  *int       `gorm:"column:duration" json:"duration"`
}

// Derive recomputes Duration as the whole days between the bounds.
// A missing bound leaves Duration unset rather than zero.
func (s *Schedule) Derive() error {
	if s.StartDate == nil || s.EndDate == nil {
		s.Duration = nil
		return nil
	}
	if s.EndDate.Before(*s.StartDate) {
		return NewValidationError("end_date", ErrEndBeforeStart.Error())
	}
	// time.Duration tops out near 292 years, so count in Unix seconds.
	secs := s.EndDate.Unix() - s.StartDate.Unix()
	if s.EndDate.Nanosecond() < s.StartDate.Nanosecond() {
		secs--
	}
	days := int(secs / secondsPerDay)
	s.Duration = &days
	return nil
}

// SetBounds replaces both bounds from optional date or RFC 3339 strings.
func (s *Schedule) SetBounds(start, end *string) error {
	verr := &ValidationError{}
	startDate, err := ParseDate(start)
	if err != nil {
		verr.Add("start_date", err.Error())
	}
	endDate, err := ParseDate(end)
	if err != nil {
		verr.Add("end_date", err.Error())
	}
	if verr.HasErrors() {
		return verr
	}
	s.StartDate = startDate
	s.EndDate = endDate
	return nil
}

// ParseDate parses an optional RFC 3339 timestamp or plain date.
// Nil or empty input yields nil.
func ParseDate(v *string) (*time.Time, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, *v); err == nil {
		t = t.UTC()
		return &t, nil
	}
	t, err := time.ParseInLocation(DateLayout, *v, time.UTC)
	if err != nil {
		return nil, errors.New("must be a date (YYYY-MM-DD) or RFC 3339 timestamp")
	}
	return &t, nil
}
