package shared

import "time"

// Stamp returns the timestamp to keep for a flag moving from prev to next.
// Only a false to true transition produces a new stamp; clearing the flag
// keeps whatever was recorded before.
func Stamp(prev, next bool, at *time.Time, now time.Time) *time.Time {
	if next && !prev {
		return &now
	}
	return at
}
