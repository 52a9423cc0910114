// Package testutil provides shared test helpers for pinning the clock.
package testutil

import "time"

// FixedClock returns a clock frozen at the given instant.
func FixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MustParseTime parses an RFC3339 instant or panics. For table tests.
func MustParseTime(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}
