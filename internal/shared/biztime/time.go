// Package biztime centralizes the clock. Everything is stored and compared in UTC.
package biztime

import "time"

// Now is replaceable in tests.
var Now = func() time.Time {
	return time.Now().UTC()
}

// NowUTC returns the current time truncated to microseconds so values survive
// a round trip through MySQL datetime(6).
func NowUTC() time.Time {
	return Now().Truncate(time.Microsecond)
}
