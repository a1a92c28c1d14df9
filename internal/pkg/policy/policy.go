// Package policy holds the cancellation rule for confirmed bookings.
package policy

import "time"

// CanCancel reports whether a booking starting at startTime may still be
// cancelled at now. Reservations that were never paid are not subject to it.
func CanCancel(startTime, now time.Time, window time.Duration) bool {
	return startTime.Sub(now) >= window
}
