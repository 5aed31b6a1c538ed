// Package clock abstracts the wall clock so cache expiry can be driven from tests
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/spellbook/internal/pkg/clock Clock

// Clock reports the current time
type Clock interface {
	Now() time.Time
}

// System reads the process clock
type System struct{}

// Now returns time.Now
func (System) Now() time.Time {
	return time.Now()
}

// New returns the system clock
func New() Clock {
	return System{}
}

// Expired reports whether deadline has been reached. An entry expiring at
// exactly Now is already gone.
func Expired(c Clock, deadline time.Time) bool {
	return !c.Now().Before(deadline)
}
