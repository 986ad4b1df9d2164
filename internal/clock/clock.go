// Package clock provides the time capability used by ordered IDs.
package clock

import (
	"errors"
	"time"
)

// ErrUnavailable indicates no clock is linked into the build
var ErrUnavailable = errors.New("clock unavailable")

// Clock reports the current time
type Clock interface {
	Now() (time.Time, error)
}

// System reads the operating system wall clock
type System struct{}

// Now implements Clock using time.Now
func (System) Now() (time.Time, error) {
	return time.Now(), nil
}

// Unavailable is the clock used in builds without time support.
// It always fails with ErrUnavailable.
type Unavailable struct{}

// Now implements Clock and always returns ErrUnavailable
func (Unavailable) Now() (time.Time, error) {
	return time.Time{}, ErrUnavailable
}

// Func adapts a plain time function (such as time.Now) into a Clock
type Func func() time.Time

// Now implements Clock
func (f Func) Now() (time.Time, error) {
	return f(), nil
}

// UnixMicros returns microseconds since the Unix epoch.
// Times before the epoch clamp to 0.
func UnixMicros(t time.Time) uint64 {
	us := t.UnixMicro()
	if us < 0 {
		return 0
	}
	return uint64(us)
}
