//go:build !shortid_noclock

package shortid

import "github.com/eduardolat/shortid/internal/clock"

var defaultClock Clock = clock.System{}

// NewOrdered returns a 14-character ID built from an 8-byte microsecond
// timestamp and 2 random bytes.
//
// String order of ordered IDs only approximates time order.
func NewOrdered() string {
	id, err := defaultGenerator.NewOrdered()
	if err != nil {
		panic(err)
	}
	return id
}

// NewOrderedWithBytes returns an ordered ID built from n bytes: the 8-byte
// timestamp followed by n-8 random bytes. n must be in
// [MinOrderedBytes, MaxBytes]; otherwise ErrInvalidArgument is returned.
func NewOrderedWithBytes(n int) (string, error) {
	return defaultGenerator.NewOrderedWithBytes(n)
}

// MustNewOrderedWithBytes is like NewOrderedWithBytes but panics on error
func MustNewOrderedWithBytes(n int) string {
	id, err := NewOrderedWithBytes(n)
	if err != nil {
		panic(err)
	}
	return id
}

// NewOrderedID returns a time-ordered ID
func NewOrderedID() ID {
	return ID(NewOrdered())
}
