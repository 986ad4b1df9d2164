package shortid

import (
	"github.com/eduardolat/shortid/internal/bytesource"
	"github.com/eduardolat/shortid/internal/clock"
	"github.com/eduardolat/shortid/internal/textenc"
)

const (
	// DefaultBytes is the number of bytes behind New and NewOrdered
	DefaultBytes = 10
	// DefaultLength is the length of IDs returned by New and NewOrdered
	DefaultLength = 14
	// MaxBytes is the largest accepted byte count
	MaxBytes = bytesource.MaxBytes
	// TimestampBytes is the width of the timestamp prefix of ordered IDs
	TimestampBytes = bytesource.TimestampBytes
	// MinOrderedBytes is the smallest byte count accepted for ordered IDs
	MinOrderedBytes = bytesource.MinOrderedBytes
)

var (
	// ErrInvalidArgument indicates a byte count outside the allowed range
	ErrInvalidArgument = bytesource.ErrInvalidArgument
	// ErrClockUnavailable indicates an ordered ID was requested without a clock
	ErrClockUnavailable = clock.ErrUnavailable
)

var defaultGenerator = NewGenerator()

// New returns a random 14-character ID built from 10 random bytes
func New() string {
	return defaultGenerator.New()
}

// NewWithBytes returns a random ID built from n random bytes.
// n must be in [1, MaxBytes]; otherwise ErrInvalidArgument is returned.
func NewWithBytes(n int) (string, error) {
	return defaultGenerator.NewWithBytes(n)
}

// MustNewWithBytes is like NewWithBytes but panics on error
func MustNewWithBytes(n int) string {
	id, err := NewWithBytes(n)
	if err != nil {
		panic(err)
	}
	return id
}

// EncodedLen returns the length of an ID built from n bytes
func EncodedLen(n int) int {
	return textenc.EncodedLen(n)
}
