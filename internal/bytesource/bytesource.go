// Package bytesource produces the raw bytes behind an ID.
package bytesource

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/eduardolat/shortid/internal/clock"
)

const (
	// MaxBytes is the largest byte count either source accepts
	MaxBytes = 32
	// TimestampBytes is the width of the ordered timestamp prefix
	TimestampBytes = 8
	// MinOrderedBytes is the smallest byte count Ordered accepts
	MinOrderedBytes = TimestampBytes
)

var (
	// ErrInvalidArgument indicates a byte count outside the allowed range
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEntropy indicates the random reader failed
	ErrEntropy = errors.New("entropy source failed")
)

// Random returns n bytes read from r.
// n must be in [1, MaxBytes].
func Random(r io.Reader, n int) ([]byte, error) {
	if n < 1 || n > MaxBytes {
		return nil, fmt.Errorf("%w: byte count %d outside [1, %d]", ErrInvalidArgument, n, MaxBytes)
	}

	b := make([]byte, n)
	if err := fill(r, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Ordered returns n bytes laid out as an 8-byte big-endian microsecond
// timestamp followed by n-8 bytes read from r.
// n must be in [MinOrderedBytes, MaxBytes].
func Ordered(r io.Reader, c clock.Clock, n int) ([]byte, error) {
	if n < MinOrderedBytes || n > MaxBytes {
		return nil, fmt.Errorf("%w: byte count %d outside [%d, %d]", ErrInvalidArgument, n, MinOrderedBytes, MaxBytes)
	}

	now, err := c.Now()
	if err != nil {
		return nil, fmt.Errorf("failed to read clock: %w", err)
	}

	b := make([]byte, n)
	binary.BigEndian.PutUint64(b[:TimestampBytes], clock.UnixMicros(now))
	if err := fill(r, b[TimestampBytes:]); err != nil {
		return nil, err
	}
	return b, nil
}

func fill(r io.Reader, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if _, err := io.ReadFull(r, b); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropy, err)
	}
	return nil
}
