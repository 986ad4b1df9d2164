package shortid

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/eduardolat/shortid/internal/bytesource"
	"github.com/eduardolat/shortid/internal/clock"
	"github.com/eduardolat/shortid/internal/textenc"
)

// Clock supplies the current time for ordered IDs
type Clock = clock.Clock

// ClockFunc adapts a function such as time.Now into a Clock
type ClockFunc = clock.Func

// Generator builds IDs from an injected random reader and clock.
// It holds no mutable state and is safe for concurrent use when its
// reader and clock are.
type Generator struct {
	random io.Reader
	clock  Clock
}

// NewGenerator creates a Generator backed by crypto/rand and the default clock
func NewGenerator() *Generator {
	return &Generator{
		random: rand.Reader,
		clock:  defaultClock,
	}
}

// NewGeneratorWithDeps creates a Generator with custom dependencies.
// A nil random falls back to crypto/rand; a nil clk to the default clock.
func NewGeneratorWithDeps(random io.Reader, clk Clock) *Generator {
	if random == nil {
		random = rand.Reader
	}
	if clk == nil {
		clk = defaultClock
	}
	return &Generator{
		random: random,
		clock:  clk,
	}
}

// New returns a random 14-character ID
func (g *Generator) New() string {
	id, err := g.NewWithBytes(DefaultBytes)
	if err != nil {
		panic(err)
	}
	return id
}

// NewWithBytes returns a random ID built from n bytes, n in [1, MaxBytes]
func (g *Generator) NewWithBytes(n int) (string, error) {
	b, err := bytesource.Random(g.random, n)
	if err != nil {
		return "", escalate(err)
	}
	return textenc.Encode(b), nil
}

// NewOrdered returns a 14-character ID prefixed with the current timestamp.
// It fails only with ErrClockUnavailable.
func (g *Generator) NewOrdered() (string, error) {
	return g.NewOrderedWithBytes(DefaultBytes)
}

// NewOrderedWithBytes returns an ID built from an 8-byte timestamp and n-8
// random bytes, n in [MinOrderedBytes, MaxBytes].
func (g *Generator) NewOrderedWithBytes(n int) (string, error) {
	b, err := bytesource.Ordered(g.random, g.clock, n)
	if err != nil {
		return "", escalate(err)
	}
	return textenc.Encode(b), nil
}

// escalate panics on entropy failure and returns every other error as is
func escalate(err error) error {
	if errors.Is(err, bytesource.ErrEntropy) {
		panic(fmt.Sprintf("shortid: %v", err))
	}
	return err
}
