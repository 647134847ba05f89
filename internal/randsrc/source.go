// Package randsrc provides the seedable random source every generator draws from.
package randsrc

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Veraticus/finsecure-hub/internal/common"
)

// pcgStream is mixed into the seed to pick the PCG increment stream.
const pcgStream = 0x9e3779b97f4a7c15

// Source is a reproducible pseudo-random generator.
// A Source is not safe for concurrent use; give each session its own.
type Source struct {
	rng  *rand.Rand
	seed uint64
}

// New creates a Source. A nil seed draws a fresh one from the OS entropy
// pool; the value actually used is reported by Seed.
func New(seed *uint64) *Source {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = entropySeed()
	}

	return &Source{
		rng:  rand.New(rand.NewPCG(s, s^pcgStream)),
		seed: s,
	}
}

// NewSeeded is shorthand for New with a fixed seed.
func NewSeeded(seed uint64) *Source {
	return New(&seed)
}

// Seed returns the effective seed.
func (s *Source) Seed() uint64 {
	return s.seed
}

// IntRange returns a uniform integer in [lo, hi].
func (s *Source) IntRange(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: %d > %d", common.ErrInvalidRange, lo, hi)
	}
	if span := hi - lo + 1; span > 0 {
		return lo + s.rng.IntN(span), nil
	}
	// The span overflows int; offset in unsigned space, where wraparound is exact.
	width := uint64(hi) - uint64(lo)
	if width == math.MaxUint64 {
		return int(s.rng.Uint64()), nil
	}
	return int(uint64(lo) + s.rng.Uint64N(width+1)), nil
}

// Float64 returns a uniform float in [0, 1).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// Bernoulli returns true with probability p.
func (s *Source) Bernoulli(p float64) (bool, error) {
	if err := ValidateProbability("probability", p); err != nil {
		return false, err
	}
	return s.rng.Float64() < p, nil
}

// Choice returns an index drawn with probability proportional to its weight.
func (s *Source) Choice(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, fmt.Errorf("%w: empty weight set", common.ErrInvalidParameter)
	}

	var total float64
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: negative weight %g at index %d", common.ErrInvalidParameter, w, i)
		}
		total += w
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: weights sum to zero", common.ErrInvalidParameter)
	}

	target := s.rng.Float64() * total
	var cumulative float64
	for i, w := range weights {
		cumulative += w
		if target < cumulative {
			return i, nil
		}
	}

	// Float rounding can leave target at the very top; fall back to the
	// last index with non-zero weight.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return len(weights) - 1, nil
}

// Pick returns a uniformly chosen element of values.
func Pick[T any](s *Source, values []T) (T, error) {
	var zero T
	if len(values) == 0 {
		return zero, fmt.Errorf("%w: nothing to pick from", common.ErrInvalidParameter)
	}
	return values[s.rng.IntN(len(values))], nil
}

// ValidateProbability checks that p lies in [0, 1].
func ValidateProbability(name string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("%w: %s must be between 0 and 1, got %g", common.ErrInvalidParameter, name, p)
	}
	return nil
}

func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(b[:])
}
