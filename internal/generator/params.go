// Package generator builds the synthetic tables of a dataset bundle.
//
// Every generator takes its parameters explicitly plus the Source to draw
// from, and returns rows in a fixed order. Given the same Source state the
// output is identical. A zero count yields an empty, non-nil slice.
package generator

import (
	"fmt"

	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/shopspring/decimal"
)

// MaxCount caps every row count and the trend length.
const MaxCount = 100_000

// MaxAmount caps an AmountRange bound at one trillion currency units, which
// keeps every cent value well inside int.
var MaxAmount = decimal.New(1, 12)

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Validate rejects inverted intervals.
func (r IntRange) Validate(name string) error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: %s %d > %d", common.ErrInvalidRange, name, r.Min, r.Max)
	}
	return nil
}

// AmountRange bounds a monetary amount. Amounts are drawn in whole cents.
type AmountRange struct {
	Min decimal.Decimal `json:"min" yaml:"min"`
	Max decimal.Decimal `json:"max" yaml:"max"`
}

// NewAmountRange builds an AmountRange from whole currency units.
func NewAmountRange(lo, hi int64) AmountRange {
	return AmountRange{Min: decimal.NewFromInt(lo), Max: decimal.NewFromInt(hi)}
}

// Validate requires a non-negative minimum strictly below the maximum, and a
// maximum no larger than MaxAmount.
func (r AmountRange) Validate(name string) error {
	if r.Min.IsNegative() {
		return fmt.Errorf("%w: %s minimum %s is negative", common.ErrInvalidParameter, name, r.Min)
	}
	if r.Max.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: %s maximum %s exceeds %s", common.ErrInvalidParameter, name, r.Max, MaxAmount)
	}
	if r.Min.GreaterThanOrEqual(r.Max) {
		return fmt.Errorf("%w: %s minimum %s must be below maximum %s", common.ErrInvalidRange, name, r.Min, r.Max)
	}
	if _, _, err := r.cents(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Normalized returns the range snapped to the whole-cent bounds amounts are
// drawn from, so ranges that draw identically compare equal. An invalid range
// is returned unchanged.
func (r AmountRange) Normalized() AmountRange {
	lo, hi, err := r.cents()
	if err != nil {
		return r
	}
	return AmountRange{Min: decimal.New(int64(lo), -2), Max: decimal.New(int64(hi), -2)}
}

// cents returns the inclusive bounds in cents.
func (r AmountRange) cents() (int, int, error) {
	lo := r.Min.Shift(2).Ceil().IntPart()
	hi := r.Max.Shift(2).Floor().IntPart()
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: no whole cent between %s and %s", common.ErrInvalidRange, r.Min, r.Max)
	}
	return int(lo), int(hi), nil
}

func validateCount(name string, n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %s must not be negative, got %d", common.ErrInvalidParameter, name, n)
	}
	if n > MaxCount {
		return fmt.Errorf("%w: %s must be at most %d, got %d", common.ErrInvalidParameter, name, MaxCount, n)
	}
	return nil
}
