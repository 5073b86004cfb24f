// Package slidingquantiles maintains exact running quantile estimates over a
// dynamically changing histogram of binned samples.
//
// A Tracker owns a Histogram and a set of tracked quantiles. After every
// single-sample insert, remove, or replace, each tracked quantile is
// re-converged incrementally in time proportional to how far the true
// quantile bin moved, rather than by rescanning the histogram. Scan provides
// the O(bins) reference algorithm that the incremental tracking is always
// equivalent to.
package slidingquantiles

import (
	"errors"
	"fmt"
)

// ErrInvalidQuantile is returned when registering a quantile fraction outside
// the open interval (0, 1), or one with a non-positive denominator.
var ErrInvalidQuantile = errors.New("invalid quantile")

// Fraction identifies a quantile as an exact rational number, such as 1/2 for
// the median or 99/100 for p99. Comparisons cross-multiply integers rather
// than dividing, so quantile boundaries are never subject to floating-point
// rounding.
//
// A Fraction tracked by a Tracker must satisfy 0 < Num < Den: quantiles at
// exactly 0 or 1 degenerate to "below all data" or "above all data" and are
// rejected at registration.
type Fraction struct {
	Num, Den int
}

// Validate reports whether the fraction can be tracked.
func (f Fraction) Validate() error {
	if f.Den <= 0 {
		return fmt.Errorf("%w: denominator %d <= 0", ErrInvalidQuantile, f.Den)
	}
	if f.Num <= 0 {
		return fmt.Errorf("%w: ratio %d/%d <= 0", ErrInvalidQuantile, f.Num, f.Den)
	}
	if f.Num >= f.Den {
		return fmt.Errorf("%w: ratio %d/%d >= 1", ErrInvalidQuantile, f.Num, f.Den)
	}
	return nil
}

// Less reports whether f < o, comparing exactly.
func (f Fraction) Less(o Fraction) bool {
	return f.Num*o.Den < o.Num*f.Den
}

// Equal reports whether f and o denote the same quantile. Fractions are not
// normalized, so 1/2 and 50/100 compare equal while differing in fields.
func (f Fraction) Equal(o Fraction) bool {
	return f.Num*o.Den == o.Num*f.Den
}

// Float64 returns the quantile as a floating-point value in (0, 1).
func (f Fraction) Float64() float64 {
	return float64(f.Num) / float64(f.Den)
}

func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// Range locates a quantile within a histogram as an inclusive bin range.
// Lower <= Upper. The bounds differ only when the population is evenly
// divided and the exact quantile boundary falls in a run of empty bins
// between two populated sub-ranges.
type Range struct {
	Lower, Upper int
}

// IsValue reports whether the quantile resolves to a single bin.
func (r Range) IsValue() bool { return r.Lower == r.Upper }

// IsRange reports whether the quantile spans more than one bin.
func (r Range) IsRange() bool { return r.Lower != r.Upper }

// Midpoint returns the center of the range, useful as a scalar readout when
// the quantile falls in a gap.
func (r Range) Midpoint() float64 {
	return 0.5 * float64(r.Lower+r.Upper)
}

func (r Range) String() string {
	if r.IsValue() {
		return fmt.Sprintf("%d", r.Lower)
	}
	return fmt.Sprintf("%d:%d", r.Lower, r.Upper)
}
