// Package testutil holds shared test helpers.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	slidingquantiles "github.com/EvanBalster/sliding-quantiles"
)

// RequireConsistent asserts the tracker's core invariants: every tracked
// quantile's range equals the full reference scan of the histogram, and its
// cached below-count equals a direct sum of the bins under its upper bound.
func RequireConsistent(t *testing.T, tr *slidingquantiles.Tracker) {
	t.Helper()
	h := tr.Histogram()
	for _, q := range tr.Quantiles() {
		expected := slidingquantiles.Scan(h, q.Quantile())
		require.Equal(t, expected, q.Range(),
			"quantile %s: tracked range disagrees with scan at population %d", q.Quantile(), h.Population())

		below := 0
		for i := 0; i < q.Range().Upper; i++ {
			below += h.CountAt(i)
		}
		require.Equal(t, below, q.SamplesBelow(),
			"quantile %s: below-count drifted at population %d", q.Quantile(), h.Population())
	}
}

// Quantiles returns the spread of fractions the original consistency harness
// tracks: extrema, quartiles, and the median (with an unreduced duplicate).
func Quantiles() []slidingquantiles.Fraction {
	return []slidingquantiles.Fraction{
		{Num: 1, Den: 100}, {Num: 5, Den: 100}, {Num: 10, Den: 100},
		{Num: 1, Den: 4},
		{Num: 1, Den: 2}, {Num: 2, Den: 4},
		{Num: 3, Den: 4},
		{Num: 90, Den: 100}, {Num: 95, Den: 100}, {Num: 99, Den: 100},
	}
}
