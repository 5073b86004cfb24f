package slidingquantiles

// Direction describes how the most recent adjustment moved a tracked
// quantile. It is a diagnostic readout only; the algorithm never depends on
// it.
type Direction int8

const (
	// Fixed means the quantile was already correctly bracketed and at most
	// expanded its range outward through empty bins.
	Fixed Direction = iota

	// SlideUp means the quantile position moved toward higher bins.
	SlideUp

	// SlideDown means the quantile position moved toward lower bins.
	SlideDown

	// Skipped means a Replace determined the quantile could not have moved
	// and left it untouched.
	Skipped
)

func (d Direction) String() string {
	switch d {
	case Fixed:
		return "fixed"
	case SlideUp:
		return "slide-up"
	case SlideDown:
		return "slide-down"
	case Skipped:
		return "skipped"
	}
	return "unknown"
}

// Tracked is one quantile position maintained by a Tracker. It holds the
// quantile's definition, the bin range currently locating it, and a running
// count of samples below the range's upper bound, the only cached value the
// incremental adjustment needs.
//
// Tracked values are owned by the Tracker that created them; read them
// between mutations.
type Tracked struct {
	quantile Fraction
	rng      Range
	below    int
	last     Direction
}

// Quantile returns the fraction this position tracks.
func (t *Tracked) Quantile() Fraction { return t.quantile }

// Range returns the bin range currently locating the quantile.
func (t *Tracked) Range() Range { return t.rng }

// SamplesBelow returns the count of samples in bins strictly below
// Range().Upper.
func (t *Tracked) SamplesBelow() int { return t.below }

// LastAdjust returns the direction of the most recent adjustment.
func (t *Tracked) LastAdjust() Direction { return t.last }

// recalculate rebuilds the position from scratch: the range collapses to the
// hint bin (clamped into range), the below-count is summed directly, and
// adjust converges from there. Cost is O(Size()).
func (t *Tracked) recalculate(h Histogram, hint int) {
	size := h.Size()
	if size < 1 {
		t.rng = Range{}
		t.below = 0
		return
	}
	if hint >= size {
		hint = size - 1
	}
	if hint < 0 {
		hint = 0
	}

	t.rng = Range{Lower: hint, Upper: hint}
	t.below = 0
	for i := 0; i < hint; i++ {
		t.below += h.CountAt(i)
	}
	t.adjust(h)
}

// adjust restores the position after the histogram has changed by at most one
// sample since the range and below-count were last valid. The caller must
// already have applied the sample's ±1 effect to the below-count.
//
// The quantile bin is the smallest b such that
// countAtOrBelow(b)*Den >= population*Num. Starting from the old upper
// bound, the position slides up or down one bin at a time until that
// inequality holds again; when it holds with exact equality the population
// divides evenly and the range widens across the adjacent run of empty bins.
// If the position already brackets the quantile it is only expanded outward.
// No bin is visited twice, so the cost is proportional to how far the
// quantile actually moved.
func (t *Tracked) adjust(h Histogram) {
	size := h.Size()
	population := h.Population()

	// Smash any existing range to its upper bound.
	bin := t.rng.Upper
	here := h.CountAt(bin)
	gte := population - t.below
	lte := here + t.below
	lteQuota := population * t.quantile.Num
	gteQuota := population * (t.quantile.Den - t.quantile.Num)

	switch {
	case lte*t.quantile.Den < lteQuota:
		t.last = SlideUp

		// Slide the quantile higher.
		for bin+1 < size && lte*t.quantile.Den < lteQuota {
			t.below += here
			bin++
			here = h.CountAt(bin)
			lte += here
		}

		// Settle on the quantile bin, or a bin range in case of a split.
		t.rng.Lower = bin
		if lte*t.quantile.Den == lteQuota {
			t.below += here
			for bin+1 < size {
				bin++
				if h.CountAt(bin) != 0 {
					break
				}
			}
		}
		t.rng.Upper = bin

	case gte*t.quantile.Den < gteQuota:
		t.last = SlideDown

		// Slide the quantile lower.
		for bin > 0 && gte*t.quantile.Den < gteQuota {
			bin--
			here = h.CountAt(bin)
			t.below -= here
			gte += here
		}

		t.rng.Upper = bin
		if gte*t.quantile.Den == gteQuota {
			for bin > 0 {
				bin--
				if h.CountAt(bin) != 0 {
					break
				}
			}
		}
		t.rng.Lower = bin

	default:
		t.last = Fixed

		// Samples at or below bin and at or above bin both satisfy their
		// quotas; the bin is a fixed point. Expand the range outward as far
		// as the quotas stay satisfied, which spans any empty-bin gap the
		// boundary falls into.
		t.rng.Lower, t.rng.Upper = bin, bin

		for t.rng.Lower > 0 {
			lte -= h.CountAt(t.rng.Lower)
			if lte*t.quantile.Den < lteQuota {
				break
			}
			t.rng.Lower--
		}
		for t.rng.Upper+1 < size {
			gte -= h.CountAt(t.rng.Upper)
			if gte*t.quantile.Den < gteQuota {
				break
			}
			t.below += h.CountAt(t.rng.Upper)
			t.rng.Upper++
		}
	}
}
