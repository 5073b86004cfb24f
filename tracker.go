package slidingquantiles

// Recounter is implemented by histogram backends whose storage can be edited
// directly, bypassing a Tracker, such as a grid lane whose cells are also
// reachable through the grid. Tracker.Recalculate calls Recount before
// rebuilding quantile state.
type Recounter interface {
	// Recount rebuilds the backend's population total from its stored
	// counts.
	Recount()
}

// Tracker maintains a set of quantile positions over a histogram, keeping
// every position exact through single-sample mutations. Each mutation fully
// re-converges all tracked quantiles before returning, so readers between
// mutations always observe a consistent snapshot.
//
// This type is not concurrency safe; callers wanting shared access must
// serialize their calls.
type Tracker struct {
	hist    Histogram
	tracked []*Tracked
}

// NewTracker creates a Tracker over the given histogram, registering the
// given quantile fractions. Returns ErrInvalidQuantile if any fraction is
// not strictly between 0 and 1. The histogram may already contain samples.
func NewTracker(h Histogram, quantiles ...Fraction) (*Tracker, error) {
	t := &Tracker{hist: h}
	for _, q := range quantiles {
		if _, err := t.Track(q); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Track registers an additional quantile, locating it with a full scan.
// Returns ErrInvalidQuantile if the fraction is not strictly between
// 0 and 1.
func (t *Tracker) Track(q Fraction) (*Tracked, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	tq := &Tracked{quantile: q}
	tq.recalculate(t.hist, 0)
	t.tracked = append(t.tracked, tq)
	return tq, nil
}

// Histogram returns the histogram the tracker operates on.
func (t *Tracker) Histogram() Histogram { return t.hist }

// Population returns the histogram's total sample count.
func (t *Tracker) Population() int { return t.hist.Population() }

// Quantiles returns the tracked quantile positions in registration order.
func (t *Tracker) Quantiles() []*Tracked {
	return append([]*Tracked(nil), t.tracked...)
}

// Insert adds one sample at the given bin and re-converges every tracked
// quantile. Returns false, changing nothing, if the bin is out of range.
func (t *Tracker) Insert(bin int) bool {
	if !t.hist.Insert(bin) {
		return false
	}
	for _, q := range t.tracked {
		if bin < q.rng.Upper {
			q.below++
		}
		q.adjust(t.hist)
	}
	return true
}

// Remove subtracts one sample at the given bin and re-converges every
// tracked quantile. Returns false, changing nothing, if the bin is out of
// range or holds no samples.
func (t *Tracker) Remove(bin int) bool {
	if !t.hist.Remove(bin) {
		return false
	}
	for _, q := range t.tracked {
		if bin < q.rng.Upper {
			q.below--
		}
		q.adjust(t.hist)
	}
	return true
}

// Replace moves one sample from oldBin to newBin as a single combined
// update, equivalent to Remove(oldBin) followed by Insert(newBin) but with
// one adjustment pass instead of two. Tracked quantiles with both bins
// strictly above their upper bound, or both strictly below their lower
// bound, cannot have moved and are skipped entirely. The skip is the main
// economy for sliding-window workloads over a mostly stable histogram.
//
// If newBin is out of range the call degrades to Remove(oldBin); if oldBin
// is out of range or empty it degrades to Insert(newBin). Reports whether
// the move was applied; moving a sample onto its own bin is trivially
// applied.
func (t *Tracker) Replace(newBin, oldBin int) bool {
	if newBin < 0 || newBin >= t.hist.Size() {
		return t.Remove(oldBin)
	}
	if oldBin < 0 || oldBin >= t.hist.Size() || t.hist.CountAt(oldBin) == 0 {
		return t.Insert(newBin)
	}
	if newBin == oldBin {
		return true
	}

	t.hist.Insert(newBin)
	t.hist.Remove(oldBin)

	for _, q := range t.tracked {
		if (newBin > q.rng.Upper && oldBin > q.rng.Upper) ||
			(newBin < q.rng.Lower && oldBin < q.rng.Lower) {
			q.last = Skipped
			continue
		}
		if newBin < q.rng.Upper {
			q.below++
		}
		if oldBin < q.rng.Upper {
			q.below--
		}
		q.adjust(t.hist)
	}
	return true
}

// Recalculate rebuilds every tracked quantile from scratch with full scans,
// after first asking the backend to recount its population if it supports
// that. Use it after bulk histogram edits that bypassed the tracker, or as a
// periodic reset.
func (t *Tracker) Recalculate() {
	if r, ok := t.hist.(Recounter); ok {
		r.Recount()
	}
	for _, q := range t.tracked {
		q.recalculate(t.hist, 0)
	}
}
