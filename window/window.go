// Package window drives a quantile tracker from sliding windows of binned
// samples, the workload the tracker's combined replace operation exists for:
// once a window is full, each new observation displaces the oldest one in a
// single update, and quantiles untouched by the displacement are skipped.
package window

import (
	slidingquantiles "github.com/EvanBalster/sliding-quantiles"
)

// Ring feeds a tracker from a fixed-capacity sliding window. Observe inserts
// samples until the window fills; after that each observation replaces the
// oldest sample.
//
// Out-of-range bins may be observed freely: the tracker absorbs them, so a
// window slot holding an unrepresentable sample simply contributes nothing
// to the histogram until it slides out.
//
// This type is not concurrency safe.
type Ring struct {
	tracker *slidingquantiles.Tracker
	bins    []int
	size    int
	index   int
}

// NewRing creates a sliding window with the given capacity feeding the given
// tracker. Capacities below one are treated as one.
func NewRing(t *slidingquantiles.Tracker, capacity int) *Ring {
	if capacity < 1 {
		capacity = 1
	}
	return &Ring{
		tracker: t,
		bins:    make([]int, capacity),
	}
}

// Len returns the number of samples currently in the window.
func (r *Ring) Len() int { return r.size }

// Cap returns the window capacity.
func (r *Ring) Cap() int { return len(r.bins) }

// Observe slides a binned sample into the window, displacing the oldest
// sample if the window is full.
func (r *Ring) Observe(bin int) {
	if r.size < len(r.bins) {
		r.bins[r.index] = bin
		r.index = (r.index + 1) % len(r.bins)
		r.size++
		r.tracker.Insert(bin)
		return
	}

	old := r.bins[r.index]
	r.bins[r.index] = bin
	r.index = (r.index + 1) % len(r.bins)
	r.tracker.Replace(bin, old)
}

// Reset drains the window, removing its samples from the tracker oldest
// first.
func (r *Ring) Reset() {
	start := r.index - r.size
	for start < 0 {
		start += len(r.bins)
	}
	for n := 0; n < r.size; n++ {
		r.tracker.Remove(r.bins[(start+n)%len(r.bins)])
	}
	r.size = 0
	r.index = 0
}
