package window

import (
	"time"

	slidingquantiles "github.com/EvanBalster/sliding-quantiles"
)

type timedSample struct {
	bin int
	at  int64
}

// Timed feeds a tracker from a time-based sliding window: samples older than
// the window duration are removed from the tracker before each new
// observation. Timestamps must be non-decreasing.
//
// This type is not concurrency safe.
type Timed struct {
	tracker *slidingquantiles.Tracker
	maxAge  time.Duration
	samples []timedSample
	head    int
}

// NewTimed creates a time-based window over the given duration feeding the
// given tracker.
func NewTimed(t *slidingquantiles.Tracker, maxAge time.Duration) *Timed {
	return &Timed{
		tracker: t,
		maxAge:  maxAge,
	}
}

// Len returns the number of samples currently in the window.
func (w *Timed) Len() int { return len(w.samples) - w.head }

// Observe slides a binned sample into the window at the current time.
func (w *Timed) Observe(bin int) {
	w.ObserveAt(bin, time.Now())
}

// ObserveAt slides a binned sample into the window with an explicit
// timestamp, first expiring samples older than the window duration. Explicit
// timestamps make replay and testing deterministic.
func (w *Timed) ObserveAt(bin int, at time.Time) {
	w.ExpireAt(at)
	w.samples = append(w.samples, timedSample{bin: bin, at: at.UnixNano()})
	w.tracker.Insert(bin)
}

// ExpireAt removes samples whose timestamps fall strictly before the window
// leading up to the given time.
func (w *Timed) ExpireAt(at time.Time) {
	cutoff := at.Add(-w.maxAge).UnixNano()
	for w.head < len(w.samples) && w.samples[w.head].at < cutoff {
		w.tracker.Remove(w.samples[w.head].bin)
		w.head++
	}

	// Compact once the expired prefix dominates the backing slice.
	if w.head > 0 && w.head*2 >= len(w.samples) {
		w.samples = append(w.samples[:0], w.samples[w.head:]...)
		w.head = 0
	}
}
