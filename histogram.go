package slidingquantiles

import (
	"github.com/bits-and-blooms/bitset"
)

// Histogram is the bin-count storage a Tracker operates on: a dense, ordered
// mapping from bin index to a non-negative sample count. It may be backed by
// a flat array (Counts) or by a one-dimensional run of cells in a larger
// structure, such as grid.Lane.
//
// Mutations adjust one bin and the population by one sample. A mutation at an
// index outside [0, Size()), or a Remove at a bin whose count is already
// zero, is rejected: it returns false and changes nothing.
type Histogram interface {
	// Size returns the number of bins.
	Size() int

	// Population returns the total number of samples across all bins.
	Population() int

	// CountAt returns the sample count at the given bin.
	CountAt(bin int) int

	// Insert adds one sample at the given bin, reporting whether the sample
	// was accepted.
	Insert(bin int) bool

	// Remove subtracts one sample at the given bin, reporting whether a
	// sample was removed.
	Remove(bin int) bool
}

// Counts is a flat-array Histogram backend. Alongside the counts it keeps a
// bitset of populated bins, so callers can walk non-empty bins without
// scanning gaps.
//
// This type is not concurrency safe.
type Counts struct {
	counts     []int
	population int
	occupied   *bitset.BitSet
}

var _ Histogram = &Counts{}

// NewCounts creates an empty histogram with the given number of bins.
func NewCounts(size int) *Counts {
	if size < 1 {
		size = 1
	}
	return &Counts{
		counts:   make([]int, size),
		occupied: bitset.New(uint(size)),
	}
}

// Size returns the number of bins.
func (c *Counts) Size() int { return len(c.counts) }

// Population returns the total number of samples.
func (c *Counts) Population() int { return c.population }

// CountAt returns the sample count at the given bin.
func (c *Counts) CountAt(bin int) int { return c.counts[bin] }

// Insert adds one sample at the given bin, reporting whether the sample was
// accepted. Out-of-range bins are rejected.
func (c *Counts) Insert(bin int) bool {
	if bin < 0 || bin >= len(c.counts) {
		return false
	}
	c.counts[bin]++
	c.population++
	c.occupied.Set(uint(bin))
	return true
}

// Remove subtracts one sample at the given bin, reporting whether a sample
// was removed. Out-of-range bins and empty bins are rejected.
func (c *Counts) Remove(bin int) bool {
	if bin < 0 || bin >= len(c.counts) || c.counts[bin] == 0 {
		return false
	}
	c.counts[bin]--
	c.population--
	if c.counts[bin] == 0 {
		c.occupied.Clear(uint(bin))
	}
	return true
}

// FirstPopulated returns the lowest non-empty bin, or false if the histogram
// is empty.
func (c *Counts) FirstPopulated() (int, bool) {
	i, ok := c.occupied.NextSet(0)
	return int(i), ok
}

// NextPopulated returns the lowest non-empty bin strictly above the given
// bin, or false if there is none.
func (c *Counts) NextPopulated(bin int) (int, bool) {
	if bin+1 >= len(c.counts) {
		return 0, false
	}
	i, ok := c.occupied.NextSet(uint(bin + 1))
	return int(i), ok
}

// Reset empties every bin.
func (c *Counts) Reset() {
	for i := range c.counts {
		c.counts[i] = 0
	}
	c.population = 0
	c.occupied.ClearAll()
}
