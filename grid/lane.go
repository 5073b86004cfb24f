package grid

import (
	slidingquantiles "github.com/EvanBalster/sliding-quantiles"
)

// Lane exposes a one-dimensional run of grid cells, one axis with every
// other coordinate fixed, as histogram storage, so quantiles can be tracked
// along a single axis of a multivariate grid with the same algorithm used
// for flat histograms.
//
// The lane keeps its own population counter over its cells. If the cells are
// edited directly through the grid, call Recount (the tracker's Recalculate
// does this automatically).
//
// This type is not concurrency safe.
type Lane struct {
	grid       *Grid
	base       int
	stride     int
	size       int
	population int
}

var _ slidingquantiles.Histogram = &Lane{}
var _ slidingquantiles.Recounter = &Lane{}

// Lane creates a lane along the given axis, with the remaining axes fixed at
// the given coordinate (whose element on the lane axis is ignored). Returns
// nil if the axis or coordinate is invalid.
func (g *Grid) Lane(axis int, at ...int) *Lane {
	if axis < 0 || axis >= len(g.dims) || len(at) != len(g.dims) {
		return nil
	}
	origin := append([]int(nil), at...)
	origin[axis] = 0
	base := g.Index(origin...)
	if base == Reject {
		return nil
	}
	l := &Lane{
		grid:   g,
		base:   base,
		stride: g.strides[axis],
		size:   g.dims[axis],
	}
	l.Recount()
	return l
}

// Size returns the number of bins along the lane.
func (l *Lane) Size() int { return l.size }

// Population returns the total sample count in the lane's cells.
func (l *Lane) Population() int { return l.population }

// CountAt returns the count at the given bin of the lane.
func (l *Lane) CountAt(bin int) int {
	return l.grid.cells[l.base+bin*l.stride]
}

// Insert adds one sample at the given bin, reporting whether the sample was
// accepted. Out-of-range bins are rejected.
func (l *Lane) Insert(bin int) bool {
	if bin < 0 || bin >= l.size {
		return false
	}
	l.grid.cells[l.base+bin*l.stride]++
	l.population++
	return true
}

// Remove subtracts one sample at the given bin, reporting whether a sample
// was removed. Out-of-range bins and empty bins are rejected.
func (l *Lane) Remove(bin int) bool {
	if bin < 0 || bin >= l.size || l.CountAt(bin) == 0 {
		return false
	}
	l.grid.cells[l.base+bin*l.stride]--
	l.population--
	return true
}

// Recount rebuilds the population total from the lane's cells.
func (l *Lane) Recount() {
	n := 0
	for i := 0; i < l.size; i++ {
		n += l.CountAt(i)
	}
	l.population = n
}
