// Package grid provides N-dimensional count grids for multivariate binned
// data: dense cell storage with coordinate arithmetic, out-of-range
// policies, and multilinear interpolated sampling. A one-dimensional lane of
// cells can serve as histogram storage for quantile tracking.
package grid

import "math"

// Reject is returned for coordinates outside the grid under the Fail policy.
const Reject = -1

// Policy selects how out-of-range coordinates are treated.
type Policy int8

const (
	// Fail rejects out-of-range coordinates.
	Fail Policy = iota

	// Clamp moves out-of-range coordinates to the nearest edge.
	Clamp

	// Wrap wraps out-of-range coordinates around the grid.
	Wrap
)

// Grid is an N-dimensional array of integer counts stored row-major.
//
// This type is not concurrency safe.
type Grid struct {
	dims    []int
	strides []int
	cells   []int
}

// New creates a grid with the given dimensions. Each dimension below one is
// treated as one.
func New(dims ...int) *Grid {
	g := &Grid{
		dims:    make([]int, len(dims)),
		strides: make([]int, len(dims)),
	}
	total := 1
	for d := len(dims) - 1; d >= 0; d-- {
		n := dims[d]
		if n < 1 {
			n = 1
		}
		g.dims[d] = n
		g.strides[d] = total
		total *= n
	}
	g.cells = make([]int, total)
	return g
}

// Dims returns the grid's dimensions.
func (g *Grid) Dims() []int { return append([]int(nil), g.dims...) }

// Len returns the total number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Index converts a coordinate to a flat cell index, or Reject if any axis is
// out of range.
func (g *Grid) Index(coord ...int) int {
	return g.IndexWith(Fail, coord...)
}

// IndexWith converts a coordinate to a flat cell index under the given
// out-of-range policy. Under Fail, out-of-range coordinates return Reject.
func (g *Grid) IndexWith(policy Policy, coord ...int) int {
	if len(coord) != len(g.dims) {
		return Reject
	}
	index := 0
	for d, c := range coord {
		n := g.dims[d]
		switch policy {
		case Clamp:
			if c < 0 {
				c = 0
			} else if c >= n {
				c = n - 1
			}
		case Wrap:
			c = ((c % n) + n) % n
		default:
			if c < 0 || c >= n {
				return Reject
			}
		}
		index += c * g.strides[d]
	}
	return index
}

// Coord converts a flat cell index back to a coordinate, or nil if the index
// is out of range.
func (g *Grid) Coord(index int) []int {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	coord := make([]int, len(g.dims))
	for d := range g.dims {
		coord[d] = index / g.strides[d]
		index %= g.strides[d]
	}
	return coord
}

// AtIndex returns the count at a flat cell index.
func (g *Grid) AtIndex(index int) int { return g.cells[index] }

// At returns the count at a coordinate, and whether the coordinate was in
// range.
func (g *Grid) At(coord ...int) (int, bool) {
	i := g.Index(coord...)
	if i == Reject {
		return 0, false
	}
	return g.cells[i], true
}

// Add adjusts the count at a coordinate, reporting whether the coordinate
// was in range.
func (g *Grid) Add(delta int, coord ...int) bool {
	i := g.Index(coord...)
	if i == Reject {
		return false
	}
	g.cells[i] += delta
	return true
}

// Set stores a count at a coordinate, reporting whether the coordinate was
// in range.
func (g *Grid) Set(value int, coord ...int) bool {
	i := g.Index(coord...)
	if i == Reject {
		return false
	}
	g.cells[i] = value
	return true
}

// Clear zeroes every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Sample interpolates the grid multilinearly at a fractional coordinate,
// where whole numbers fall on cell centers. Cells referenced outside the
// grid follow the policy; under Fail the fallback value is returned with
// ok=false.
func (g *Grid) Sample(frac []float64, policy Policy, fallback float64) (value float64, ok bool) {
	n := len(g.dims)
	if len(frac) != n {
		return fallback, false
	}

	lo := make([]int, n)
	w := make([]float64, n)
	for d, f := range frac {
		floor := math.Floor(f)
		lo[d] = int(floor)
		w[d] = f - floor
	}

	corner := make([]int, n)
	total := 0.0
	for mask := 0; mask < 1<<uint(n); mask++ {
		weight := 1.0
		for d := 0; d < n; d++ {
			if mask&(1<<uint(d)) != 0 {
				corner[d] = lo[d] + 1
				weight *= w[d]
			} else {
				corner[d] = lo[d]
				weight *= 1 - w[d]
			}
		}
		if weight == 0 {
			continue
		}
		i := g.IndexWith(policy, corner...)
		if i == Reject {
			return fallback, false
		}
		total += float64(g.cells[i]) * weight
	}
	return total, true
}
