package binning

// Pair combines two rules into a two-axis binning scheme, covering samples
// with two degrees of freedom such as tuples or complex numbers. Coordinates
// feed an N-dimensional grid; Index flattens them row-major for use with a
// flat histogram.
type Pair[A, B any] struct {
	First  Rule[A]
	Second Rule[B]
}

// Bins returns the total number of flattened bins.
func (p Pair[A, B]) Bins() int { return p.First.Bins() * p.Second.Bins() }

// Coord returns the per-axis bin coordinate. Either element may be Reject.
func (p Pair[A, B]) Coord(a A, b B) (int, int) {
	return p.First.Index(a), p.Second.Index(b)
}

// Index returns the row-major flattened bin index, or Reject if either axis
// rejects its value.
func (p Pair[A, B]) Index(a A, b B) int {
	ia, ib := p.Coord(a, b)
	if ia == Reject || ib == Reject {
		return Reject
	}
	return ia*p.Second.Bins() + ib
}

// Complex bins complex values by their real and imaginary parts, each under
// its own linear rule.
type Complex struct {
	Re, Im Linear
}

var _ Rule[complex128] = Complex{}

// Bins returns the total number of flattened bins.
func (c Complex) Bins() int { return c.Re.Bins() * c.Im.Bins() }

// Coord returns the (real, imaginary) bin coordinate. Either element may be
// Reject.
func (c Complex) Coord(v complex128) (int, int) {
	return c.Re.Index(real(v)), c.Im.Index(imag(v))
}

// Index returns the row-major flattened bin index, or Reject if either part
// falls outside its domain.
func (c Complex) Index(v complex128) int {
	ir, ii := c.Coord(v)
	if ir == Reject || ii == Reject {
		return Reject
	}
	return ir*c.Im.Bins() + ii
}
