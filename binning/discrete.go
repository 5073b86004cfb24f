package binning

// Discrete bins consecutive integer or enumerated values over the inclusive
// range [Min, Max], one bin per value.
type Discrete[T Integer] struct {
	min, max int64
}

// NewDiscrete creates a rule with one bin for each value from min to max
// inclusive. max below min is treated as a single-value range at min.
func NewDiscrete[T Integer](min, max T) Discrete[T] {
	lo, hi := int64(min), int64(max)
	if hi < lo {
		hi = lo
	}
	return Discrete[T]{min: lo, max: hi}
}

// Bins returns the number of bins.
func (d Discrete[T]) Bins() int { return int(d.max-d.min) + 1 }

// Min returns the lowest binnable value.
func (d Discrete[T]) Min() T { return T(d.min) }

// Max returns the highest binnable value.
func (d Discrete[T]) Max() T { return T(d.max) }

// Accept reports whether the value lies inside the range.
func (d Discrete[T]) Accept(v T) bool {
	i := int64(v)
	return i >= d.min && i <= d.max
}

// Index returns the bin covering the value, or Reject.
func (d Discrete[T]) Index(v T) int {
	if !d.Accept(v) {
		return Reject
	}
	return int(int64(v) - d.min)
}

// ValueAt returns the value a bin represents.
func (d Discrete[T]) ValueAt(bin int) T { return T(d.min + int64(bin)) }

// Bool bins boolean samples: false into bin 0, true into bin 1. Every value
// is acceptable.
type Bool struct{}

var _ Rule[bool] = Bool{}

// Bins returns 2.
func (Bool) Bins() int { return 2 }

// Index returns 0 for false and 1 for true.
func (Bool) Index(v bool) int {
	if v {
		return 1
	}
	return 0
}
