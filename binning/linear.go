package binning

// Linear bins continuous values over the half-open domain [Min, Max) into
// equal-width steps. A value exactly on an interior step boundary belongs to
// the higher bin; a value that floating-point division lands exactly on Max's
// step is clamped into the top bin as long as it is still below Max.
type Linear struct {
	min, max, step float64
	bins           int
}

var _ Rule[float64] = Linear{}

// NewLinear creates a rule dividing [min, max) into the given number of
// equal-width bins. Fewer than one bin is treated as one.
func NewLinear(min, max float64, bins int) Linear {
	if bins < 1 {
		bins = 1
	}
	return Linear{
		min:  min,
		max:  max,
		step: (max - min) / float64(bins),
		bins: bins,
	}
}

// Bins returns the number of bins.
func (l Linear) Bins() int { return l.bins }

// Min returns the inclusive lower edge of the domain.
func (l Linear) Min() float64 { return l.min }

// Max returns the exclusive upper edge of the domain.
func (l Linear) Max() float64 { return l.max }

// Step returns the width of one bin.
func (l Linear) Step() float64 { return l.step }

// Accept reports whether the value lies inside the domain.
func (l Linear) Accept(v float64) bool { return v >= l.min && v < l.max }

// Index returns the bin covering the value, or Reject.
func (l Linear) Index(v float64) int {
	if !l.Accept(v) {
		return Reject
	}
	i := int((v - l.min) / l.step)
	if i >= l.bins {
		i = l.bins - 1
	}
	return i
}

// BinMin returns the inclusive lower edge of a bin.
func (l Linear) BinMin(bin int) float64 { return l.min + l.step*float64(bin) }

// BinMax returns the exclusive upper edge of a bin.
func (l Linear) BinMax(bin int) float64 { return l.BinMin(bin) + l.step }

// BinMid returns the central value of a bin.
func (l Linear) BinMid(bin int) float64 { return l.BinMin(bin) + l.step*0.5 }

// Frac returns the value's fractional grid coordinate, measured so that bin
// centers fall on whole numbers. Used for interpolated sampling over grids.
func (l Linear) Frac(v float64) float64 {
	return (v-l.min)/l.step - 0.5
}
