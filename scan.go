package slidingquantiles

// Scan locates a quantile by a full pass over the histogram, accumulating
// counts from bin 0 upward until the quantile's share of the population is
// reached. It costs O(Size()) and serves both as the bootstrap for tracked
// quantiles and as the correctness oracle the incremental adjustment is
// always equivalent to.
//
// When the accumulated share hits the quantile boundary exactly, the
// population divides evenly around the boundary and the result widens into a
// range: Upper advances past any run of empty bins to the next populated bin
// (or the final bin).
//
// The histogram must have at least one bin; a zero-population histogram
// yields no meaningful quantile.
func Scan(h Histogram, q Fraction) Range {
	size := h.Size()
	if size < 1 {
		return Range{}
	}

	quota := h.Population() * q.Num
	leq := h.CountAt(0) * q.Den
	bin := 0

	for bin+1 < size && leq < quota {
		bin++
		leq += h.CountAt(bin) * q.Den
	}

	result := Range{Lower: bin}
	if leq == quota {
		for bin+1 < size {
			bin++
			if h.CountAt(bin) != 0 {
				break
			}
		}
	}
	result.Upper = bin
	return result
}
