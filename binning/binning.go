// Package binning maps sample values onto dense histogram bin indices.
//
// A binning rule carves a value domain into a fixed number of consecutive
// bins and converts each acceptable value into the index of the bin covering
// it. Values outside the domain map to Reject; histogram mutations at Reject
// are silently absorbed, which is how out-of-range samples are dropped.
package binning

// Reject is the index returned for values outside a rule's domain.
const Reject = -1

// Rule converts values of one type into bin indices in [0, Bins()), or
// Reject for values outside the rule's domain.
type Rule[V any] interface {
	// Bins returns the total number of bins the rule maps onto.
	Bins() int

	// Index returns the bin covering the value, or Reject.
	Index(v V) int
}

// Integer covers the discrete value kinds a Discrete rule can bin.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32
}
