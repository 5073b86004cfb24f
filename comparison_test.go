package slidingquantiles_test

import (
	"math/rand"
	"testing"

	"github.com/influxdata/tdigest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slidingquantiles "github.com/EvanBalster/sliding-quantiles"
	"github.com/EvanBalster/sliding-quantiles/binning"
)

// TestComparison_TDigest sanity-checks the tracked estimate against a
// t-digest sketch of the same stream. The sketch is approximate and works on
// raw values; the tracker is exact over bins, so agreement is to within bin
// resolution plus sketch error.
func TestComparison_TDigest(t *testing.T) {
	rule := binning.NewLinear(0, 1000, 1000)
	tr, err := slidingquantiles.NewTracker(
		slidingquantiles.NewCounts(rule.Bins()),
		slidingquantiles.Fraction{Num: 9, Den: 10})
	require.NoError(t, err)

	td := tdigest.NewWithCompression(100)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 10000; i++ {
		v := rng.Float64() * 1000
		tr.Insert(rule.Index(v))
		td.Add(v, 1)
	}

	tracked := rule.BinMid(int(tr.Quantiles()[0].Range().Midpoint()))
	sketched := td.Quantile(0.9)
	assert.InDelta(t, sketched, tracked, 50,
		"tracked p90 %.1f vs t-digest p90 %.1f", tracked, sketched)
}

// BenchmarkComparison_TrackedInsert measures a tracked insert plus readout.
func BenchmarkComparison_TrackedInsert(b *testing.B) {
	tr, _ := slidingquantiles.NewTracker(
		slidingquantiles.NewCounts(1000),
		slidingquantiles.Fraction{Num: 9, Den: 10})
	rng := rand.New(rand.NewSource(42))

	// Pre-fill
	for i := 0; i < 1000; i++ {
		tr.Insert(rng.Intn(1000))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Insert(rng.Intn(1000))
		_ = tr.Quantiles()[0].Range()
	}
}

// BenchmarkComparison_TrackedReplace measures the sliding-window steady
// state: one replace per observation.
func BenchmarkComparison_TrackedReplace(b *testing.B) {
	tr, _ := slidingquantiles.NewTracker(
		slidingquantiles.NewCounts(1000),
		slidingquantiles.Fraction{Num: 9, Den: 10})
	rng := rand.New(rand.NewSource(42))

	window := make([]int, 1000)
	for i := range window {
		window[i] = rng.Intn(1000)
		tr.Insert(window[i])
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bin := rng.Intn(1000)
		slot := i % len(window)
		tr.Replace(bin, window[slot])
		window[slot] = bin
		_ = tr.Quantiles()[0].Range()
	}
}

// BenchmarkComparison_TDigest is the sketch baseline for the benchmarks
// above.
func BenchmarkComparison_TDigest(b *testing.B) {
	td := tdigest.NewWithCompression(100)
	rng := rand.New(rand.NewSource(42))

	// Pre-fill
	for i := 0; i < 1000; i++ {
		td.Add(rng.Float64()*1000, 1)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		td.Add(rng.Float64()*1000, 1)
		_ = td.Quantile(0.9)
	}
}
