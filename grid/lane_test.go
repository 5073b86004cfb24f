package grid_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	slidingquantiles "github.com/EvanBalster/sliding-quantiles"
	"github.com/EvanBalster/sliding-quantiles/grid"
	"github.com/EvanBalster/sliding-quantiles/internal/testutil"
)

func TestLaneCreation(t *testing.T) {
	g := grid.New(3, 8)

	lane := g.Lane(1, 2, 0)
	require.NotNil(t, lane)
	assert.Equal(t, 8, lane.Size())
	assert.Equal(t, 0, lane.Population())

	// The lane-axis element of the coordinate is ignored.
	again := g.Lane(1, 2, 5)
	require.NotNil(t, again)
	assert.Equal(t, 8, again.Size())

	assert.Nil(t, g.Lane(2, 0, 0))
	assert.Nil(t, g.Lane(-1, 0, 0))
	assert.Nil(t, g.Lane(1, 3, 0))
	assert.Nil(t, g.Lane(1, 0))
}

func TestLaneInsertRemove(t *testing.T) {
	g := grid.New(2, 5)
	lane := g.Lane(1, 1, 0)
	require.NotNil(t, lane)

	assert.True(t, lane.Insert(3))
	assert.True(t, lane.Insert(3))
	assert.True(t, lane.Insert(0))
	assert.Equal(t, 3, lane.Population())
	assert.Equal(t, 2, lane.CountAt(3))

	// Counts land in the lane's row, not the other one.
	v, _ := g.At(1, 3)
	assert.Equal(t, 2, v)
	v, _ = g.At(0, 3)
	assert.Equal(t, 0, v)

	assert.False(t, lane.Insert(5))
	assert.False(t, lane.Insert(-1))
	assert.False(t, lane.Remove(2))
	assert.False(t, lane.Remove(9))
	assert.Equal(t, 3, lane.Population())

	assert.True(t, lane.Remove(3))
	assert.Equal(t, 2, lane.Population())
	assert.Equal(t, 1, lane.CountAt(3))
}

func TestLaneRecountAfterDirectEdit(t *testing.T) {
	g := grid.New(2, 6)
	lane := g.Lane(1, 0, 0)
	require.NotNil(t, lane)

	tracker, err := slidingquantiles.NewTracker(lane, slidingquantiles.Fraction{Num: 1, Den: 2})
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		require.True(t, tracker.Insert(i))
	}
	testutil.RequireConsistent(t, tracker)

	// Bulk-load cells behind the lane's back, then resynchronize.
	g.Set(40, 0, 5)
	g.Add(3, 0, 1)
	tracker.Recalculate()

	assert.Equal(t, 48, lane.Population())
	testutil.RequireConsistent(t, tracker)
	assert.Equal(t, slidingquantiles.Range{Lower: 5, Upper: 5}, tracker.Quantiles()[0].Range())
}

func TestTrackerOverLaneMatchesFlat(t *testing.T) {
	const (
		bins = 16
		ops  = 2000
	)
	rng := rand.New(rand.NewSource(7))

	g := grid.New(3, bins)
	lane := g.Lane(1, 1, 0)
	require.NotNil(t, lane)

	overLane, err := slidingquantiles.NewTracker(lane, testutil.Quantiles()...)
	require.NoError(t, err)
	overFlat, err := slidingquantiles.NewTracker(slidingquantiles.NewCounts(bins), testutil.Quantiles()...)
	require.NoError(t, err)

	live := make([]int, 0, ops)
	for i := 0; i < ops; i++ {
		bin := rng.Intn(bins)
		if len(live) > 20 && rng.Intn(3) == 0 {
			old := live[rng.Intn(len(live))]
			require.Equal(t, overFlat.Remove(old), overLane.Remove(old))
			for j, b := range live {
				if b == old {
					live = append(live[:j], live[j+1:]...)
					break
				}
			}
		} else {
			require.Equal(t, overFlat.Insert(bin), overLane.Insert(bin))
			live = append(live, bin)
		}

		testutil.RequireConsistent(t, overLane)
		flat := overFlat.Quantiles()
		for qi, tracked := range overLane.Quantiles() {
			require.Equal(t, flat[qi].Range(), tracked.Range())
		}
	}
}
