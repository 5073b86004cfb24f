package slidingquantiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFractionValidate(t *testing.T) {
	assert.NoError(t, Fraction{Num: 1, Den: 2}.Validate())
	assert.NoError(t, Fraction{Num: 99, Den: 100}.Validate())
	assert.NoError(t, Fraction{Num: 1, Den: 1000000}.Validate())

	assert.ErrorIs(t, Fraction{Num: 0, Den: 2}.Validate(), ErrInvalidQuantile)
	assert.ErrorIs(t, Fraction{Num: -1, Den: 2}.Validate(), ErrInvalidQuantile)
	assert.ErrorIs(t, Fraction{Num: 2, Den: 2}.Validate(), ErrInvalidQuantile)
	assert.ErrorIs(t, Fraction{Num: 3, Den: 2}.Validate(), ErrInvalidQuantile)
	assert.ErrorIs(t, Fraction{Num: 1, Den: 0}.Validate(), ErrInvalidQuantile)
	assert.ErrorIs(t, Fraction{Num: 1, Den: -2}.Validate(), ErrInvalidQuantile)
}

func TestFractionCompare(t *testing.T) {
	half := Fraction{Num: 1, Den: 2}
	fifty := Fraction{Num: 50, Den: 100}
	p49 := Fraction{Num: 49, Den: 100}
	p99 := Fraction{Num: 99, Den: 100}

	assert.True(t, half.Equal(fifty))
	assert.False(t, half.Equal(p49))
	assert.True(t, p49.Less(half))
	assert.False(t, half.Less(p49))
	assert.True(t, half.Less(p99))

	// A boundary float64 cannot resolve: 1/3 vs 333333333/1000000000.
	third := Fraction{Num: 1, Den: 3}
	almost := Fraction{Num: 333333333, Den: 1000000000}
	assert.True(t, almost.Less(third))
	assert.False(t, third.Less(almost))
}

func TestFractionReadouts(t *testing.T) {
	q := Fraction{Num: 3, Den: 4}
	assert.Equal(t, 0.75, q.Float64())
	assert.Equal(t, "3/4", q.String())
}

func TestRange(t *testing.T) {
	point := Range{Lower: 5, Upper: 5}
	assert.True(t, point.IsValue())
	assert.False(t, point.IsRange())
	assert.Equal(t, 5.0, point.Midpoint())
	assert.Equal(t, "5", point.String())

	gap := Range{Lower: 3, Upper: 6}
	assert.True(t, gap.IsRange())
	assert.False(t, gap.IsValue())
	assert.Equal(t, 4.5, gap.Midpoint())
	assert.Equal(t, "3:6", gap.String())
}
