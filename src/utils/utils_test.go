package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1, "1.0"},
		{9.9, "9.9"},
		{-3, "-3.0"},
		{0.25, "0.25"},
		{0.001, "0.001"},
		{1234567.5, "1234567.5"},
		{1e7, "1.0E7"},
		{1.5e-4, "1.5E-4"},
		{-2.5e10, "-2.5E10"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
		{math.NaN(), "NaN"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, FormatFloat(c.in), "formatting %v", c.in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "1970-01-01T00:00:00", FormatDate(0))
	assert.Equal(t, "2017-07-14T02:40:00", FormatDate(1.5e12))
}

func TestComparisons(t *testing.T) {
	t.Run("Should compare within SMALL", func(t *testing.T) {
		assert.True(t, Gr(1, 0.5))
		assert.False(t, Gr(1+SMALL/2, 1))
		assert.True(t, Eq(1, 1+SMALL/2))
		assert.False(t, Eq(1, 1.1))
	})

	t.Run("Should return the first largest index", func(t *testing.T) {
		assert.Equal(t, -1, MaxIndex(nil))
		assert.Equal(t, 1, MaxIndex([]float64{1, 3, 3, 2}))
		assert.Equal(t, 0, MaxIndex([]float64{0, 0}))
	})
}
