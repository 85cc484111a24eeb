package money

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, 36.75, LineTotal(24.5, 1.5))
	assert.Equal(t, 0.3, LineTotal(0.1, 3))
}

func TestSum(t *testing.T) {
	assert.Equal(t, 0.6, Sum(0.1, 0.2, 0.3))
	assert.Equal(t, 0.0, Sum())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "36.75", Format(36.75))
	assert.Equal(t, "10.00", Format(10))
}

func TestNonFiniteAmountsCountAsZero(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.Equal(t, 2.0, Sum(math.Inf(1), 2))
		assert.Equal(t, 0.0, LineTotal(math.NaN(), 2))
		assert.Equal(t, "0.00", Format(math.Inf(-1)))
	})
	assert.False(t, Finite(math.NaN()))
	assert.False(t, Finite(math.Inf(1)))
	assert.True(t, Finite(1.5))
}
