package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestApplyOutflow_PisoEnCero(t *testing.T) {
	assert.True(t, ApplyOutflow(d("100"), d("30")).Equal(d("70")))
	assert.True(t, ApplyOutflow(d("20"), d("50")).Equal(decimal.Zero))
	assert.True(t, ApplyOutflow(decimal.Zero, d("5")).Equal(decimal.Zero))
	assert.True(t, ApplyOutflow(d("12.5"), d("12.5")).Equal(decimal.Zero))
}

func TestIsCritical(t *testing.T) {
	assert.True(t, IsCritical(d("5"), d("5")))
	assert.True(t, IsCritical(decimal.Zero, decimal.Zero))
	assert.False(t, IsCritical(d("6"), d("5")))
}

func TestCountsAsCritical_IgnoraMinimoCero(t *testing.T) {
	assert.False(t, CountsAsCritical(decimal.Zero, decimal.Zero))
	assert.True(t, CountsAsCritical(d("3"), d("10")))
	assert.False(t, CountsAsCritical(d("11"), d("10")))
}
