package num

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestEqualish(t *testing.T) {
	tol := dec("0.01")
	assert.True(t, Equalish(dec("100.000"), dec("100.005"), tol))
	assert.False(t, Equalish(dec("100.00"), dec("100.01"), tol))
	assert.True(t, Equalish(dec("-5"), dec("-5"), tol))
}

func TestSafeDiv(t *testing.T) {
	assert.True(t, SafeDiv(dec("10"), decimal.Zero).IsZero())
	assert.Equal(t, "2.5", SafeDiv(dec("10"), dec("4")).String())
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, "1", Min(dec("1"), dec("2")).String())
	assert.Equal(t, "2", Max(dec("1"), dec("2")).String())
}

func TestPositivePart(t *testing.T) {
	assert.Equal(t, "3", PositivePart(dec("3")).String())
	assert.True(t, PositivePart(dec("-3")).IsZero())
	assert.True(t, PositivePart(decimal.Zero).IsZero())
}

func TestCompoundStep_AnnualFrequency(t *testing.T) {
	// 3% annually for 2 elapsed years.
	got := CompoundStep(dec("10000000"), dec("0.03"), 2, 1)
	assert.Equal(t, "10609000", got.String())
}

func TestCompoundStep_FlatBetweenSteps(t *testing.T) {
	base := dec("1000")
	growth := dec("0.10")
	// Escalates only every 3 years: flat at offsets 0..2, one step at 3..5.
	assert.Equal(t, "1000", CompoundStep(base, growth, 0, 3).String())
	assert.Equal(t, "1000", CompoundStep(base, growth, 2, 3).String())
	assert.Equal(t, "1100", CompoundStep(base, growth, 3, 3).String())
	assert.Equal(t, "1100", CompoundStep(base, growth, 5, 3).String())
	assert.Equal(t, "1210", CompoundStep(base, growth, 6, 3).String())
}

func TestCompoundStep_ZeroFrequencyDisables(t *testing.T) {
	assert.Equal(t, "1000", CompoundStep(dec("1000"), dec("0.10"), 10, 0).String())
}

func TestDiscount(t *testing.T) {
	// 110 one period out at 10% is worth 100.
	got := Discount(dec("110"), dec("0.10"), 1)
	assert.True(t, Equalish(got, dec("100"), dec("0.0001")), "got %s", got)
}
