package gst

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute_IntraState(t *testing.T) {
	split := Compute(1000, 18, false)

	assert.InDelta(t, 90, split.CGST, 1e-9)
	assert.InDelta(t, 90, split.SGST, 1e-9)
	assert.Zero(t, split.IGST)
}

func TestCompute_InterState(t *testing.T) {
	split := Compute(1000, 18, true)

	assert.Zero(t, split.CGST)
	assert.Zero(t, split.SGST)
	assert.InDelta(t, 180, split.IGST, 1e-9)
}

func TestCompute_SplitExclusivity(t *testing.T) {
	cases := []struct {
		taxable float64
		rate    float64
	}{
		{0, 18},
		{1000, 0},
		{1000, 5},
		{999.99, 12},
		{123456.78, 28},
	}

	for _, tc := range cases {
		intra := Compute(tc.taxable, tc.rate, false)
		assert.Zero(t, intra.IGST, "intra-state must not levy IGST")

		inter := Compute(tc.taxable, tc.rate, true)
		assert.Zero(t, inter.CGST, "inter-state must not levy CGST")
		assert.Zero(t, inter.SGST, "inter-state must not levy SGST")
	}
}

func TestCompute_SplitSymmetry(t *testing.T) {
	for _, rate := range []float64{0, 5, 12, 18, 28} {
		split := Compute(777.77, rate, false)
		assert.Equal(t, split.CGST, split.SGST, "intra-state halves must be equal")
		assert.InDelta(t, 777.77*rate/100, split.CGST+split.SGST, 1e-9)
	}
}

func TestCompute_ZeroInputsYieldZeroTax(t *testing.T) {
	assert.Equal(t, TaxSplit{}, Compute(0, 18, false))
	assert.Equal(t, TaxSplit{}, Compute(1000, 0, true))
}

func TestInterState(t *testing.T) {
	assert.False(t, InterState("27", "27"))
	assert.True(t, InterState("29", "27"))
	assert.True(t, InterState("", "27"))
}
