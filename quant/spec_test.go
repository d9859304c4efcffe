package quant_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericsmacedo/fxp/quant"
)

// TestQ_Defaults verifies the default policy: signed, TRUNC, WRAP.
func TestQ_Defaults(t *testing.T) {
	spec, err := quant.Q(3, 4)
	require.NoError(t, err)

	assert.Equal(t, 3, spec.IntBits)
	assert.Equal(t, 4, spec.FracBits)
	assert.True(t, spec.Signed)
	assert.Equal(t, quant.Trunc, spec.Rounding)
	assert.Equal(t, quant.Wrap, spec.Overflow)
	assert.Equal(t, 7, spec.TotalBits())
}

// TestQ_Options verifies the functional options override the defaults.
func TestQ_Options(t *testing.T) {
	spec, err := quant.Q(8, 0,
		quant.WithUnsigned(),
		quant.WithRounding(quant.HalfEven),
		quant.WithOverflow(quant.Checked),
	)
	require.NoError(t, err)

	assert.False(t, spec.Signed)
	assert.Equal(t, quant.HalfEven, spec.Rounding)
	assert.Equal(t, quant.Checked, spec.Overflow)
}

// TestQ_InvalidSpec covers every rejection path: negative bits, zero width,
// width beyond the int64 lattice.
func TestQ_InvalidSpec(t *testing.T) {
	cases := []struct{ qi, qf int }{
		{-1, 4},
		{4, -1},
		{0, 0},
		{-3, -3},
		{32, 32}, // 64 bits: one past MaxTotalBits
		{64, 0},
	}

	for _, tc := range cases {
		_, err := quant.Q(tc.qi, tc.qf)
		assert.ErrorIs(t, err, quant.ErrInvalidSpec, "Q(%d,%d)", tc.qi, tc.qf)
	}

	// Boundary widths are legal.
	_, err := quant.Q(1, 0)
	assert.NoError(t, err)
	_, err = quant.Q(0, 1)
	assert.NoError(t, err)
	_, err = quant.Q(31, 32) // exactly 63
	assert.NoError(t, err)
}

// TestSpec_RangeConvention pins the sign-bit convention: IntBits includes
// the sign bit, so sQ8.0 spans [−128, 127] and uQ8.0 spans [0, 255].
func TestSpec_RangeConvention(t *testing.T) {
	signed, err := quant.Q(8, 0)
	require.NoError(t, err)
	assert.Equal(t, -128.0, signed.Min())
	assert.Equal(t, 127.0, signed.Max())

	unsigned, err := quant.Q(8, 0, quant.WithUnsigned())
	require.NoError(t, err)
	assert.Equal(t, 0.0, unsigned.Min())
	assert.Equal(t, 255.0, unsigned.Max())

	// Fractional bits shift the range into the real domain.
	q34, err := quant.Q(3, 4)
	require.NoError(t, err)
	assert.Equal(t, -4.0, q34.Min())
	assert.Equal(t, 3.9375, q34.Max())
	assert.Equal(t, 0.0625, q34.Resolution())
}

// TestSpec_RangeBoundaries verifies both boundary values survive a checked
// round trip: the boundaries are representable, one step beyond is not.
func TestSpec_RangeBoundaries(t *testing.T) {
	spec, err := quant.Q(8, 0, quant.WithOverflow(quant.Checked))
	require.NoError(t, err)

	y, err := quant.Quantize(127, spec)
	require.NoError(t, err)
	assert.Equal(t, 127.0, y)

	y, err = quant.Quantize(-128, spec)
	require.NoError(t, err)
	assert.Equal(t, -128.0, y)

	_, err = quant.Quantize(128, spec)
	assert.ErrorIs(t, err, quant.ErrOverflow)

	_, err = quant.Quantize(-129, spec)
	assert.ErrorIs(t, err, quant.ErrOverflow)
}

// TestSpec_MaxMinInvalid: range accessors refuse to guess on a bad spec.
func TestSpec_MaxMinInvalid(t *testing.T) {
	bad := quant.Spec{IntBits: 0, FracBits: 0}
	assert.True(t, math.IsNaN(bad.Max()))
	assert.True(t, math.IsNaN(bad.Min()))
}

// TestSpec_String checks the compact Q-notation rendering.
func TestSpec_String(t *testing.T) {
	s, _ := quant.Q(3, 4)
	assert.Equal(t, "sQ3.4", s.String())

	u, _ := quant.Q(8, 0, quant.WithUnsigned())
	assert.Equal(t, "uQ8.0", u.String())
}

// TestModes_StableCodes freezes the serialization codes; changing any of
// these breaks persisted specs.
func TestModes_StableCodes(t *testing.T) {
	assert.Equal(t, 0, int(quant.Trunc))
	assert.Equal(t, 1, int(quant.Ceil))
	assert.Equal(t, 2, int(quant.ToZero))
	assert.Equal(t, 3, int(quant.Away))
	assert.Equal(t, 4, int(quant.HalfUp))
	assert.Equal(t, 5, int(quant.HalfDown))
	assert.Equal(t, 6, int(quant.HalfEven))
	assert.Equal(t, 7, int(quant.HalfZero))
	assert.Equal(t, 8, int(quant.HalfAway))

	assert.Equal(t, 0, int(quant.Wrap))
	assert.Equal(t, 1, int(quant.Saturate))
	assert.Equal(t, 2, int(quant.Checked))
}

// TestModes_Names covers the diagnostic reverse lookup.
func TestModes_Names(t *testing.T) {
	assert.Equal(t, "TRUNC", quant.Trunc.String())
	assert.Equal(t, "HALF_EVEN", quant.HalfEven.String())
	assert.Equal(t, "HALF_AWAY", quant.HalfAway.String())
	assert.Equal(t, "RoundingMode(20)", quant.RoundingMode(20).String())

	assert.Equal(t, "WRAP", quant.Wrap.String())
	assert.Equal(t, "SAT", quant.Saturate.String())
	assert.Equal(t, "CHECKED", quant.Checked.String())
	assert.Equal(t, "OverflowMode(-1)", quant.OverflowMode(-1).String())
}

// TestModes_FromCode round-trips every defined code and rejects the rest.
func TestModes_FromCode(t *testing.T) {
	for code := 0; code <= 8; code++ {
		m, err := quant.RoundingModeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, int(m))
	}
	_, err := quant.RoundingModeFromCode(9)
	assert.ErrorIs(t, err, quant.ErrInvalidRounding)
	_, err = quant.RoundingModeFromCode(-1)
	assert.ErrorIs(t, err, quant.ErrInvalidRounding)

	for code := 0; code <= 2; code++ {
		m, err := quant.OverflowModeFromCode(code)
		require.NoError(t, err)
		assert.Equal(t, code, int(m))
	}
	_, err = quant.OverflowModeFromCode(3)
	assert.ErrorIs(t, err, quant.ErrInvalidOverflow)
}
