package quant

import (
	"fmt"
	"math"
)

// Quantize converts x to its fixed-point representation under spec and
// returns the quantized real value: scale by 2^FracBits, round, reduce into
// the representable range, rescale.
//
// This is the reference scalar path. QuantizeSlice and Pipeline must produce
// the identical result for the same per-element input; that equivalence is a
// tested contract, not an implementation detail.
//
// Errors: ErrInvalidSpec, ErrInvalidRounding, ErrInvalidOverflow,
// ErrOverflow (Checked mode only).
//
// Complexity: O(1).
func Quantize(x float64, spec Spec) (float64, error) {
	if err := spec.Validate(); err != nil {
		return 0, err
	}

	scaled := math.Ldexp(x, spec.FracBits)

	k, err := roundScalar(scaled, spec.Rounding)
	if err != nil {
		return 0, err
	}

	k, err = reduceScalar(k, spec.Signed, spec.TotalBits(), spec.Overflow)
	if err != nil {
		return 0, err
	}

	return math.Ldexp(float64(k), -spec.FracBits), nil
}

// QuantizeSlice converts every element of xs under spec, returning a new
// slice of equal length with order preserved. Elements are independent (a
// pure map); the call is all-or-nothing — under the Checked overflow policy
// one out-of-range element anywhere fails the whole call with ErrOverflow
// and no partial output.
//
// Implemented on the compiled pipeline so the policy is resolved once per
// call rather than once per element.
//
// Complexity: O(len(xs)).
func QuantizeSlice(xs []float64, spec Spec) ([]float64, error) {
	p, err := Compile(spec)
	if err != nil {
		return nil, err
	}

	return p.Slice(xs)
}

// QuantizeFormat is the positional-argument form of Quantize: it assembles
// the Spec internally, so it additionally surfaces ErrInvalidSpec for bad
// bit counts.
func QuantizeFormat(x float64, intBits, fracBits int, signed bool, rnd RoundingMode, ovf OverflowMode) (float64, error) {
	return Quantize(x, Spec{
		IntBits:  intBits,
		FracBits: fracBits,
		Signed:   signed,
		Rounding: rnd,
		Overflow: ovf,
	})
}

// QuantizeSliceFormat is the positional-argument form of QuantizeSlice.
func QuantizeSliceFormat(xs []float64, intBits, fracBits int, signed bool, rnd RoundingMode, ovf OverflowMode) ([]float64, error) {
	return QuantizeSlice(xs, Spec{
		IntBits:  intBits,
		FracBits: fracBits,
		Signed:   signed,
		Rounding: rnd,
		Overflow: ovf,
	})
}

// QuantizeAny is the dynamic boundary adapter for callers holding untyped
// payloads (deserialized configs, generic buses). It dispatches real scalars
// (float64, float32, int, int64) to the scalar path and []float64 to the
// slice path; any other type fails with ErrUnsupportedInput.
//
// Typed callers should use Quantize / QuantizeSlice directly — the core is
// statically dispatched and this adapter adds nothing but the type switch.
func QuantizeAny(v any, spec Spec) (any, error) {
	switch x := v.(type) {
	case float64:
		y, err := Quantize(x, spec)
		if err != nil {
			return nil, err
		}

		return y, nil
	case float32:
		y, err := Quantize(float64(x), spec)
		if err != nil {
			return nil, err
		}

		return y, nil
	case int:
		y, err := Quantize(float64(x), spec)
		if err != nil {
			return nil, err
		}

		return y, nil
	case int64:
		y, err := Quantize(float64(x), spec)
		if err != nil {
			return nil, err
		}

		return y, nil
	case []float64:
		ys, err := QuantizeSlice(x, spec)
		if err != nil {
			return nil, err
		}

		return ys, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedInput, v)
}
