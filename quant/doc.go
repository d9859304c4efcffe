// Package quant converts real-valued scalars and slices into fixed-point
// representation under an explicit Qm.n format, with configurable rounding
// and overflow policies.
//
// 🚀 What is quantization here?
//
//	Given a Spec (integer bits, fractional bits, signedness, rounding mode,
//	overflow mode), every conversion runs the same four-stage pipeline:
//	  1. scale    — multiply by 2^FracBits to reach the integer lattice
//	  2. round    — snap to an integer per the selected rounding mode
//	  3. reduce   — wrap, saturate or reject values outside the format range
//	  4. rescale  — divide by 2^FracBits back to the real domain
//	The result is always k / 2^FracBits for an integer k representable in
//	IntBits+FracBits bits. Common uses:
//	  • DSP bit-accurate models (filters, integrators, NCOs)
//	  • Hardware co-simulation against RTL fixed-point datapaths
//	  • Precision/overflow exploration before committing to a bit width
//
// ✨ Key features:
//   - nine rounding modes with exact tie semantics (TRUNC … HALF_EVEN)
//   - three overflow policies: WRAP (two's-complement), SAT, CHECKED
//   - scalar and slice paths verified to agree element-for-element
//   - Compile once, apply many: Pipeline hoists mode dispatch out of loops
//   - stable integer mode codes for plain-data serialization of specs
//
// ⚙️ Usage:
//
//	import "github.com/ericsmacedo/fxp/quant"
//
//	spec, err := quant.Q(3, 4) // signed Q3.4, TRUNC rounding, WRAP overflow
//	if err != nil { ... }
//
//	y, _ := quant.Quantize(math.Pi, spec) // 3.125
//
//	ys, _ := quant.QuantizeSlice(samples, spec)
//
//	// Hot loop: resolve the policy once.
//	p, _ := quant.Compile(spec)
//	for i, x := range samples {
//		out[i], _ = p.Value(x)
//	}
//
// Conventions:
//
//   - IntBits includes the sign bit when Signed (ARM Q-format): sQ8.0 spans
//     [−128, 127], uQ8.0 spans [0, 255].
//   - Inputs must be finite; NaN and ±Inf produce unspecified results.
//   - Total width IntBits+FracBits must lie in [1, 63] (the lattice is int64).
//
// Errors:
//
//   - ErrInvalidSpec       — malformed format (bits negative, width outside [1,63])
//   - ErrInvalidRounding   — unrecognized rounding mode at call time
//   - ErrInvalidOverflow   — unrecognized overflow mode at call time
//   - ErrOverflow          — out-of-range value under the CHECKED policy
//   - ErrUnsupportedInput  — QuantizeAny input is not a real scalar or []float64
//   - ErrLengthMismatch    — Pipeline.Into called with differing buffer lengths
//
// Every failure aborts the whole conversion: a slice call never returns a
// partially quantized result.
package quant
