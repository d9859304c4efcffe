package quant

import (
	"errors"
	"fmt"
)

// RoundingMode selects how a scaled value is snapped to the integer lattice.
//
// The numeric codes are stable and intended for plain-data serialization of
// specs; use RoundingModeFromCode when decoding.
type RoundingMode int

const (
	// Trunc rounds toward negative infinity (bit truncation). Code 0.
	Trunc RoundingMode = iota

	// Ceil rounds toward positive infinity. Code 1.
	Ceil

	// ToZero drops the fractional part, rounding toward zero. Code 2.
	ToZero

	// Away rounds away from zero: ceil of the magnitude, sign restored. Code 3.
	Away

	// HalfUp rounds to nearest; ties go toward positive infinity. Code 4.
	HalfUp

	// HalfDown rounds to nearest; ties go toward negative infinity. Code 5.
	HalfDown

	// HalfEven rounds to nearest; ties go to the nearest even integer. Code 6.
	HalfEven

	// HalfZero rounds to nearest; ties go toward zero. Code 7.
	HalfZero

	// HalfAway rounds to nearest; ties go away from zero. Code 8.
	HalfAway
)

// OverflowMode selects how an integer outside the representable range is
// reduced back into it. Codes are stable: WRAP=0, SAT=1, CHECKED=2.
type OverflowMode int

const (
	// Wrap reduces modulo 2^width; for signed formats the top bit is
	// reinterpreted as sign (two's-complement aliasing). Code 0.
	Wrap OverflowMode = iota

	// Saturate clamps to the nearest representable boundary. Code 1.
	Saturate

	// Checked rejects any out-of-range value with ErrOverflow. Code 2.
	Checked
)

// Sentinel errors. All failures surface as (or wrap) one of these; match
// with errors.Is.
var (
	// ErrInvalidSpec indicates a malformed format: negative bit counts or a
	// total width outside [MinTotalBits, MaxTotalBits].
	ErrInvalidSpec = errors.New("quant: integer and fractional bits must be non-negative and total 1..63")

	// ErrInvalidRounding indicates an unrecognized rounding mode code.
	ErrInvalidRounding = errors.New("quant: invalid rounding mode")

	// ErrInvalidOverflow indicates an unrecognized overflow mode code.
	ErrInvalidOverflow = errors.New("quant: invalid overflow mode")

	// ErrOverflow indicates a value outside the representable range under
	// the Checked overflow policy.
	ErrOverflow = errors.New("quant: value outside representable range")

	// ErrUnsupportedInput indicates a QuantizeAny input that is neither a
	// real scalar nor a []float64.
	ErrUnsupportedInput = errors.New("quant: unsupported input type")

	// ErrLengthMismatch indicates Pipeline.Into buffers of differing length.
	ErrLengthMismatch = errors.New("quant: dst and src lengths differ")
)

// roundingNames is the diagnostic name table; the reverse of the stable codes.
var roundingNames = [...]string{
	Trunc:    "TRUNC",
	Ceil:     "CEIL",
	ToZero:   "TO_ZERO",
	Away:     "AWAY",
	HalfUp:   "HALF_UP",
	HalfDown: "HALF_DOWN",
	HalfEven: "HALF_EVEN",
	HalfZero: "HALF_ZERO",
	HalfAway: "HALF_AWAY",
}

var overflowNames = [...]string{
	Wrap:     "WRAP",
	Saturate: "SAT",
	Checked:  "CHECKED",
}

// Valid reports whether m is one of the nine defined rounding modes.
func (m RoundingMode) Valid() bool { return m >= Trunc && m <= HalfAway }

// String returns the diagnostic name of the mode, e.g. "HALF_EVEN".
func (m RoundingMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("RoundingMode(%d)", int(m))
	}

	return roundingNames[m]
}

// Valid reports whether m is one of the three defined overflow modes.
func (m OverflowMode) Valid() bool { return m >= Wrap && m <= Checked }

// String returns the diagnostic name of the mode, e.g. "SAT".
func (m OverflowMode) String() string {
	if !m.Valid() {
		return fmt.Sprintf("OverflowMode(%d)", int(m))
	}

	return overflowNames[m]
}

// RoundingModeFromCode decodes a stable integer code back into a RoundingMode.
// Returns ErrInvalidRounding for codes outside 0..8.
func RoundingModeFromCode(code int) (RoundingMode, error) {
	m := RoundingMode(code)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: code %d", ErrInvalidRounding, code)
	}

	return m, nil
}

// OverflowModeFromCode decodes a stable integer code back into an OverflowMode.
// Returns ErrInvalidOverflow for codes outside 0..2.
func OverflowModeFromCode(code int) (OverflowMode, error) {
	m := OverflowMode(code)
	if !m.Valid() {
		return 0, fmt.Errorf("%w: code %d", ErrInvalidOverflow, code)
	}

	return m, nil
}
