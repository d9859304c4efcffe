package quant

import (
	"fmt"
	"math"
)

// Total-width bounds for a Spec. The integer lattice is carried in int64, so
// the widest supported format is 63 bits; a zero-width format has no
// representable value and is rejected.
const (
	MinTotalBits = 1
	MaxTotalBits = 63
)

// Spec is an immutable fixed-point format: ARM-style Qm.n plus the rounding
// and overflow policies applied on conversion.
//
// IntBits includes the sign bit when Signed: sQ8.0 spans [−128, 127] while
// uQ8.0 spans [0, 255]. Construct once with Q, pass by value thereafter.
type Spec struct {
	// IntBits is the number of integer bits (sign bit included when Signed).
	IntBits int

	// FracBits is the number of fractional bits.
	FracBits int

	// Signed selects a two's-complement range instead of an unsigned one.
	Signed bool

	// Rounding is applied after scaling by 2^FracBits.
	Rounding RoundingMode

	// Overflow is applied to the rounded lattice value.
	Overflow OverflowMode
}

// Option mutates the spec under construction inside Q.
type Option func(*Spec)

// WithSigned selects a two's-complement representable range (the default).
func WithSigned() Option {
	return func(s *Spec) { s.Signed = true }
}

// WithUnsigned selects an unsigned representable range [0, 2^width−1].
func WithUnsigned() Option {
	return func(s *Spec) { s.Signed = false }
}

// WithRounding selects the rounding mode (default Trunc).
func WithRounding(m RoundingMode) Option {
	return func(s *Spec) { s.Rounding = m }
}

// WithOverflow selects the overflow mode (default Wrap).
func WithOverflow(m OverflowMode) Option {
	return func(s *Spec) { s.Overflow = m }
}

// Q builds a fixed-point format spec: intBits integer bits, fracBits
// fractional bits, signed/Trunc/Wrap unless overridden by options.
//
// Returns ErrInvalidSpec when a bit count is negative or the total width
// falls outside [MinTotalBits, MaxTotalBits]. Mode values are deliberately
// not validated here: an unknown mode code is a call-time error
// (ErrInvalidRounding / ErrInvalidOverflow), mirroring where the failure
// belongs when specs travel as plain data.
//
// Example:
//
//	spec, err := quant.Q(4, 5, quant.WithOverflow(quant.Saturate)) // sQ4.5, SAT
func Q(intBits, fracBits int, opts ...Option) (Spec, error) {
	s := Spec{
		IntBits:  intBits,
		FracBits: fracBits,
		Signed:   true,
		Rounding: Trunc,
		Overflow: Wrap,
	}
	for _, opt := range opts {
		opt(&s)
	}

	if err := s.Validate(); err != nil {
		return Spec{}, err
	}

	return s, nil
}

// Validate checks the bit-width invariants. Mode validity is a call-time
// concern; see Q.
func (s Spec) Validate() error {
	if s.IntBits < 0 || s.FracBits < 0 {
		return fmt.Errorf("%w: got IntBits=%d FracBits=%d", ErrInvalidSpec, s.IntBits, s.FracBits)
	}
	if w := s.IntBits + s.FracBits; w < MinTotalBits || w > MaxTotalBits {
		return fmt.Errorf("%w: got IntBits=%d FracBits=%d", ErrInvalidSpec, s.IntBits, s.FracBits)
	}

	return nil
}

// TotalBits returns IntBits + FracBits.
func (s Spec) TotalBits() int { return s.IntBits + s.FracBits }

// Max returns the largest representable real value, NaN for an invalid spec.
func (s Spec) Max() float64 {
	if s.Validate() != nil {
		return math.NaN()
	}
	_, upper := bounds(s.Signed, s.TotalBits())

	return math.Ldexp(float64(upper), -s.FracBits)
}

// Min returns the smallest representable real value, NaN for an invalid spec.
func (s Spec) Min() float64 {
	if s.Validate() != nil {
		return math.NaN()
	}
	lower, _ := bounds(s.Signed, s.TotalBits())

	return math.Ldexp(float64(lower), -s.FracBits)
}

// Resolution returns the quantization step 2^−FracBits.
func (s Spec) Resolution() float64 { return math.Ldexp(1, -s.FracBits) }

// String renders the format in compact Q notation: "sQ3.4", "uQ8.0".
func (s Spec) String() string {
	sign := byte('s')
	if !s.Signed {
		sign = 'u'
	}

	return fmt.Sprintf("%cQ%d.%d", sign, s.IntBits, s.FracBits)
}
