package quant

import "math"

// half is the midpoint threshold shared by the HALF_* rules.
const half = 0.5

// roundScalar snaps an already-scaled value to the integer lattice according
// to mode. This is the reference presentation of the rounding rule; the
// kernel presentation in rounderFor must agree with it bit-for-bit (enforced
// by the cross-consistency tests).
//
// The input must be finite and, after rounding, fit in int64; otherwise the
// result is unspecified (Go's float→int conversion rule).
func roundScalar(x float64, mode RoundingMode) (int64, error) {
	switch mode {
	case Trunc:
		return int64(math.Floor(x)), nil
	case Ceil:
		return int64(math.Ceil(x)), nil
	case ToZero:
		return int64(x), nil
	case Away:
		if x >= 0 {
			return int64(math.Ceil(x)), nil
		}

		return -int64(math.Ceil(-x)), nil
	case HalfUp:
		return int64(math.Floor(x + half)), nil
	case HalfDown:
		return int64(math.Ceil(x - half)), nil
	case HalfEven:
		return roundHalfEven(x), nil
	case HalfZero:
		if x >= 0 {
			return int64(math.Ceil(x - half)), nil
		}

		return -int64(math.Ceil(-x - half)), nil
	case HalfAway:
		if x >= 0 {
			return int64(math.Floor(x + half)), nil
		}

		return -int64(math.Floor(-x + half)), nil
	}

	return 0, ErrInvalidRounding
}

// roundHalfEven implements the ties-to-even rule.
//
// The tie test compares the fractional part to 0.5 with exact floating-point
// equality on purpose: scaling by a power of two keeps representable ties
// exactly at .5, and an epsilon comparison would misclassify near-ties.
func roundHalfEven(x float64) int64 {
	floor := math.Floor(x)
	if x-floor == half {
		k := int64(floor)
		if k%2 != 0 {
			k++
		}

		return k
	}

	return int64(math.RoundToEven(x))
}

// rounderFor resolves mode once into a branch-free kernel for bulk
// application. Returns ErrInvalidRounding for unknown modes.
func rounderFor(mode RoundingMode) (func(float64) int64, error) {
	switch mode {
	case Trunc:
		return func(x float64) int64 { return int64(math.Floor(x)) }, nil
	case Ceil:
		return func(x float64) int64 { return int64(math.Ceil(x)) }, nil
	case ToZero:
		return func(x float64) int64 { return int64(x) }, nil
	case Away:
		return func(x float64) int64 {
			if x >= 0 {
				return int64(math.Ceil(x))
			}

			return -int64(math.Ceil(-x))
		}, nil
	case HalfUp:
		return func(x float64) int64 { return int64(math.Floor(x + half)) }, nil
	case HalfDown:
		return func(x float64) int64 { return int64(math.Ceil(x - half)) }, nil
	case HalfEven:
		return roundHalfEven, nil
	case HalfZero:
		return func(x float64) int64 {
			if x >= 0 {
				return int64(math.Ceil(x - half))
			}

			return -int64(math.Ceil(-x - half))
		}, nil
	case HalfAway:
		return func(x float64) int64 {
			if x >= 0 {
				return int64(math.Floor(x + half))
			}

			return -int64(math.Floor(-x + half))
		}, nil
	}

	return nil, ErrInvalidRounding
}
