package quant

import "fmt"

// bounds returns the representable lattice range for a width-bit format:
// [−2^(width−1), 2^(width−1)−1] signed, [0, 2^width−1] unsigned.
// width must lie in [MinTotalBits, MaxTotalBits].
func bounds(signed bool, width int) (lower, upper int64) {
	if signed {
		msb := uint64(1) << (width - 1)

		return -int64(msb), int64(msb - 1)
	}

	return 0, int64(uint64(1)<<width - 1)
}

// wrapTo reduces v modulo 2^width; for signed formats the masked top bit is
// reinterpreted as sign (two's-complement aliasing).
func wrapTo(v int64, signed bool, width int) int64 {
	mask := uint64(1)<<width - 1
	u := uint64(v) & mask
	if signed && u >= uint64(1)<<(width-1) {
		return int64(u | ^mask)
	}

	return int64(u)
}

// reduceScalar brings a rounded lattice value back into the representable
// range per mode. Reference presentation; reducerFor must agree bit-for-bit.
//
// Errors: ErrOverflow (Checked mode, value out of range) wrapped with the
// offending value and range; ErrInvalidOverflow for unknown modes.
func reduceScalar(v int64, signed bool, width int, mode OverflowMode) (int64, error) {
	lower, upper := bounds(signed, width)

	switch mode {
	case Wrap:
		return wrapTo(v, signed, width), nil
	case Saturate:
		if v > upper {
			return upper, nil
		}
		if v < lower {
			return lower, nil
		}

		return v, nil
	case Checked:
		if v > upper || v < lower {
			return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOverflow, v, lower, upper)
		}

		return v, nil
	}

	return 0, ErrInvalidOverflow
}

// reducerFor resolves mode and format once into a kernel for bulk
// application, with the range precomputed. Returns ErrInvalidOverflow for
// unknown modes.
func reducerFor(signed bool, width int, mode OverflowMode) (func(int64) (int64, error), error) {
	lower, upper := bounds(signed, width)

	switch mode {
	case Wrap:
		mask := uint64(1)<<width - 1
		sign := uint64(0)
		if signed {
			sign = uint64(1) << (width - 1)
		}

		return func(v int64) (int64, error) {
			u := uint64(v) & mask
			if u&sign != 0 {
				return int64(u | ^mask), nil
			}

			return int64(u), nil
		}, nil
	case Saturate:
		return func(v int64) (int64, error) {
			if v > upper {
				return upper, nil
			}
			if v < lower {
				return lower, nil
			}

			return v, nil
		}, nil
	case Checked:
		return func(v int64) (int64, error) {
			if v > upper || v < lower {
				return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOverflow, v, lower, upper)
			}

			return v, nil
		}, nil
	}

	return nil, ErrInvalidOverflow
}
