package utils

import "math"

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsIntegral checks if a floating-point value carries no fractional part.
// NaN and infinities are not integral.
func IsIntegral[T ~float32 | ~float64](value T) bool {
	f := float64(value)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}

	return math.Trunc(f) == f
}
