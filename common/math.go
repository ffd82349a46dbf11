package common

import (
	"math"
)

// Float32ToByte converts a colour channel in [0, 1] to an 8-bit value by truncating
// channel*255 toward zero. Out-of-range input is not clamped: the integer conversion
// wraps modulo 256 instead of saturating, so 1.2 becomes 50 and -0.1 becomes 231.
//
// Parameters:
//   - channel: the floating point channel value
//
// Returns:
//   - uint8: the truncated (and possibly wrapped) byte value
func Float32ToByte(channel float32) uint8 {
	v := channel * 255.0
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return 0
	}
	return uint8(int64(v))
}
