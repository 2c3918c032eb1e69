package dots

import "math"

// EaseInOutSine accelerates from 0 and decelerates into 1.
// Monotonic on [0, 1] with EaseInOutSine(0) == 0 and EaseInOutSine(1) == 1.
func EaseInOutSine(x float64) float64 {
	return -(math.Cos(math.Pi*x) - 1) / 2
}
