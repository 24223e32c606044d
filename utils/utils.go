package utils

import "math"

// FormatFloat rounds f to the given number of significant digits.
func FormatFloat(f float64, round int32) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	exp := math.Floor(math.Log10(math.Abs(f)))
	scale := math.Pow(10, float64(round)-1-exp)
	if scale == 0 || math.IsInf(scale, 0) {
		return f
	}
	return math.Round(f*scale) / scale
}
