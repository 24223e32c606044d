package model

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is an ordered one dimensional set of observations.
type Sample []float64

func (s Sample) Size() int {
	return len(s)
}

func (s Sample) IsEmpty() bool {
	return len(s) == 0
}

func (s Sample) Mean() float64 {
	if s.isConstant() {
		return s[0]
	}
	return stat.Mean(s, nil)
}

// StdDev is the unbiased sample standard deviation, the sum of squared
// deviations is divided by n-1. It is NaN for fewer than two values.
func (s Sample) StdDev() float64 {
	if s.Size() >= 2 && s.isConstant() {
		return 0
	}
	return stat.StdDev(s, nil)
}

// isConstant skips the sums for equal values, they overflow near math.MaxFloat64.
func (s Sample) isConstant() bool {
	return !s.IsEmpty() && floats.Min(s) == floats.Max(s)
}

// IsFinite reports whether no value is NaN or infinite.
func (s Sample) IsFinite() bool {
	if s.IsEmpty() {
		return true
	}
	if floats.HasNaN(s) {
		return false
	}
	return !math.IsInf(floats.Min(s), 0) && !math.IsInf(floats.Max(s), 0)
}
