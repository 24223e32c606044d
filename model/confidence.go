package model

import "fmt"

type Interval struct {
	Lower float64 `json:"l"`
	Upper float64 `json:"u"`
}

func (i Interval) Width() float64 {
	return i.Upper - i.Lower
}

func (i Interval) Contains(x float64) bool {
	return x >= i.Lower && x <= i.Upper
}

// ConfidenceResult is the interval of the population mean together with the
// values it was derived from. Interval == [Mean - Delta, Mean + Delta].
type ConfidenceResult struct {
	Interval         Interval     `json:"interval"`
	Delta            float64      `json:"delta"`
	Mean             float64      `json:"mean"`
	StdDev           float64      `json:"stddev"`
	Size             int          `json:"size"`
	DegreesOfFreedom int          `json:"dof,omitempty"` // zero for Normal
	CriticalPoint    float64      `json:"critical_point"`
	ConfidenceLevel  float64      `json:"confidence_level"`
	Distribution     Distribution `json:"distribution"`
}

type ConfidenceSet struct {
	Results map[string]*ConfidenceResult `json:"results,omitempty"`
}

func ConfidenceLevelKey(level float64) string {
	return fmt.Sprintf("%v", level)
}

func (c *ConfidenceSet) GetResult(level float64) (*ConfidenceResult, bool) {
	if c == nil || c.Results == nil {
		return nil, false
	}
	result, ok := c.Results[ConfidenceLevelKey(level)]
	return result, ok
}
