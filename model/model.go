package model

import (
	"fmt"
	"time"
)

type TimeValue struct {
	Time  time.Time
	Value float64
}

type TimeSeries struct {
	// Labels contains label key -> label value, like "instance": "localhost:9091"
	Labels map[string]string
	Values []TimeValue
}

func (s *TimeSeries) DebugString() string {
	res := fmt.Sprintf("labels: %+v, valueCount: %+v", s.Labels, len(s.Values))
	return res
}

func (s *TimeSeries) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.Values) == 0
}

// Sample drops the timestamps, keeping the order of the series.
func (s *TimeSeries) Sample() Sample {
	if s.IsEmpty() {
		return Sample{}
	}
	res := make(Sample, 0, len(s.Values))
	for _, timeValue := range s.Values {
		res = append(res, timeValue.Value)
	}
	return res
}
