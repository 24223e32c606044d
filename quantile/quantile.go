// Package quantile provides the inverse cumulative distribution functions
// used to look up critical points.
package quantile

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// Provider returns x such that CDF(x) == p.
type Provider interface {
	StudentsTInverseCDF(p float64, degreesOfFreedom float64) float64
	NormalInverseCDF(p float64, mean float64, scale float64) float64
}

type Gonum struct{}

func NewGonum() *Gonum {
	return &Gonum{}
}

// StudentsTInverseCDF uses the standard (location 0, scale 1) t distribution.
func (g *Gonum) StudentsTInverseCDF(p float64, degreesOfFreedom float64) float64 {
	dist := distuv.StudentsT{
		Mu:    0,
		Sigma: 1,
		Nu:    degreesOfFreedom,
	}
	return dist.Quantile(p)
}

func (g *Gonum) NormalInverseCDF(p float64, mean float64, scale float64) float64 {
	dist := distuv.Normal{
		Mu:    mean,
		Sigma: scale,
	}
	return dist.Quantile(p)
}
