// Package confidence computes the confidence interval of a population mean
// from a one dimensional sample.
//
// The critical point comes from either a Student's t distribution with
// size-1 degrees of freedom, for small samples or unknown variance, or from
// the standard normal distribution, for big samples where the sample
// variance stands in for the population variance. The half width is
//
//	delta = critical_point * stddev / sqrt(size)
//
// where stddev is the unbiased (n-1) sample standard deviation.
package confidence

import (
	"context"
	"math"

	"github.com/uyouii/confidence-interval/common"
	"github.com/uyouii/confidence-interval/model"
	"github.com/uyouii/confidence-interval/quantile"
	"github.com/uyouii/confidence-interval/utils"
	"go.uber.org/zap"
)

// Estimator holds no mutable state and is safe for concurrent use.
type Estimator struct {
	quantiles quantile.Provider
}

var defaultEstimator = NewEstimator(nil)

// NewEstimator uses the gonum quantile functions when quantiles is nil.
func NewEstimator(quantiles quantile.Provider) *Estimator {
	if quantiles == nil {
		quantiles = quantile.NewGonum()
	}
	return &Estimator{
		quantiles: quantiles,
	}
}

// ComputeConfidenceInterval estimates with the default estimator.
func ComputeConfidenceInterval(ctx context.Context, sample []float64,
	opts Options) (*model.ConfidenceResult, error) {
	return defaultEstimator.Estimate(ctx, sample, opts)
}

func (e *Estimator) Estimate(ctx context.Context, values []float64,
	opts Options) (*model.ConfidenceResult, error) {
	logger := utils.GetLogger(ctx)

	if err := opts.Validate(); err != nil {
		logger.Error("invalid confidence options", zap.Error(err))
		return nil, err
	}

	sample := model.Sample(values)
	if err := checkSample(sample, opts.Distribution); err != nil {
		logger.Error("invalid sample", zap.Error(err), zap.Int("size", sample.Size()))
		return nil, err
	}

	// probability that the population mean falls outside the interval
	alpha := 1 - opts.ConfidenceLevel

	criticalPoint, dof, err := e.criticalPoint(1-alpha/2, sample.Size(), opts.Distribution)
	if err != nil {
		logger.Error("critical point failed", zap.Error(err),
			zap.Float64("confidenceLevel", opts.ConfidenceLevel))
		return nil, err
	}

	mean, stdDev := sample.Mean(), sample.StdDev()
	delta := criticalPoint * stdDev / math.Sqrt(float64(sample.Size()))
	if !isFinite(mean) || !isFinite(delta) {
		err := common.NewInvalidArgument("sample", nil, "magnitude is out of range, mean or standard deviation overflows")
		logger.Error("mean or delta is not finite", zap.Error(err),
			zap.Float64("mean", mean), zap.Float64("stdDev", stdDev))
		return nil, err
	}

	result := &model.ConfidenceResult{
		Interval: model.Interval{
			Lower: mean - delta,
			Upper: mean + delta,
		},
		Delta:            delta,
		Mean:             mean,
		StdDev:           stdDev,
		Size:             sample.Size(),
		DegreesOfFreedom: dof,
		CriticalPoint:    criticalPoint,
		ConfidenceLevel:  opts.ConfidenceLevel,
		Distribution:     opts.Distribution,
	}

	logger.Debug("confidence interval", zap.Stringer("distribution", opts.Distribution),
		zap.Float64("criticalPoint", criticalPoint), zap.Float64("delta", delta),
		zap.Float64("lower", result.Interval.Lower), zap.Float64("upper", result.Interval.Upper))

	return result, nil
}

// criticalPoint is two sided: p is 1 - alpha/2.
// dof is zero for the normal distribution.
func (e *Estimator) criticalPoint(p float64, size int,
	distribution model.Distribution) (float64, int, error) {
	var (
		criticalPoint float64
		dof           int
	)

	switch distribution {
	case model.StudentsT:
		dof = size - 1
		criticalPoint = e.quantiles.StudentsTInverseCDF(p, float64(dof))
	case model.Normal:
		criticalPoint = e.quantiles.NormalInverseCDF(p, 0, 1)
	default:
		return 0, 0, common.NewInvalidArgument("distribution", int(distribution),
			"unknown distribution", model.AllDistributionNames()...)
	}

	// p rounds to 1 for confidence levels within machine epsilon of 1
	if !isFinite(criticalPoint) {
		return 0, 0, common.NewInvalidArgument("confidence_level", 1-2*(1-p),
			"critical point is not finite")
	}
	return criticalPoint, dof, nil
}

func checkSample(sample model.Sample, distribution model.Distribution) error {
	if sample.IsEmpty() {
		return common.NewInvalidArgument("sample", nil, "must not be empty")
	}
	if sample.Size() < 2 {
		if distribution == model.StudentsT {
			return common.NewInvalidArgument("sample size", sample.Size(),
				"StudentsT needs at least 2 values, degrees of freedom would be 0")
		}
		return common.NewInvalidArgument("sample size", sample.Size(),
			"sample standard deviation needs at least 2 values")
	}
	if !sample.IsFinite() {
		return common.NewInvalidArgument("sample", nil, "contains NaN or infinite values")
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
