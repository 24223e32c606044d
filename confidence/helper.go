package confidence

import (
	"context"
	"fmt"

	"github.com/uyouii/confidence-interval/common"
	"github.com/uyouii/confidence-interval/model"
	"github.com/uyouii/confidence-interval/utils"
	"go.uber.org/zap"
)

// EstimateLevels calculates the interval for every level,
// AllConfidenceLevels is used when levels is empty.
// Levels that fail are logged and skipped, the error of the last failure is
// returned only when no level succeeds.
func (e *Estimator) EstimateLevels(ctx context.Context, values []float64, levels []float64,
	distribution model.Distribution) (set *model.ConfidenceSet, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("EstimateLevels recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()), zap.Float64s("values", values))
			set, err = nil, fmt.Errorf("estimate levels panic %v: %w", r, common.ErrorInvalidValue)
		}
	}()

	if len(levels) == 0 {
		levels = AllConfidenceLevels
	}

	results := map[string]*model.ConfidenceResult{}
	var lastErr error

	for _, level := range levels {
		opts := Options{
			ConfidenceLevel: level,
			Distribution:    distribution,
		}
		result, err := e.Estimate(ctx, values, opts)
		if err != nil {
			logger.Debug("estimate failed", zap.Error(err), zap.Float64("level", level))
			lastErr = err
			continue
		}
		results[model.ConfidenceLevelKey(level)] = roundResult(result)
	}

	if len(results) == 0 {
		return nil, lastErr
	}

	return &model.ConfidenceSet{
		Results: results,
	}, nil
}

func (e *Estimator) EstimateTimeSeries(ctx context.Context, timeSeries *model.TimeSeries,
	opts Options) (*model.ConfidenceResult, error) {
	logger := utils.GetLogger(ctx)

	if timeSeries.IsEmpty() {
		logger.Error("time series is empty, skip calculate")
		return nil, common.NewInvalidArgument("time series", nil, "has no values")
	}

	logger.Info("estimate time series", zap.String("series", timeSeries.DebugString()))
	return e.Estimate(ctx, timeSeries.Sample(), opts)
}

// roundResult keeps Interval == [Mean - Delta, Mean + Delta] after rounding.
func roundResult(result *model.ConfidenceResult) *model.ConfidenceResult {
	result.Mean = utils.FormatFloat(result.Mean, ReportSignificantDigits)
	result.Delta = utils.FormatFloat(result.Delta, ReportSignificantDigits)
	result.StdDev = utils.FormatFloat(result.StdDev, ReportSignificantDigits)
	result.CriticalPoint = utils.FormatFloat(result.CriticalPoint, ReportSignificantDigits)
	result.Interval = model.Interval{
		Lower: result.Mean - result.Delta,
		Upper: result.Mean + result.Delta,
	}
	return result
}
