package confidence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/uyouii/confidence-interval/common"
	"github.com/uyouii/confidence-interval/model"
	"github.com/uyouii/confidence-interval/utils"
)

type panicProvider struct{}

func (panicProvider) StudentsTInverseCDF(p float64, dof float64) float64 {
	panic("quantile table missing")
}

func (panicProvider) NormalInverseCDF(p float64, mean float64, scale float64) float64 {
	panic("quantile table missing")
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	core, logs := observer.New(zap.DebugLevel)
	restore := utils.SetLogger(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestEstimateLevelsDefault(t *testing.T) {
	set, err := NewEstimator(nil).EstimateLevels(context.Background(), exampleSample, nil, model.StudentsT)
	require.NoError(t, err)
	assert.Len(t, set.Results, len(AllConfidenceLevels))

	res, ok := set.GetResult(0.95)
	require.True(t, ok)
	assert.Equal(t, 5.0, res.Mean)
	assert.Equal(t, 1.78749, res.Delta)
	assert.Equal(t, 2.36462, res.CriticalPoint)
	assert.Equal(t, res.Mean-res.Delta, res.Interval.Lower)
	assert.Equal(t, res.Mean+res.Delta, res.Interval.Upper)
	assert.InDelta(t, 3.21251, res.Interval.Lower, 1e-12)
	assert.InDelta(t, 6.78749, res.Interval.Upper, 1e-12)

	narrow, ok := set.GetResult(0.8)
	require.True(t, ok)
	wide, ok := set.GetResult(0.999)
	require.True(t, ok)
	assert.Less(t, narrow.Delta, res.Delta)
	assert.Greater(t, wide.Delta, res.Delta)
}

func TestEstimateLevelsSkipsInvalid(t *testing.T) {
	logs := observeLogs(t)

	set, err := NewEstimator(nil).EstimateLevels(context.Background(), exampleSample,
		[]float64{0.9, 1.5, 0}, model.Normal)
	require.NoError(t, err)
	assert.Len(t, set.Results, 1)

	res, ok := set.GetResult(0.9)
	require.True(t, ok)
	assert.Equal(t, model.Normal, res.Distribution)
	failed := logs.FilterMessage("estimate failed").All()
	assert.Len(t, failed, 2)
	for _, entry := range failed {
		assert.Equal(t, zapcore.DebugLevel, entry.Level)
	}
}

func TestEstimateLevelsSmallScale(t *testing.T) {
	ctx := context.Background()
	values := []float64{1e-9, 2e-9, 3e-9}
	e := NewEstimator(nil)

	set, err := e.EstimateLevels(ctx, values, []float64{0.95}, model.StudentsT)
	require.NoError(t, err)
	res, ok := set.GetResult(0.95)
	require.True(t, ok)

	exact, err := e.Estimate(ctx, values, DefaultOptions())
	require.NoError(t, err)

	assert.Greater(t, res.Delta, 0.0)
	assert.InEpsilon(t, exact.Delta, res.Delta, 1e-5)
	assert.InEpsilon(t, exact.Mean, res.Mean, 1e-5)
	assert.InEpsilon(t, exact.Interval.Lower, res.Interval.Lower, 1e-4)
	assert.InEpsilon(t, exact.Interval.Upper, res.Interval.Upper, 1e-5)
	assert.Equal(t, res.Mean-res.Delta, res.Interval.Lower)
	assert.Equal(t, res.Mean+res.Delta, res.Interval.Upper)
}

func TestEstimateLevelsAllInvalid(t *testing.T) {
	set, err := NewEstimator(nil).EstimateLevels(context.Background(), exampleSample,
		[]float64{1.5, -1}, model.StudentsT)
	assert.Nil(t, set)
	assert.True(t, errors.Is(err, common.ErrorInvalidArgument))

	_, err = NewEstimator(nil).EstimateLevels(context.Background(), []float64{1}, nil, model.StudentsT)
	assert.True(t, errors.Is(err, common.ErrorInvalidArgument))
}

func TestEstimateLevelsRecoversPanic(t *testing.T) {
	logs := observeLogs(t)

	set, err := NewEstimator(panicProvider{}).EstimateLevels(context.Background(), exampleSample,
		[]float64{0.95}, model.StudentsT)
	assert.Nil(t, set)
	assert.True(t, errors.Is(err, common.ErrorInvalidValue))
	assert.Contains(t, err.Error(), "quantile table missing")
	assert.Equal(t, 1, logs.FilterMessage("EstimateLevels recover panic error!").Len())
}

func TestEstimateTimeSeries(t *testing.T) {
	e := NewEstimator(nil)
	ctx := context.Background()

	_, err := e.EstimateTimeSeries(ctx, nil, DefaultOptions())
	assert.True(t, errors.Is(err, common.ErrorInvalidArgument))
	_, err = e.EstimateTimeSeries(ctx, &model.TimeSeries{}, DefaultOptions())
	assert.True(t, errors.Is(err, common.ErrorInvalidArgument))

	start := time.Unix(1700000000, 0)
	ts := &model.TimeSeries{Labels: map[string]string{"instance": "localhost:9091"}}
	for i, v := range exampleSample {
		ts.Values = append(ts.Values, model.TimeValue{Time: start.Add(time.Duration(i) * time.Minute), Value: v})
	}

	res, err := e.EstimateTimeSeries(ctx, ts, DefaultOptions())
	require.NoError(t, err)
	want, err := e.Estimate(ctx, exampleSample, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, want, res)
}
