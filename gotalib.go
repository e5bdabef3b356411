// Package gotalib computes technical-analysis indicators over whole price
// series in one call. Every implemented indicator returns a series of the
// same length as its input whose warm-up prefix is explicitly undefined.
package gotalib

import (
	"golang.org/x/exp/constraints"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator"
	"github.com/evdnx/gotalib/indicator/core"
)

// Number is any integer or floating-point sample type.
type Number interface {
	constraints.Integer | constraints.Float
}

// ---- Shared types ----
type (
	Value         = core.Value
	Series        = core.Series
	Options       = config.Options
	Indicator     = config.Indicator
	MAType        = config.MAType
	MACDOptions   = config.MACDOptions
	BBandsOptions = config.BBandsOptions
	MACDResult    = indicator.MACDResult
	BBandsResult  = indicator.BBandsResult
)

var Undefined = core.Undefined

const (
	MATypeSMA   = config.SMA
	MATypeEMA   = config.EMA
	MATypeWMA   = config.WMA
	MATypeDEMA  = config.DEMA
	MATypeTEMA  = config.TEMA
	MATypeTRIMA = config.TRIMA
	MATypeKAMA  = config.KAMA
	MATypeMAMA  = config.MAMA
	MATypeT3    = config.T3
)

const (
	IndicatorSMA    = config.IndicatorSMA
	IndicatorEMA    = config.IndicatorEMA
	IndicatorMA     = config.IndicatorMA
	IndicatorRSI    = config.IndicatorRSI
	IndicatorMACD   = config.IndicatorMACD
	IndicatorATR    = config.IndicatorATR
	IndicatorBBands = config.IndicatorBBands
	IndicatorAD     = config.IndicatorAD
	IndicatorOBV    = config.IndicatorOBV
)

var (
	ErrInvalidParameter   = core.ErrInvalidParameter
	ErrInsufficientData   = core.ErrInsufficientData
	ErrNotImplemented     = core.ErrNotImplemented
	ErrComputationFailure = core.ErrComputationFailure
)

// Init runs the one-time setup eagerly. Calling it is optional; every compute
// function does the same lazily, and repeated calls are no-ops.
func Init() {
	core.EnsureInitialized()
}

// ---- Implemented indicators ----

// SMA computes the simple moving average (default period 30).
func SMA[T Number](series []T, o Options) (Series, error) {
	return Compute(IndicatorSMA, floats(series), o)
}

// EMA computes the exponential moving average seeded with the SMA of the
// first window (default period 30).
func EMA[T Number](series []T, o Options) (Series, error) {
	return Compute(IndicatorEMA, floats(series), o)
}

// MA computes the moving average selected by o.MAType (default SMA, period
// 30). Variants without an implementation fail with ErrNotImplemented.
func MA[T Number](series []T, o Options) (Series, error) {
	return Compute(IndicatorMA, floats(series), o)
}

// RSI computes Wilder's Relative Strength Index (default period 14). It needs
// at least period+1 samples.
func RSI[T Number](series []T, o Options) (Series, error) {
	return Compute(IndicatorRSI, floats(series), o)
}

// Compute runs a single-series indicator by identity. The options are
// validated before the series length is checked.
func Compute(ind Indicator, series []float64, o Options) (Series, error) {
	core.EnsureInitialized()
	l := logger().WithField("indicator", ind)

	d, ok := indicator.Describe(ind)
	if !ok {
		return nil, core.InvalidParameter(string(ind), "unknown indicator")
	}
	if !d.Implemented {
		l.Debug("indicator has no implementation")
		return nil, core.NotImplemented(string(ind))
	}

	p, err := config.Resolve(ind, o)
	if err != nil {
		l.WithError(err).Debug("rejected options")
		return nil, err
	}
	out, err := indicator.Compute(ind, series, p)
	if err != nil {
		l.WithError(err).Debug("computation failed")
		return nil, err
	}
	l.WithField("period", p.TimePeriod).
		WithField("samples", len(series)).
		WithField("begin", out.FirstDefined()).
		Debug("computed")
	return out, nil
}

// ---- Not yet implemented ----

// MACD fails with ErrNotImplemented.
func MACD[T Number](series []T, o MACDOptions) (MACDResult, error) {
	return indicator.MACD(floats(series), o)
}

// ATR fails with ErrNotImplemented.
func ATR[T Number](high, low, close []T, o Options) (Series, error) {
	return indicator.ATR(floats(high), floats(low), floats(close), o)
}

// BBANDS fails with ErrNotImplemented.
func BBANDS[T Number](series []T, o BBandsOptions) (BBandsResult, error) {
	return indicator.BBands(floats(series), o)
}

// AD fails with ErrNotImplemented.
func AD[T Number](high, low, close, volume []T) (Series, error) {
	return indicator.AD(floats(high), floats(low), floats(close), floats(volume))
}

// OBV fails with ErrNotImplemented.
func OBV[T Number](close, volume []T) (Series, error) {
	return indicator.OBV(floats(close), floats(volume))
}

// floats converts the samples to float64. A []float64 is passed through
// unchanged; the algorithms never write to their input.
func floats[T Number](series []T) []float64 {
	if f, ok := any(series).([]float64); ok {
		return f
	}
	if series == nil {
		return nil
	}
	out := make([]float64, len(series))
	for i, v := range series {
		out[i] = float64(v)
	}
	return out
}
