package indicator

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
	"github.com/evdnx/gotalib/indicator/momentum"
	"github.com/evdnx/gotalib/indicator/trend"
	"github.com/evdnx/gotalib/indicator/volatility"
	"github.com/evdnx/gotalib/indicator/volume"
)

// ---- Shared data types ----
type (
	Value       = core.Value
	Series      = core.Series
	ValidRegion = core.ValidRegion
	Column      = core.Column
)

var Undefined = core.Undefined

var (
	ErrInvalidParameter   = core.ErrInvalidParameter
	ErrInsufficientData   = core.ErrInsufficientData
	ErrNotImplemented     = core.ErrNotImplemented
	ErrComputationFailure = core.ErrComputationFailure
)

func KindOf(err error) string { return core.KindOf(err) }

func FormatColumnsJSON(cols []Column) (string, error) {
	return core.FormatColumnsJSON(cols)
}

func FormatColumnsCSV(cols []Column, format core.ValueFormatter) (string, error) {
	return core.FormatColumnsCSV(cols, format)
}

// ---- Trend indicators ----
func SMA(in []float64, p Params) (Series, error) { return trend.SMA(in, p) }
func EMA(in []float64, p Params) (Series, error) { return trend.EMA(in, p) }

// MovingAverage dispatches on p.MAType.
func MovingAverage(in []float64, p Params) (Series, error) {
	return trend.MovingAverage(in, p)
}

// ---- Momentum indicators ----
type MACDResult = momentum.MACDResult

func RSI(in []float64, p Params) (Series, error) { return momentum.RSI(in, p) }

func MACD(in []float64, o MACDOptions) (MACDResult, error) { return momentum.MACD(in, o) }

// ---- Volatility indicators ----
type BBandsResult = volatility.BBandsResult

func ATR(high, low, close []float64, o Options) (Series, error) {
	return volatility.ATR(high, low, close, o)
}

func BBands(in []float64, o BBandsOptions) (BBandsResult, error) { return volatility.BBands(in, o) }

// ---- Volume indicators ----
func AD(high, low, close, vol []float64) (Series, error) { return volume.AD(high, low, close, vol) }
func OBV(close, vol []float64) (Series, error)           { return volume.OBV(close, vol) }

// Lookback returns the index of the first defined value ind produces with p,
// or -1 when ind has no implementation.
func Lookback(ind Indicator, p Params) int {
	switch ind {
	case config.IndicatorSMA:
		return trend.SMALookback(p.TimePeriod)
	case config.IndicatorEMA:
		return trend.EMALookback(p.TimePeriod)
	case config.IndicatorMA:
		return trend.Lookback(p.MAType, p.TimePeriod)
	case config.IndicatorRSI:
		return momentum.RSILookback(p.TimePeriod)
	default:
		return -1
	}
}
