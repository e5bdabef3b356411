package trend

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// computeFunc fills a buffer the length of in, indexed by original position.
type computeFunc func(in []float64, p config.Params) []float64

// run is the shared pipeline of every moving average: validate, guard the
// length, compute, align.
func run(name string, in []float64, p config.Params, lookback int, fn computeFunc) (core.Series, error) {
	if err := p.Validate(config.Indicator(name)); err != nil {
		return nil, err
	}
	if err := core.RequireLength(name, len(in), lookback); err != nil {
		return nil, err
	}
	raw := fn(in, p)
	if len(raw) != len(in) {
		return nil, core.ComputationFailure(name, "raw output has length %d, want %d", len(raw), len(in))
	}
	return core.Align(name, raw, core.RegionFor(len(in), lookback))
}

func maName(t config.MAType) string {
	return string(config.IndicatorMA) + "(" + t.String() + ")"
}

// -----------------------------------------------------------------------------
// Dispatch table
// -----------------------------------------------------------------------------

type variant struct {
	lookback func(period int) int
	compute  func(in []float64, p config.Params) (core.Series, error)
}

// registry is written once by EnsureInitialized and only read afterwards.
var registry map[config.MAType]variant

func init() {
	core.RegisterInit(buildRegistry)
}

func buildRegistry() {
	registry = map[config.MAType]variant{
		config.SMA:   {SMALookback, SMA},
		config.EMA:   {EMALookback, EMA},
		config.WMA:   {WMALookback, WMA},
		config.DEMA:  {DEMALookback, DEMA},
		config.TEMA:  {TEMALookback, TEMA},
		config.TRIMA: {TRIMALookback, TRIMA},
		config.KAMA:  {KAMALookback, KAMA},
		config.T3:    {T3Lookback, T3},
		// MAMA needs Hilbert-transform cycle estimation and fast/slow limits
		// that the option surface does not carry, so it has no compute arm.
		config.MAMA: {},
	}
}

// Implemented reports whether MovingAverage can compute variant t.
func Implemented(t config.MAType) bool {
	core.EnsureInitialized()
	v, ok := registry[t]
	return ok && v.compute != nil
}

// Lookback returns the index of the first defined value of variant t, or -1
// when the variant is unknown or not implemented.
func Lookback(t config.MAType, period int) int {
	core.EnsureInitialized()
	v, ok := registry[t]
	if !ok || v.compute == nil {
		return -1
	}
	if period == 1 {
		return 0
	}
	return v.lookback(period)
}

// MovingAverage computes the variant selected by p.MAType. Every arm goes
// through the same validation and length guard and returns the same aligned
// shape; variants without an implementation fail with ErrNotImplemented
// instead of falling back to another average.
func MovingAverage(in []float64, p config.Params) (core.Series, error) {
	core.EnsureInitialized()
	if err := p.Validate(config.IndicatorMA); err != nil {
		return nil, err
	}
	v, ok := registry[p.MAType]
	if !ok {
		return nil, core.InvalidParameter(string(config.IndicatorMA), "unsupported maType %s", p.MAType)
	}
	if v.compute == nil {
		return nil, core.NotImplemented(maName(p.MAType))
	}

	// A period of one is the identity for every variant.
	if p.TimePeriod == 1 {
		if err := core.RequireLength(maName(p.MAType), len(in), 0); err != nil {
			return nil, err
		}
		return core.Align(maName(p.MAType), core.CopySlice(in), core.RegionFor(len(in), 0))
	}
	return v.compute(in, p)
}
