package indicator

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
	"github.com/evdnx/gotalib/indicator/momentum"
	"github.com/evdnx/gotalib/indicator/trend"
)

// Descriptor documents one entry of the indicator catalogue.
type Descriptor struct {
	Indicator   Indicator
	Group       string // trend, momentum, volatility or volume
	Inputs      int    // number of input series
	Outputs     int    // number of output series
	Implemented bool

	compute func(in []float64, p Params) (Series, error)
}

// catalogue is written once by EnsureInitialized and only read afterwards.
var catalogue map[Indicator]Descriptor

func init() {
	core.RegisterInit(buildCatalogue)
}

func buildCatalogue() {
	entries := []Descriptor{
		{Indicator: config.IndicatorSMA, Group: "trend", Inputs: 1, Outputs: 1, compute: trend.SMA},
		{Indicator: config.IndicatorEMA, Group: "trend", Inputs: 1, Outputs: 1, compute: trend.EMA},
		{Indicator: config.IndicatorMA, Group: "trend", Inputs: 1, Outputs: 1, compute: trend.MovingAverage},
		{Indicator: config.IndicatorRSI, Group: "momentum", Inputs: 1, Outputs: 1, compute: momentum.RSI},
		{Indicator: config.IndicatorMACD, Group: "momentum", Inputs: 1, Outputs: 3},
		{Indicator: config.IndicatorATR, Group: "volatility", Inputs: 3, Outputs: 1},
		{Indicator: config.IndicatorBBands, Group: "volatility", Inputs: 1, Outputs: 3},
		{Indicator: config.IndicatorAD, Group: "volume", Inputs: 4, Outputs: 1},
		{Indicator: config.IndicatorOBV, Group: "volume", Inputs: 2, Outputs: 1},
	}
	catalogue = make(map[Indicator]Descriptor, len(entries))
	for _, d := range entries {
		d.Implemented = d.compute != nil
		catalogue[d.Indicator] = d
	}
}

// Catalogue lists every indicator in catalogue order.
func Catalogue() []Descriptor {
	core.EnsureInitialized()
	out := make([]Descriptor, 0, len(config.Indicators))
	for _, ind := range config.Indicators {
		out = append(out, catalogue[ind])
	}
	return out
}

// Describe returns the catalogue entry of ind.
func Describe(ind Indicator) (Descriptor, bool) {
	core.EnsureInitialized()
	d, ok := catalogue[ind]
	return d, ok
}

// Compute runs a single-series, single-output indicator by identity. The
// indicators without an implementation fail with ErrNotImplemented whatever
// their input shape.
func Compute(ind Indicator, in []float64, p Params) (Series, error) {
	core.EnsureInitialized()
	d, ok := catalogue[ind]
	if !ok {
		return nil, core.InvalidParameter(string(ind), "unknown indicator")
	}
	if d.compute == nil {
		return nil, core.NotImplemented(string(ind))
	}
	return d.compute(in, p)
}
