package momentum

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// MACDResult holds the three aligned MACD outputs.
type MACDResult struct {
	MACD      core.Series `json:"macd"`
	Signal    core.Series `json:"signal"`
	Histogram core.Series `json:"histogram"`
}

// MACD is part of the public surface but has no implementation yet. It fails
// fast with ErrNotImplemented and never returns a partial series.
func MACD(in []float64, o config.MACDOptions) (MACDResult, error) {
	return MACDResult{}, core.NotImplemented(string(config.IndicatorMACD))
}
