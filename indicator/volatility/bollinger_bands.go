package volatility

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// BBandsResult holds the three aligned Bollinger bands.
type BBandsResult struct {
	Upper  core.Series `json:"upper"`
	Middle core.Series `json:"middle"`
	Lower  core.Series `json:"lower"`
}

// BBands is reserved for Bollinger Bands. It fails with ErrNotImplemented and
// never returns a partial result.
func BBands(in []float64, o config.BBandsOptions) (BBandsResult, error) {
	return BBandsResult{}, core.NotImplemented(string(config.IndicatorBBands))
}
