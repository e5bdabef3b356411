package volatility

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// ATR is reserved for J. Wilder's Average True Range over high/low/close
// bars. It has no implementation yet and fails with ErrNotImplemented before
// looking at the inputs.
func ATR(high, low, close []float64, o config.Options) (core.Series, error) {
	return nil, core.NotImplemented(string(config.IndicatorATR))
}
