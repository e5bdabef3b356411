package volume

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// AD is reserved for Chaikin's Accumulation/Distribution line. It fails with
// ErrNotImplemented.
func AD(high, low, close, vol []float64) (core.Series, error) {
	return nil, core.NotImplemented(string(config.IndicatorAD))
}
