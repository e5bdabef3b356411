package volume

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// OBV is reserved for Granville's On Balance Volume. It fails with
// ErrNotImplemented.
func OBV(close, vol []float64) (core.Series, error) {
	return nil, core.NotImplemented(string(config.IndicatorOBV))
}
