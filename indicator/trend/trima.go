package trend

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// TRIMALookback is the index of the first defined TRIMA value.
func TRIMALookback(period int) int { return period - 1 }

// trimaPeriods splits the window into the two SMA passes. For an odd period
// both passes use (p+1)/2; for an even period the passes use p/2 and p/2+1,
// giving the weights 1,2,..,p/2,p/2,..,2,1.
func trimaPeriods(period int) (int, int) {
	if period%2 == 1 {
		half := (period + 1) / 2
		return half, half
	}
	return period / 2, period/2 + 1
}

// TRIMA computes the triangular moving average as an SMA of an SMA.
func TRIMA(in []float64, p config.Params) (core.Series, error) {
	return run(maName(config.TRIMA), in, p, TRIMALookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		first, second := trimaPeriods(p.TimePeriod)
		inner := smaFrom(in, 0, first)
		return smaFrom(inner, first-1, second)
	})
}
