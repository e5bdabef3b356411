package trend

import (
	"math"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// WMALookback is the index of the first defined WMA value.
func WMALookback(period int) int { return period - 1 }

// WMA computes the linearly weighted moving average. Inside each window the
// oldest sample has weight 1 and the newest weight p.TimePeriod.
func WMA(in []float64, p config.Params) (core.Series, error) {
	return run(maName(config.WMA), in, p, WMALookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		return wma(in, p.TimePeriod)
	})
}

// wma keeps a weighted sum and a plain sum of the window. Sliding by one
// lowers every weight by one, which is the same as subtracting the plain sum,
// and the entering sample joins with the top weight.
func wma(in []float64, period int) []float64 {
	out := nanBuffer(len(in))
	divider := float64(period) * float64(period+1) / 2

	var weighted, plain float64
	missing := 0
	for i, v := range in {
		x := v
		if !core.IsFinite(v) {
			missing++
			x = 0
		}

		if i < period {
			weighted += float64(i+1) * x
			plain += x
		} else {
			leaving := in[i-period]
			if !core.IsFinite(leaving) {
				missing--
				leaving = 0
			}
			weighted += float64(period)*x - plain
			plain += x - leaving
		}

		if i >= period-1 {
			if missing > 0 {
				out[i] = math.NaN()
			} else {
				out[i] = weighted / divider
			}
		}
	}
	return out
}
