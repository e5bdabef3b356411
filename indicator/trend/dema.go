package trend

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// DEMALookback is the index of the first defined DEMA value.
func DEMALookback(period int) int { return 2 * (period - 1) }

// TEMALookback is the index of the first defined TEMA value.
func TEMALookback(period int) int { return 3 * (period - 1) }

// DEMA computes the double exponential moving average 2*e1 - e2, where e2 is
// the EMA of e1's defined values.
func DEMA(in []float64, p config.Params) (core.Series, error) {
	return run(maName(config.DEMA), in, p, DEMALookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		period := p.TimePeriod
		e1 := emaFrom(in, 0, period)
		e2 := emaFrom(e1, EMALookback(period), period)

		out := nanBuffer(len(in))
		for i := DEMALookback(period); i < len(in); i++ {
			out[i] = 2*e1[i] - e2[i]
		}
		return out
	})
}

// TEMA computes the triple exponential moving average 3*e1 - 3*e2 + e3.
func TEMA(in []float64, p config.Params) (core.Series, error) {
	return run(maName(config.TEMA), in, p, TEMALookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		period := p.TimePeriod
		e1 := emaFrom(in, 0, period)
		e2 := emaFrom(e1, EMALookback(period), period)
		e3 := emaFrom(e2, DEMALookback(period), period)

		out := nanBuffer(len(in))
		for i := TEMALookback(period); i < len(in); i++ {
			out[i] = 3*e1[i] - 3*e2[i] + e3[i]
		}
		return out
	})
}
