package trend

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// EMASmoothingFactor returns k = 2 / (period + 1).
func EMASmoothingFactor(period int) float64 {
	return 2.0 / float64(period+1)
}

// EMALookback is the index of the first defined EMA value.
func EMALookback(period int) int { return period - 1 }

// EMA computes the exponential moving average. The recurrence is seeded at
// index p.TimePeriod-1 with the SMA of the first window, then
// ema[i] = in[i]*k + ema[i-1]*(1-k).
func EMA(in []float64, p config.Params) (core.Series, error) {
	return run(string(config.IndicatorEMA), in, p, EMALookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		return emaFrom(in, 0, p.TimePeriod)
	})
}

// emaFrom runs the EMA over in[start:], writing results at their original
// indices. The seed sits at start+period-1 and equals the SMA of
// in[start:start+period] bit for bit.
func emaFrom(in []float64, start, period int) []float64 {
	out := nanBuffer(len(in))
	seed := start + period - 1
	if seed >= len(in) {
		return out
	}

	prev := core.SeedMean(in[start:], period)
	out[seed] = prev

	k := EMASmoothingFactor(period)
	for i := seed + 1; i < len(in); i++ {
		prev = in[i]*k + prev*(1-k)
		out[i] = prev
	}
	return out
}
