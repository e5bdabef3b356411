package trend

import (
	"math"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// Smoothing constants of Kaufman's adaptive average: an EMA(2) when the
// market trends cleanly and an EMA(30) when it is pure noise.
const (
	kamaFastSC = 2.0 / (2 + 1)
	kamaSlowSC = 2.0 / (30 + 1)
)

// KAMALookback is the index of the first defined KAMA value. The efficiency
// ratio needs p price changes, so one more sample than the SMA.
func KAMALookback(period int) int { return period }

// KAMA computes Kaufman's adaptive moving average. The efficiency ratio
// |in[i]-in[i-p]| / sum(|in[j]-in[j-1]|) scales the smoothing constant between
// the fast and slow bounds; the recurrence is seeded with in[p-1].
func KAMA(in []float64, p config.Params) (core.Series, error) {
	return run(maName(config.KAMA), in, p, KAMALookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		return kama(in, p.TimePeriod)
	})
}

func kama(in []float64, period int) []float64 {
	out := nanBuffer(len(in))

	var volatility core.RunningSum
	for j := 1; j <= period; j++ {
		volatility.Add(math.Abs(in[j] - in[j-1]))
	}

	prev := in[period-1]
	for i := period; i < len(in); i++ {
		if i > period {
			volatility.Add(math.Abs(in[i] - in[i-1]))
			volatility.Remove(math.Abs(in[i-period] - in[i-period-1]))
		}

		change := math.Abs(in[i] - in[i-period])
		noise := volatility.Sum()
		er := 1.0
		if noise > change && noise != 0 {
			er = change / noise
		} else if math.IsNaN(noise) || math.IsNaN(change) {
			er = math.NaN()
		}

		sc := er*(kamaFastSC-kamaSlowSC) + kamaSlowSC
		sc *= sc
		prev += sc * (in[i] - prev)
		out[i] = prev
	}
	return out
}
