package momentum

import (
	"math"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// RSILookback is the index of the first defined RSI value. The first value
// needs p price changes, which takes p+1 samples, so RSI starts one index
// later than SMA or EMA of the same period.
func RSILookback(period int) int { return period }

// RSI computes J. Wilder's Relative Strength Index.
//   - Changes delta[i] = in[i] - in[i-1] are split into gains and losses.
//   - The averages are seeded at index p with the simple mean of the gains and
//     losses of deltas 1..p.
//   - Afterwards each average is smoothed with the single most recent value:
//     avg[i] = (avg[i-1]*(p-1) + x[i]) / p.
//   - RSI = 100 - 100/(1 + avgGain/avgLoss), and 100 whenever avgLoss is zero.
func RSI(in []float64, p config.Params) (core.Series, error) {
	name := string(config.IndicatorRSI)
	if err := p.Validate(config.IndicatorRSI); err != nil {
		return nil, err
	}
	lookback := RSILookback(p.TimePeriod)
	if err := core.RequireLength(name, len(in), lookback); err != nil {
		return nil, err
	}
	return core.Align(name, rsi(in, p.TimePeriod), core.RegionFor(len(in), lookback))
}

func rsi(in []float64, period int) []float64 {
	out := make([]float64, len(in))
	for i := 0; i < period; i++ {
		out[i] = math.NaN()
	}

	n := float64(period)
	gainSum, lossSum := 0.0, 0.0
	for i := 1; i <= period; i++ {
		gain, loss := splitChange(in[i] - in[i-1])
		gainSum += gain
		lossSum += loss
	}
	avgGain := gainSum / n
	avgLoss := lossSum / n
	out[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < len(in); i++ {
		gain, loss := splitChange(in[i] - in[i-1])
		avgGain = (avgGain*(n-1) + gain) / n
		avgLoss = (avgLoss*(n-1) + loss) / n
		out[i] = rsiValue(avgGain, avgLoss)
	}
	return out
}

// splitChange returns max(delta, 0) and max(-delta, 0). A NaN change stays NaN
// on both sides so it poisons the averages instead of reading as "no move".
func splitChange(delta float64) (gain, loss float64) {
	switch {
	case delta > 0:
		return delta, 0
	case delta < 0:
		return 0, -delta
	case math.IsNaN(delta):
		return delta, delta
	default:
		return 0, 0
	}
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100
	}
	return 100 - 100/(1+avgGain/avgLoss)
}
