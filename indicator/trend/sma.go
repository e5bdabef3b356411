package trend

import (
	"math"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// SMALookback is the index of the first defined SMA value.
func SMALookback(period int) int { return period - 1 }

// SMA computes the simple moving average: the arithmetic mean of the last
// p.TimePeriod samples at every index from p.TimePeriod-1 onwards.
func SMA(in []float64, p config.Params) (core.Series, error) {
	return run(string(config.IndicatorSMA), in, p, SMALookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		return smaFrom(in, 0, p.TimePeriod)
	})
}

// smaFrom runs the SMA over in[start:] and writes each result at its original
// index. Positions before start+period-1 hold NaN.
//
// The window sum is maintained incrementally (enter the new sample, drop the
// one leaving) so the whole pass is linear in the input length.
func smaFrom(in []float64, start, period int) []float64 {
	out := nanBuffer(len(in))
	var sum core.RunningSum
	for i := start; i < len(in); i++ {
		sum.Add(in[i])
		if i-start >= period {
			sum.Remove(in[i-period])
		}
		if i-start >= period-1 {
			out[i] = sum.Mean(period)
		}
	}
	return out
}

func nanBuffer(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
