package trend

import (
	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

// T3Lookback is the index of the first defined T3 value: six chained EMAs.
func T3Lookback(period int) int { return 6 * (period - 1) }

// T3 computes Tillson's T3 average, a weighted blend of the third to sixth
// EMA in a chain of six, controlled by the volume factor p.VFactor.
func T3(in []float64, p config.Params) (core.Series, error) {
	return run(maName(config.T3), in, p, T3Lookback(p.TimePeriod), func(in []float64, p config.Params) []float64 {
		period := p.TimePeriod
		a := p.VFactor
		c1 := -a * a * a
		c2 := 3*a*a + 3*a*a*a
		c3 := -6*a*a - 3*a - 3*a*a*a
		c4 := 1 + 3*a + a*a*a + 3*a*a

		chain := make([][]float64, 6)
		src := in
		for n := range chain {
			chain[n] = emaFrom(src, n*(period-1), period)
			src = chain[n]
		}
		e3, e4, e5, e6 := chain[2], chain[3], chain[4], chain[5]

		out := nanBuffer(len(in))
		for i := T3Lookback(period); i < len(in); i++ {
			out[i] = c1*e6[i] + c2*e5[i] + c3*e4[i] + c4*e3[i]
		}
		return out
	})
}
