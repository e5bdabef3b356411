package trend

import (
	"math"
	"math/rand"

	"github.com/evdnx/gotalib/config"
	"github.com/evdnx/gotalib/indicator/core"
)

func approxEqual(a, b float64) bool {
	const eps = 1e-9
	return math.Abs(a-b) <= eps
}

func params(period int, t config.MAType) config.Params {
	return config.Params{TimePeriod: period, MAType: t, VFactor: config.DefaultVFactor}
}

// randVals builds a deterministic series of n values in [0,100).
func randVals(n int) []float64 {
	r := rand.New(rand.NewSource(42))
	vals := make([]float64, n)
	for i := 0; i < n; i++ {
		vals[i] = r.Float64() * 100
	}
	return vals
}

func constant(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func undefinedPrefix(s core.Series, n int) bool {
	for i := 0; i < n; i++ {
		if s[i].Valid {
			return false
		}
	}
	return true
}
