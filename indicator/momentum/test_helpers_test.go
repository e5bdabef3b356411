package momentum

import "math/rand"

func randWalk(n int) []float64 {
	r := rand.New(rand.NewSource(7))
	out := make([]float64, n)
	price := 100.0
	for i := range out {
		price += r.Float64() - 0.5
		out[i] = price
	}
	return out
}
