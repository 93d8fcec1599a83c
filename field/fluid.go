package field

import (
	"math"

	"artgen/parallel"
	"artgen/rng"
)

const (
	turbulenceScale  = 50
	turbulenceWeight = 0.3
)

// Fluid builds a stylized wave-interference field: three sinusoid products
// over coordinate ramps spanning [0, 4pi) across width and height, combined
// with weights 1, 0.5 and 0.3, plus a noise field as turbulence. This is an
// interference pattern, not a fluid solver. The result is unnormalized.
func Fluid(w, h int, src *rng.Source, pool *parallel.Pool) *Field {
	out := New(w, h)

	xs := make([]float64, out.W)
	for j := range xs {
		xs[j] = 4 * math.Pi * float64(j) / float64(out.W)
	}

	pool.Bands(out.H, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			y := 4 * math.Pi * float64(i) / float64(out.H)
			row := out.data[i*out.W : (i+1)*out.W]
			for j, x := range xs {
				wave1 := math.Sin(x) * math.Cos(y)
				wave2 := math.Sin(2*x+math.Pi/3) * math.Cos(1.5*y)
				wave3 := math.Sin(0.5*x) * math.Cos(3*y+math.Pi/2)
				row[j] = wave1 + 0.5*wave2 + 0.3*wave3
			}
		}
	})

	turbulence := Noise(out.W, out.H, turbulenceScale, 6, 0.5, src, pool)
	for i, v := range turbulence.Values() {
		out.data[i] += turbulenceWeight * v
	}

	return out
}
