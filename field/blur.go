package field

import (
	"math"

	"artgen/parallel"
)

// blurGaussian applies a separable Gaussian of the given sigma in place,
// clamping samples at the field edges. Rows and columns are independent, so
// both passes fan out over the pool without affecting the result.
func (f *Field) blurGaussian(sigma float64, pool *parallel.Pool) {
	if sigma <= 0 {
		return
	}

	kernel := gaussKernel(sigma)
	radius := len(kernel) / 2
	tmp := make([]float64, len(f.data))

	pool.Bands(f.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			row := f.data[y*f.W : (y+1)*f.W]
			out := tmp[y*f.W : (y+1)*f.W]
			for x := range row {
				var sum float64
				for k, weight := range kernel {
					sx := x + k - radius
					if sx < 0 {
						sx = 0
					} else if sx >= f.W {
						sx = f.W - 1
					}
					sum += row[sx] * weight
				}
				out[x] = sum
			}
		}
	})

	pool.Bands(f.W, func(lo, hi int) {
		for x := lo; x < hi; x++ {
			for y := 0; y < f.H; y++ {
				var sum float64
				for k, weight := range kernel {
					sy := y + k - radius
					if sy < 0 {
						sy = 0
					} else if sy >= f.H {
						sy = f.H - 1
					}
					sum += tmp[sy*f.W+x] * weight
				}
				f.data[y*f.W+x] = sum
			}
		}
	})
}

// gaussKernel builds a normalized 1D kernel truncated at three sigma.
func gaussKernel(sigma float64) []float64 {
	radius := int(math.Ceil(3 * sigma))
	kernel := make([]float64, 2*radius+1)

	var total float64
	for i := range kernel {
		d := float64(i - radius)
		kernel[i] = math.Exp(-d * d / (2 * sigma * sigma))
		total += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= total
	}

	return kernel
}
