package field

import (
	"artgen/parallel"
	"artgen/rng"
)

// Noise accumulates octave layers of blurred uniform randomness. Each octave
// doubles the frequency and scales the amplitude by persistence; blurring a
// white-noise layer with sigma scale/frequency/4 turns it coherent, so low
// octaves carry broad features and high octaves fine grain. The sum is
// divided by the total amplitude, leaving values roughly in [0, 1] but not
// exactly bounded; callers normalize before mapping to color.
//
// Random draws happen per pixel in row-major order, octave by octave, on the
// single source, before any parallel blur work starts.
func Noise(w, h int, scale float64, octaves int, persistence float64, src *rng.Source, pool *parallel.Pool) *Field {
	out := New(w, h)
	layer := New(w, h)

	frequency := 1.0
	amplitude := 1.0
	total := 0.0
	for range octaves {
		vals := layer.Values()
		for i := range vals {
			vals[i] = src.Float(0, 1) * amplitude
		}
		layer.blurGaussian(scale/frequency/4, pool)

		acc := out.Values()
		for i, v := range layer.Values() {
			acc[i] += v
		}

		total += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	for i := range out.data {
		out.data[i] /= total
	}

	return out
}
