package compose

import (
	"image"
	"log/slog"

	"github.com/disintegration/imaging"

	"artgen/rng"
)

// edgeKernel is the classic edge-enhancement convolution: -1 ring, 10
// center, divided by 2.
var edgeKernel = [9]float64{
	-0.5, -0.5, -0.5,
	-0.5, 5.0, -0.5,
	-0.5, -0.5, -0.5,
}

// Effects applies a randomized chain of 1 to 3 post filters drawn from
// Gaussian blur, saturation scaling, contrast scaling and edge enhancement.
// The same filter may be drawn more than once, and parameters are drawn
// fresh per application, in chain order.
func Effects(img image.Image, src *rng.Source) *image.NRGBA {
	out := imaging.Clone(img)

	for range src.Int(1, 3) {
		switch src.Pick(4) {
		case 0:
			sigma := src.Float(1, 3)
			slog.Debug("post effect", "effect", "blur", "sigma", sigma)
			out = imaging.Blur(out, sigma)
		case 1:
			factor := src.Float(0.5, 2.0)
			slog.Debug("post effect", "effect", "saturation", "factor", factor)
			out = imaging.AdjustSaturation(out, (factor-1)*100)
		case 2:
			factor := src.Float(0.7, 1.5)
			slog.Debug("post effect", "effect", "contrast", "factor", factor)
			out = imaging.AdjustContrast(out, (factor-1)*100)
		case 3:
			slog.Debug("post effect", "effect", "edge enhance")
			out = imaging.Convolve3x3(out, edgeKernel, nil)
		}
	}

	return out
}
