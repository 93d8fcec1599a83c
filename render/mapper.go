package render

import (
	"image"

	colorful "github.com/lucasb-eyer/go-colorful"

	"artgen/field"
	"artgen/parallel"
)

// MapField paints a normalized scalar field through palette index lookup.
// The palette is quantized once into a lookup table and gathered per pixel
// over parallel row bands; indices clamp to the palette ends, so values of
// exactly 0 and 1 (and anything the field leaks outside that range) stay
// valid. A degenerate all-zero field maps entirely to the first entry.
func MapField(f *field.Field, pal []colorful.Color, pool *parallel.Pool) *image.NRGBA {
	if len(pal) == 0 {
		pal = []colorful.Color{{}}
	}

	lut := make([][4]uint8, len(pal))
	for i, c := range pal {
		r, g, b := c.RGB255()
		lut[i] = [4]uint8{r, g, b, 0xFF}
	}

	img := image.NewNRGBA(image.Rect(0, 0, f.W, f.H))
	vals := f.Values()
	last := len(pal) - 1

	pool.Bands(f.H, func(lo, hi int) {
		for y := lo; y < hi; y++ {
			for x := 0; x < f.W; x++ {
				idx := int(vals[y*f.W+x] * float64(last))
				if idx < 0 {
					idx = 0
				} else if idx > last {
					idx = last
				}

				c := lut[idx]
				o := img.PixOffset(x, y)
				img.Pix[o] = c[0]
				img.Pix[o+1] = c[1]
				img.Pix[o+2] = c[2]
				img.Pix[o+3] = c[3]
			}
		}
	})

	return img
}
