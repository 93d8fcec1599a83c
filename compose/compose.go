package compose

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Over alpha-composites fg over an opaque background with the standard over
// operator and returns a fresh buffer; neither input is modified.
func Over(bg, fg image.Image) *image.NRGBA {
	out := imaging.Clone(bg)
	draw.Draw(out, out.Bounds(), fg, fg.Bounds().Min, draw.Over)
	return out
}

// OverWithOpacity composites fg over bg through a uniform alpha mask,
// scaling whatever per-pixel alpha fg already carries.
func OverWithOpacity(bg, fg image.Image, alpha uint8) *image.NRGBA {
	out := imaging.Clone(bg)
	mask := image.NewUniform(color.Alpha{A: alpha})
	draw.DrawMask(out, out.Bounds(), fg, fg.Bounds().Min, mask, image.Point{}, draw.Over)
	return out
}
