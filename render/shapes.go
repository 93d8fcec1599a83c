package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"artgen/rng"
)

// shapeSamples is how many angle samples each organic outline takes.
const shapeSamples = 50

// Shape is a closed polygon with a fill color and transparency.
type Shape struct {
	Center gg.Point
	Points []gg.Point
	Color  colorful.Color
	Alpha  uint8
}

// Shapes places count biomorphic polygons. Centers land in the middle half
// of each axis; the outline samples angles evenly over [0, 2pi], each with a
// fresh base radius in [50, 200] plus a two-frequency sinusoidal
// perturbation whose frequencies are fixed per shape. Points clamp to the
// canvas before rasterization.
func Shapes(w, h, count int, pal []colorful.Color, src *rng.Source) []Shape {
	shapes := make([]Shape, 0, count)
	for range count {
		cx := float64(src.Int(w/4, 3*w/4))
		cy := float64(src.Int(h/4, 3*h/4))
		k1 := float64(src.Int(2, 8))
		k2 := float64(src.Int(1, 5))

		pts := make([]gg.Point, shapeSamples)
		for i := range pts {
			angle := 2 * math.Pi * float64(i) / (shapeSamples - 1)
			radius := float64(src.Int(50, 200)) + 30*math.Sin(angle*k1)*math.Cos(angle*k2)
			pts[i] = gg.Point{
				X: clamp(cx+radius*math.Cos(angle), 0, float64(w-1)),
				Y: clamp(cy+radius*math.Sin(angle), 0, float64(h-1)),
			}
		}

		shapes = append(shapes, Shape{
			Center: gg.Point{X: cx, Y: cy},
			Points: pts,
			Color:  pal[src.Pick(len(pal))],
			Alpha:  uint8(src.Int(100, 200)),
		})
	}

	return shapes
}

// RasterizeShapes fills the polygons onto a transparent canvas using the
// even-odd rule, so self-intersecting outlines render with alternating
// holes.
func RasterizeShapes(w, h int, shapes []Shape) *image.RGBA {
	dc := gg.NewContext(w, h)
	dc.SetFillRule(gg.FillRuleEvenOdd)

	for _, s := range shapes {
		if len(s.Points) < 3 {
			continue
		}

		dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}
		dc.ClosePath()

		dc.SetRGBA(s.Color.R, s.Color.G, s.Color.B, float64(s.Alpha)/255)
		dc.Fill()
	}

	return dc.Image().(*image.RGBA)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
