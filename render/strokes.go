package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"artgen/rng"
)

// Stroke is a polyline with a single color and width.
type Stroke struct {
	Points []gg.Point
	Color  colorful.Color
	Width  float64
}

// Strokes walks count gestural paths. Each starts anywhere on the canvas
// with a random heading and a per-stroke curvature; every step the heading
// drifts by curvature plus jitter in [-0.2, 0.2], the position advances by
// the per-stroke step size and clamps into the canvas.
func Strokes(w, h, count int, pal []colorful.Color, src *rng.Source) []Stroke {
	maxX, maxY := float64(w-1), float64(h-1)

	strokes := make([]Stroke, 0, count)
	for range count {
		x := clamp(src.Float(0, float64(w)), 0, maxX)
		y := clamp(src.Float(0, float64(h)), 0, maxY)
		direction := src.Float(0, 2*math.Pi)
		curvature := src.Float(-0.1, 0.1)
		length := src.Int(100, 400)
		step := src.Int(5, 15)

		pts := []gg.Point{{X: x, Y: y}}
		for travelled := 0; travelled < length; travelled += step {
			direction += curvature + src.Float(-0.2, 0.2)
			x = clamp(x+float64(step)*math.Cos(direction), 0, maxX)
			y = clamp(y+float64(step)*math.Sin(direction), 0, maxY)
			pts = append(pts, gg.Point{X: x, Y: y})
		}

		strokes = append(strokes, Stroke{
			Points: pts,
			Color:  pal[src.Pick(len(pal))],
			Width:  float64(src.Int(3, 20)),
		})
	}

	return strokes
}

// RasterizeStrokes draws the polylines onto a white canvas with round caps
// and joins. Strokes that never advanced past their start point are skipped
// rather than stroked as zero-length segments.
func RasterizeStrokes(w, h int, strokes []Stroke) *image.RGBA {
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineCapRound()
	dc.SetLineJoinRound()

	for _, s := range strokes {
		if len(s.Points) < 2 {
			continue
		}

		dc.MoveTo(s.Points[0].X, s.Points[0].Y)
		for _, p := range s.Points[1:] {
			dc.LineTo(p.X, p.Y)
		}

		dc.SetRGB(s.Color.R, s.Color.G, s.Color.B)
		dc.SetLineWidth(s.Width)
		dc.Stroke()
	}

	return dc.Image().(*image.RGBA)
}
