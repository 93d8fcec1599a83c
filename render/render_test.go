package render

import (
	"testing"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"artgen/field"
	"artgen/palette"
	"artgen/parallel"
	"artgen/rng"
)

func seedPtr(v int64) *int64 { return &v }

func testPalette(t *testing.T) []colorful.Color {
	t.Helper()
	return palette.Generate(palette.Surrealist, rng.New(seedPtr(1)))
}

func TestMapFieldIndexBounds(t *testing.T) {
	pal := testPalette(t)
	f := field.New(4, 1)
	copy(f.Values(), []float64{0, 1, -0.5, 1.5})

	img := MapField(f, pal, parallel.New(1))

	first, _, _ := pal[0].RGB255()
	last, _, _ := pal[len(pal)-1].RGB255()
	for _, tt := range []struct {
		x    int
		want uint8
	}{
		{0, first}, // exactly 0.0
		{1, last},  // exactly 1.0
		{2, first}, // below range clamps low
		{3, last},  // above range clamps high
	} {
		if got := img.Pix[img.PixOffset(tt.x, 0)]; got != tt.want {
			t.Errorf("pixel %d red = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestMapFieldDegenerateAllZero(t *testing.T) {
	pal := testPalette(t)
	f := field.New(8, 8)
	img := MapField(f, pal, parallel.New(2))

	r, g, b := pal[0].RGB255()
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			o := img.PixOffset(x, y)
			if img.Pix[o] != r || img.Pix[o+1] != g || img.Pix[o+2] != b || img.Pix[o+3] != 0xFF {
				t.Fatalf("pixel (%d,%d) = %v, want palette[0]", x, y, img.Pix[o:o+4])
			}
		}
	}
}

func TestMapFieldDimensions(t *testing.T) {
	f := field.New(33, 17)
	img := MapField(f, testPalette(t), parallel.New(3))
	if b := img.Bounds(); b.Dx() != 33 || b.Dy() != 17 {
		t.Fatalf("image is %dx%d, want 33x17", b.Dx(), b.Dy())
	}
}

func TestShapesCentersInInnerRect(t *testing.T) {
	const w, h = 200, 120
	shapes := Shapes(w, h, 25, testPalette(t), rng.New(seedPtr(7)))
	if len(shapes) != 25 {
		t.Fatalf("got %d shapes, want 25", len(shapes))
	}

	for i, s := range shapes {
		if s.Center.X < w/4 || s.Center.X > 3*w/4 {
			t.Errorf("shape %d center x = %v outside [%d, %d]", i, s.Center.X, w/4, 3*w/4)
		}
		if s.Center.Y < h/4 || s.Center.Y > 3*h/4 {
			t.Errorf("shape %d center y = %v outside [%d, %d]", i, s.Center.Y, h/4, 3*h/4)
		}
		if len(s.Points) != shapeSamples {
			t.Errorf("shape %d has %d points, want %d", i, len(s.Points), shapeSamples)
		}
		if s.Alpha < 100 || s.Alpha > 200 {
			t.Errorf("shape %d alpha = %d outside [100, 200]", i, s.Alpha)
		}
	}
}

func TestShapePointsClamped(t *testing.T) {
	const w, h = 64, 64 // small canvas forces radii past the edges
	shapes := Shapes(w, h, 10, testPalette(t), rng.New(seedPtr(8)))
	for i, s := range shapes {
		for j, p := range s.Points {
			if p.X < 0 || p.X > w-1 || p.Y < 0 || p.Y > h-1 {
				t.Fatalf("shape %d point %d = (%v, %v) out of bounds", i, j, p.X, p.Y)
			}
		}
	}
}

func TestRasterizeShapesCanvas(t *testing.T) {
	shapes := Shapes(100, 80, 3, testPalette(t), rng.New(seedPtr(9)))
	img := RasterizeShapes(100, 80, shapes)
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 80 {
		t.Fatalf("canvas is %dx%d, want 100x80", b.Dx(), b.Dy())
	}
}

func TestStrokesStayInBounds(t *testing.T) {
	const w, h = 150, 90
	strokes := Strokes(w, h, 30, testPalette(t), rng.New(seedPtr(10)))
	if len(strokes) != 30 {
		t.Fatalf("got %d strokes, want 30", len(strokes))
	}

	for i, s := range strokes {
		if s.Width < 3 || s.Width > 20 {
			t.Errorf("stroke %d width = %v outside [3, 20]", i, s.Width)
		}
		for j, p := range s.Points {
			if p.X < 0 || p.X > w-1 || p.Y < 0 || p.Y > h-1 {
				t.Fatalf("stroke %d point %d = (%v, %v) out of bounds", i, j, p.X, p.Y)
			}
		}
	}
}

func TestRasterizeStrokesEmptyAndDegenerate(t *testing.T) {
	img := RasterizeStrokes(50, 40, nil)
	if b := img.Bounds(); b.Dx() != 50 || b.Dy() != 40 {
		t.Fatalf("canvas is %dx%d, want 50x40", b.Dx(), b.Dy())
	}

	// White background everywhere with no strokes.
	o := img.PixOffset(25, 20)
	if img.Pix[o] != 0xFF || img.Pix[o+1] != 0xFF || img.Pix[o+2] != 0xFF {
		t.Fatalf("blank canvas pixel = %v, want white", img.Pix[o:o+3])
	}

	// A single-point stroke must be skipped, not stroked.
	pal := testPalette(t)
	single := []Stroke{{Points: []gg.Point{{X: 5, Y: 5}}, Color: pal[0], Width: 10}}
	img = RasterizeStrokes(50, 40, single)
	o = img.PixOffset(5, 5)
	if img.Pix[o] != 0xFF || img.Pix[o+1] != 0xFF || img.Pix[o+2] != 0xFF {
		t.Fatalf("single-point stroke was rasterized: pixel = %v", img.Pix[o:o+3])
	}
}
