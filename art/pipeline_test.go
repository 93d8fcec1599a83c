package art

import (
	"bytes"
	"errors"
	"testing"

	"artgen/compose"
	"artgen/field"
	"artgen/palette"
	"artgen/parallel"
	"artgen/render"
	"artgen/rng"
)

func seedPtr(v int64) *int64 { return &v }
func intPtr(v int) *int      { return &v }

func TestGenerateSurrealistExample(t *testing.T) {
	conf := Config{
		Style:      palette.Surrealist,
		Width:      256,
		Height:     256,
		Seed:       seedPtr(7),
		ShapeCount: intPtr(3),
	}

	img, err := Generate(conf, parallel.New(0))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 256 {
		t.Fatalf("output is %dx%d, want 256x256", b.Dx(), b.Dy())
	}

	again, err := Generate(conf, parallel.New(1))
	if err != nil {
		t.Fatalf("Generate (repeat): %v", err)
	}
	if !bytes.Equal(img.Pix, again.Pix) {
		t.Fatal("two seeded runs produced different buffers")
	}
}

func TestGenerateExpressionistDeterministic(t *testing.T) {
	conf := Config{
		Style:  palette.Expressionist,
		Width:  96,
		Height: 64,
		Seed:   seedPtr(42),
	}

	a, err := Generate(conf, parallel.New(4))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(conf, parallel.New(1))
	if err != nil {
		t.Fatalf("Generate (repeat): %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Fatal("seeded expressionist runs diverged across worker counts")
	}
}

func TestGenerateExpressionistZeroStrokes(t *testing.T) {
	conf := Config{
		Style:       palette.Expressionist,
		Width:       80,
		Height:      60,
		Seed:        seedPtr(1),
		StrokeCount: intPtr(0),
	}

	img, err := Generate(conf, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 80 || b.Dy() != 60 {
		t.Fatalf("output is %dx%d, want 80x60", b.Dx(), b.Dy())
	}
}

func TestGenerateOutputOpaque(t *testing.T) {
	for _, style := range []palette.Style{palette.Expressionist, palette.Surrealist} {
		t.Run(string(style), func(t *testing.T) {
			img, err := Generate(Config{
				Style:       style,
				Width:       48,
				Height:      48,
				Seed:        seedPtr(5),
				ShapeCount:  intPtr(2),
				StrokeCount: intPtr(4),
			}, parallel.New(2))
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			for i := 3; i < len(img.Pix); i += 4 {
				if img.Pix[i] != 0xFF {
					t.Fatalf("pixel %d alpha = %d, want 255", i/4, img.Pix[i])
				}
			}
		})
	}
}

func TestGenerateValidation(t *testing.T) {
	tests := []struct {
		name string
		conf Config
		want error
	}{
		{"zero width", Config{Style: palette.Surrealist, Width: 0, Height: 100}, ErrInvalidDimension},
		{"negative height", Config{Style: palette.Surrealist, Width: 100, Height: -3}, ErrInvalidDimension},
		{"negative shapes", Config{Style: palette.Surrealist, Width: 10, Height: 10, ShapeCount: intPtr(-1)}, ErrInvalidCount},
		{"negative strokes", Config{Style: palette.Expressionist, Width: 10, Height: 10, StrokeCount: intPtr(-5)}, ErrInvalidCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Generate(tt.conf, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			if img != nil {
				t.Fatal("partial buffer returned alongside error")
			}
		})
	}
}

func TestGenerateRejectsUnknownStyle(t *testing.T) {
	if _, err := Generate(Config{Style: "cubist", Width: 10, Height: 10}, nil); err == nil {
		t.Fatal("expected error for unknown style")
	}
}

// TestPaletteForMatchesStrokePalette rebuilds the expressionist pipeline
// step by step, painting the strokes with the exported palette. If the
// pipeline consumed any draw before the stroke palette (or used different
// colors than PaletteFor reports), the replayed buffer would diverge.
func TestPaletteForMatchesStrokePalette(t *testing.T) {
	conf := Config{
		Style:  palette.Expressionist,
		Width:  72,
		Height: 48,
		Seed:   seedPtr(7),
		// StrokeCount left nil so the pipeline draws the count itself.
	}
	pool := parallel.New(2)

	img, err := Generate(conf, pool)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	exported, err := PaletteFor(conf)
	if err != nil {
		t.Fatalf("PaletteFor: %v", err)
	}

	src := rng.New(conf.Seed)
	strokePal := palette.Generate(palette.Expressionist, src)
	for i := range strokePal {
		if strokePal[i] != exported[i] {
			t.Fatalf("exported color %d = %v, pipeline uses %v", i, exported[i], strokePal[i])
		}
	}

	count := src.Int(20, 40)
	strokes := render.Strokes(conf.Width, conf.Height, count, exported, src)
	base := render.RasterizeStrokes(conf.Width, conf.Height, strokes)

	fluid := field.Fluid(conf.Width, conf.Height, src, pool)
	fluid.Normalize()
	overlay := render.MapField(fluid, palette.Generate(palette.Expressionist, src), pool)

	want := compose.OverWithOpacity(base, overlay, overlayAlpha)
	if !bytes.Equal(img.Pix, want.Pix) {
		t.Fatal("pipeline buffer differs from replay painted with the exported palette")
	}
}

func TestPaletteForMatchesSeed(t *testing.T) {
	conf := Config{Style: palette.Expressionist, Width: 10, Height: 10, Seed: seedPtr(13)}

	a, err := PaletteFor(conf)
	if err != nil {
		t.Fatalf("PaletteFor: %v", err)
	}
	if len(a) != palette.Size {
		t.Fatalf("palette size = %d, want %d", len(a), palette.Size)
	}

	b, err := PaletteFor(conf)
	if err != nil {
		t.Fatalf("PaletteFor (repeat): %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("color %d differs across calls", i)
		}
	}
}
