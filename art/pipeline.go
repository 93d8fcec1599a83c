package art

import (
	"image"
	"log/slog"

	colorful "github.com/lucasb-eyer/go-colorful"

	"artgen/compose"
	"artgen/field"
	"artgen/palette"
	"artgen/parallel"
	"artgen/render"
	"artgen/rng"
)

const (
	defaultShapeCount = 8

	backgroundNoiseScale = 80
	noiseOctaves         = 6
	noisePersistence     = 0.5

	// overlayAlpha is the 8-bit quantization of the 30% fluid overlay
	// opacity: floor(255 * 0.3).
	overlayAlpha = 76
)

// Generate runs the pipeline selected by conf.Style and returns a finished
// opaque buffer of exactly Width x Height pixels. All randomness flows
// through one Source in a fixed order before any parallel per-pixel work
// starts, so a fixed seed reproduces the output byte for byte. Invalid
// configuration aborts before any buffer is produced.
func Generate(conf Config, pool *parallel.Pool) (*image.NRGBA, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}
	if pool == nil {
		pool = parallel.New(0)
	}

	g := &generator{conf: conf, src: rng.New(conf.Seed), pool: pool}
	if conf.Style == palette.Surrealist {
		return g.surrealist(), nil
	}
	return g.expressionist(), nil
}

// PaletteFor returns the first palette the pipeline would draw for conf.
// With a fixed seed it matches the colors Generate uses for strokes or
// shapes, so it can be exported alongside the artwork.
func PaletteFor(conf Config) ([]colorful.Color, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}
	g := &generator{conf: conf, src: rng.New(conf.Seed)}
	return g.palette(conf.Style), nil
}

type generator struct {
	conf Config
	src  *rng.Source
	pool *parallel.Pool
}

func (g *generator) palette(style palette.Style) []colorful.Color {
	if len(g.conf.BaseColors) > 0 {
		return palette.FromBases(g.conf.BaseColors, g.src)
	}
	return palette.Generate(style, g.src)
}

// expressionist draws gestural strokes on a white canvas, then overlays the
// color-mapped wave-interference field at 30% opacity.
func (g *generator) expressionist() *image.NRGBA {
	w, h := g.conf.Width, g.conf.Height

	// The stroke palette is the first draw of the run, so PaletteFor can
	// reproduce it; the fallback count draw happens after it.
	strokePal := g.palette(palette.Expressionist)

	count := 0
	if g.conf.StrokeCount != nil {
		count = *g.conf.StrokeCount
	} else {
		count = g.src.Int(20, 40)
	}

	strokes := render.Strokes(w, h, count, strokePal, g.src)
	base := render.RasterizeStrokes(w, h, strokes)
	slog.Debug("strokes drawn", "count", len(strokes))

	fluid := field.Fluid(w, h, g.src, g.pool)
	fluid.Normalize()
	overlay := render.MapField(fluid, g.palette(palette.Expressionist), g.pool)

	return compose.OverWithOpacity(base, overlay, overlayAlpha)
}

// surrealist composites organic polygons over a noise-mapped background,
// then runs the randomized effect chain.
func (g *generator) surrealist() *image.NRGBA {
	w, h := g.conf.Width, g.conf.Height

	count := defaultShapeCount
	if g.conf.ShapeCount != nil {
		count = *g.conf.ShapeCount
	}

	shapes := render.Shapes(w, h, count, g.palette(palette.Surrealist), g.src)
	layer := render.RasterizeShapes(w, h, shapes)
	slog.Debug("shapes drawn", "count", len(shapes))

	noise := field.Noise(w, h, backgroundNoiseScale, noiseOctaves, noisePersistence, g.src, g.pool)
	noise.Normalize()
	background := render.MapField(noise, g.palette(palette.Surrealist), g.pool)

	return compose.Effects(compose.Over(background, layer), g.src)
}
