package generate

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/alecthomas/kong"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"artgen/art"
	"artgen/palette"
	"artgen/parallel"
)

type CLICmd struct {
	Style       string `help:"Art style to generate (expressionist or surrealist)" short:"s"`
	Output      string `help:"Output filename" short:"o"`
	Width       int    `help:"Image width in pixels (default 1024)"`
	Height      int    `help:"Image height in pixels (default 1024)"`
	Seed        *int64 `help:"Random seed for reproducible results"`
	Shapes      *int   `help:"Number of organic shapes, surrealist only (default 8)"`
	Strokes     *int   `help:"Number of brush strokes, expressionist only (default random 20-40)"`
	Format      string `help:"Output format (png, jpeg, bmp, tiff), derived from the output extension if not given"`
	Preset      string `help:"TOML preset file supplying defaults for unset flags" type:"existingfile"`
	Palette     string `help:"RIFF PAL file whose first six colors replace the style base colors" type:"existingfile"`
	SavePalette string `help:"Also write the generated palette to this RIFF PAL file"`
	Workers     int    `help:"Worker count for per-pixel stages (0 = all CPUs)" default:"0"`

	baseColors []colorful.Color
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Preset != "" {
		preset, err := loadPreset(c.Preset)
		if err != nil {
			return err
		}
		c.applyPreset(preset)
	}
	c.applyDefaults()

	switch palette.Style(c.Style) {
	case palette.Expressionist, palette.Surrealist:
	case "":
		return fmt.Errorf("no style given, use --style or a preset")
	default:
		return fmt.Errorf("unsupported style %q", c.Style)
	}

	if c.Width <= 0 {
		return fmt.Errorf("invalid width: %d", c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("invalid height: %d", c.Height)
	}
	if c.Shapes != nil && *c.Shapes < 0 {
		return fmt.Errorf("invalid shape count: %d", *c.Shapes)
	}
	if c.Strokes != nil && *c.Strokes < 0 {
		return fmt.Errorf("invalid stroke count: %d", *c.Strokes)
	}

	switch c.Format {
	case "", "png", "jpeg", "bmp", "tiff":
	default:
		return fmt.Errorf("unsupported output format %q", c.Format)
	}

	if c.Palette != "" {
		bases, err := loadBaseColors(c.Palette)
		if err != nil {
			return err
		}
		c.baseColors = bases
	}

	return nil
}

func (c *CLICmd) applyDefaults() {
	if c.Width == 0 {
		c.Width = 1024
	}
	if c.Height == 0 {
		c.Height = 1024
	}
	if c.Output == "" {
		c.Output = "artwork.png"
	}
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if pool == nil {
		pool = parallel.New(0)
	}

	conf := art.Config{
		Style:       palette.Style(c.Style),
		Width:       c.Width,
		Height:      c.Height,
		Seed:        c.Seed,
		ShapeCount:  c.Shapes,
		StrokeCount: c.Strokes,
		BaseColors:  c.baseColors,
	}

	logger := slog.Default().With("style", c.Style, "width", c.Width, "height", c.Height)
	if c.Seed != nil {
		logger = logger.With("seed", *c.Seed)
	}
	logger.Info("generating artwork", "workers", pool.Workers())

	start := time.Now()
	img, err := art.Generate(conf, pool)
	if err != nil {
		return fmt.Errorf("could not generate artwork: %w", err)
	}
	logger.Info("artwork generated", "elapsed", time.Since(start))

	if c.SavePalette != "" {
		if err := c.savePalette(conf); err != nil {
			return err
		}
	}

	if err := c.save(img); err != nil {
		return err
	}

	info, err := os.Stat(c.Output)
	if err != nil {
		return fmt.Errorf("could not stat output file %q: %w", c.Output, err)
	}
	logger.Info("artwork saved", "file", c.Output, "bytes", info.Size())

	return nil
}

func (c *CLICmd) savePalette(conf art.Config) (err error) {
	pal, err := art.PaletteFor(conf)
	if err != nil {
		return fmt.Errorf("could not build palette: %w", err)
	}

	palFile, err := os.Create(c.SavePalette)
	if err != nil {
		return fmt.Errorf("could not create palette file %q: %w", c.SavePalette, err)
	}
	defer func() {
		if closeErr := palFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close palette file %q: %w", c.SavePalette, closeErr)
		}
	}()

	if _, err = palette.WriteTo(palFile, pal); err != nil {
		return fmt.Errorf("could not write palette file %q: %w", c.SavePalette, err)
	}

	slog.Info("palette saved", "file", c.SavePalette, "colors", len(pal))
	return nil
}

func loadBaseColors(path string) (_ []colorful.Color, err error) {
	palFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open palette file %q: %w", path, err)
	}
	defer func() {
		if closeErr := palFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close palette file %q: %w", path, closeErr)
		}
	}()

	pal, err := palette.ReadFrom(palFile)
	if err != nil {
		return nil, fmt.Errorf("could not load palette %q: %w", path, err)
	}
	if len(pal) < palette.BaseCount {
		return nil, fmt.Errorf("palette %q has %d colors, need at least %d", path, len(pal), palette.BaseCount)
	}

	return pal[:palette.BaseCount], nil
}

// outputFormat resolves the requested format, falling back to the output
// file extension and finally to png.
func outputFormat(format, output string) string {
	if format != "" {
		return format
	}

	switch ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(output), ".")); ext {
	case "jpg", "jpeg":
		return "jpeg"
	case "bmp", "tiff":
		return ext
	default:
		return "png"
	}
}

func (c *CLICmd) save(img image.Image) (err error) {
	destDir := filepath.Dir(c.Output)
	outFile, err := os.CreateTemp(destDir, filepath.Base(c.Output))
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", c.Output, err)
	}

	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", c.Output, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", c.Output, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), c.Output); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", c.Output, defErr)
			}
			return
		}

		if defErr := os.Remove(outFile.Name()); defErr != nil {
			slog.Error("could not remove temporary destination", "file", outFile.Name(), "error", defErr)
		}
	}()

	switch format := outputFormat(c.Format, c.Output); format {
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		if err = enc.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode PNG destination %q: %w", c.Output, err)
		}
	case "jpeg":
		if err = jpeg.Encode(outFile, img, &jpeg.Options{Quality: 100}); err != nil {
			return fmt.Errorf("could not encode JPEG destination %q: %w", c.Output, err)
		}
	case "bmp":
		if err = bmp.Encode(outFile, img); err != nil {
			return fmt.Errorf("could not encode BMP destination %q: %w", c.Output, err)
		}
	case "tiff":
		if err = tiff.Encode(outFile, img, nil); err != nil {
			return fmt.Errorf("could not encode TIFF destination %q: %w", c.Output, err)
		}
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}

	canRename = true
	return err
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
