package generate

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Preset mirrors the flag surface for values that make sense in a file.
// Preset values only fill flags left unset on the command line.
type Preset struct {
	Style   string `toml:"style"`
	Output  string `toml:"output"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	Seed    *int64 `toml:"seed"`
	Shapes  *int   `toml:"shapes"`
	Strokes *int   `toml:"strokes"`
	Format  string `toml:"format"`
	Palette string `toml:"palette"`
}

func loadPreset(path string) (Preset, error) {
	var preset Preset
	if _, err := toml.DecodeFile(path, &preset); err != nil {
		return Preset{}, fmt.Errorf("could not read preset %q: %w", path, err)
	}
	return preset, nil
}

func (c *CLICmd) applyPreset(p Preset) {
	if c.Style == "" {
		c.Style = p.Style
	}
	if c.Output == "" {
		c.Output = p.Output
	}
	if c.Width == 0 {
		c.Width = p.Width
	}
	if c.Height == 0 {
		c.Height = p.Height
	}
	if c.Seed == nil {
		c.Seed = p.Seed
	}
	if c.Shapes == nil {
		c.Shapes = p.Shapes
	}
	if c.Strokes == nil {
		c.Strokes = p.Strokes
	}
	if c.Format == "" {
		c.Format = p.Format
	}
	if c.Palette == "" {
		c.Palette = p.Palette
	}
}
