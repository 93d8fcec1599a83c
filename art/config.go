package art

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"

	"artgen/palette"
)

var (
	// ErrInvalidDimension reports a non-positive canvas dimension.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidCount reports a negative shape or stroke count.
	ErrInvalidCount = errors.New("invalid count")
)

// Config carries everything a generation run needs. Optional fields are nil
// pointers: a nil Seed makes the run non-deterministic, nil counts select
// the style defaults (8 shapes; 20 to 40 strokes).
type Config struct {
	Style       palette.Style
	Width       int
	Height      int
	Seed        *int64
	ShapeCount  *int
	StrokeCount *int

	// BaseColors optionally replaces the style's built-in base colors,
	// e.g. loaded from a RIFF PAL file. Per-channel perturbation still
	// applies on top.
	BaseColors []colorful.Color
}

func (c Config) validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidDimension, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height %d", ErrInvalidDimension, c.Height)
	}
	if c.ShapeCount != nil && *c.ShapeCount < 0 {
		return fmt.Errorf("%w: shapes %d", ErrInvalidCount, *c.ShapeCount)
	}
	if c.StrokeCount != nil && *c.StrokeCount < 0 {
		return fmt.Errorf("%w: strokes %d", ErrInvalidCount, *c.StrokeCount)
	}

	switch c.Style {
	case palette.Expressionist, palette.Surrealist:
	default:
		return fmt.Errorf("unsupported style %q", c.Style)
	}

	return nil
}
