package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"artgen/rng"
)

// Style names a base color set.
type Style string

const (
	Expressionist Style = "expressionist"
	Surrealist    Style = "surrealist"
)

const (
	// BaseCount is the number of base colors behind each style.
	BaseCount = 6
	// variantsPerBase is how many perturbed entries each base contributes.
	variantsPerBase = 3
	// Size is the length of every generated palette.
	Size = BaseCount * variantsPerBase
)

var baseColors = map[Style][]colorful.Color{
	// Bold, emotional colors.
	Expressionist: {
		{R: 0.8, G: 0.1, B: 0.1}, // deep red
		{R: 0.1, G: 0.1, B: 0.8}, // deep blue
		{R: 0.9, G: 0.7, B: 0.1}, // golden yellow
		{R: 0.1, G: 0.6, B: 0.1}, // forest green
		{R: 0.6, G: 0.1, B: 0.6}, // purple
		{R: 0.9, G: 0.4, B: 0.1}, // orange
	},
	// Dreamlike, unexpected combinations.
	Surrealist: {
		{R: 0.7, G: 0.3, B: 0.8}, // lavender
		{R: 0.3, G: 0.8, B: 0.7}, // turquoise
		{R: 0.9, G: 0.6, B: 0.3}, // peach
		{R: 0.4, G: 0.2, B: 0.7}, // deep purple
		{R: 0.8, G: 0.8, B: 0.2}, // lime
		{R: 0.2, G: 0.5, B: 0.8}, // sky blue
	},
}

// Bases returns the built-in base colors for a style.
func Bases(style Style) []colorful.Color {
	return baseColors[style]
}

// Generate produces the ordered palette for a style. Order is significant:
// scalar-to-color mapping indexes into the result.
func Generate(style Style, src *rng.Source) []colorful.Color {
	return FromBases(baseColors[style], src)
}

// FromBases perturbs each base color into variantsPerBase palette entries,
// nudging each channel by an independent uniform draw in [-0.2, 0.2] and
// clamping to [0, 1]. Draw order is fixed: base-major, then variant, then
// channel R, G, B.
func FromBases(bases []colorful.Color, src *rng.Source) []colorful.Color {
	pal := make([]colorful.Color, 0, len(bases)*variantsPerBase)
	for _, base := range bases {
		for range variantsPerBase {
			c := colorful.Color{
				R: base.R + src.Float(-0.2, 0.2),
				G: base.G + src.Float(-0.2, 0.2),
				B: base.B + src.Float(-0.2, 0.2),
			}
			pal = append(pal, c.Clamped())
		}
	}
	return pal
}
