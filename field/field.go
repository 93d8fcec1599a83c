package field

// Field stores a 2D scalar field in row-major order, one float per pixel.
type Field struct {
	W, H int
	data []float64
}

// New allocates a zeroed field with the given dimensions.
func New(w, h int) *Field {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return &Field{W: w, H: h, data: make([]float64, w*h)}
}

// Values exposes the backing slice so stages can read/write directly.
func (f *Field) Values() []float64 { return f.data }

// Index returns the linear slice index for coordinates (x, y).
func (f *Field) Index(x, y int) int { return y*f.W + x }

// At returns the value at (x, y).
func (f *Field) At(x, y int) float64 { return f.data[f.Index(x, y)] }

// Normalize rescales the field into [0, 1] in place. A zero-range field
// collapses to all zeros, which palette mapping turns into index 0.
func (f *Field) Normalize() {
	lo, hi := f.data[0], f.data[0]
	for _, v := range f.data {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if hi == lo {
		for i := range f.data {
			f.data[i] = 0
		}
		return
	}

	scale := 1 / (hi - lo)
	for i := range f.data {
		f.data[i] = (f.data[i] - lo) * scale
	}
}
