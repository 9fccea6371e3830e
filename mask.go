package creatum

import "github.com/chewxy/math32"

// Mask represents an alpha mask for compositing operations.
// Values range from 0 (fully transparent) to 1 (fully opaque).
//
// A nil *Mask is treated everywhere as fully opaque.
type Mask struct {
	width  int
	height int
	data   []float32
}

// NewMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewMask(width, height int) *Mask {
	width = max(width, 0)
	height = max(height, 0)
	return &Mask{
		width:  width,
		height: height,
		data:   make([]float32, width*height),
	}
}

// NewOpaqueMask creates a mask with every value set to 1.
func NewOpaqueMask(width, height int) *Mask {
	m := NewMask(width, height)
	m.Fill(1)
	return m
}

// Width returns the mask width.
func (m *Mask) Width() int { return m.width }

// Height returns the mask height.
func (m *Mask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *Mask) At(x, y int) float32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y), clamped to [0, 1].
// Coordinates outside the mask bounds are ignored.
func (m *Mask) Set(x, y int, value float32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = clamp01(value)
}

// Fill fills the entire mask with a value.
func (m *Mask) Fill(value float32) {
	value = clamp01(value)
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert inverts all mask values (1 - value).
func (m *Mask) Invert() {
	for i, v := range m.data {
		m.data[i] = clamp01(1 - v)
	}
}

// Multiply composes other into m by per-pixel multiplication over the
// overlapping area. Values of m outside other are set to 0.
// A nil other leaves m unchanged.
func (m *Mask) Multiply(other *Mask) {
	if other == nil {
		return
	}
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			i := y*m.width + x
			m.data[i] = clamp01(m.data[i] * other.At(x, y))
		}
	}
}

// Crop returns a copy of the part of r that lies inside the mask.
func (m *Mask) Crop(r Rect) *Mask {
	r = r.Intersect(Rect{W: m.width, H: m.height})
	out := NewMask(r.W, r.H)
	for y := 0; y < r.H; y++ {
		src := (r.Y+y)*m.width + r.X
		copy(out.data[y*r.W:(y+1)*r.W], m.data[src:src+r.W])
	}
	return out
}

// Clone creates a copy of the mask.
func (m *Mask) Clone() *Mask {
	clone := NewMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
// This is useful for advanced operations.
func (m *Mask) Data() []float32 {
	return m.data
}

// clamp01 limits v to [0, 1]. NaN becomes 0.
func clamp01(v float32) float32 {
	if math32.IsNaN(v) {
		return 0
	}
	return math32.Max(0, math32.Min(1, v))
}
