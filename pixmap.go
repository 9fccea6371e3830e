package creatum

import (
	"image"
	"image/color"
	"image/draw"
)

// Channels is the number of bytes stored per pixel.
const Channels = 3

// RGB is an opaque 8-bit colour as stored in a Pixmap.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Common colours.
var (
	Black   = RGB{0, 0, 0}
	White   = RGB{255, 255, 255}
	Red     = RGB{255, 0, 0}
	Blue    = RGB{0, 0, 255}
	Yellow  = RGB{255, 255, 0}
	Magenta = RGB{255, 0, 255}
)

// Pixmap represents a rectangular 8-bit RGB pixel buffer.
// A zero-sized Pixmap is valid and holds no pixels.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGB format, 3 bytes per pixel
}

// NewPixmap creates a new black pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width = max(width, 0)
	height = max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*Channels),
	}
}

// NewPixmapFilled creates a pixmap filled with c.
func NewPixmapFilled(width, height int, c RGB) *Pixmap {
	pm := NewPixmap(width, height)
	pm.Clear(c)
	return pm
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Size returns the pixmap dimensions as a vector.
func (p *Pixmap) Size() Point {
	return Point{X: p.width, Y: p.height}
}

// Data returns the raw pixel data (RGB format, row-major).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// offset returns the byte offset of (x, y). Callers check bounds.
func (p *Pixmap) offset(x, y int) int {
	return (y*p.width + x) * Channels
}

// SetPixel sets the color of a single pixel.
// Coordinates outside the pixmap are ignored.
func (p *Pixmap) SetPixel(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := p.offset(x, y)
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
}

// GetPixel returns the color of a single pixel.
// Returns Black for coordinates outside the pixmap.
func (p *Pixmap) GetPixel(x, y int) RGB {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Black
	}
	i := p.offset(x, y)
	return RGB{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2]}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGB) {
	for i := 0; i < len(p.data); i += Channels {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
	}
}

// FillRect fills the part of r that lies inside the pixmap with c.
func (p *Pixmap) FillRect(r Rect, c RGB) {
	r = r.Intersect(Rect{W: p.width, H: p.height})
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			p.SetPixel(x, y, c)
		}
	}
}

// Clone creates a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// Crop returns a copy of the part of r that lies inside the pixmap.
// The result is zero-sized when r does not overlap the pixmap.
func (p *Pixmap) Crop(r Rect) *Pixmap {
	r = r.Intersect(Rect{W: p.width, H: p.height})
	out := NewPixmap(r.W, r.H)
	rowBytes := r.W * Channels
	for y := 0; y < r.H; y++ {
		src := p.offset(r.X, r.Y+y)
		copy(out.data[y*rowBytes:(y+1)*rowBytes], p.data[src:src+rowBytes])
	}
	return out
}

// Equal reports whether both pixmaps have identical size and pixels.
func (p *Pixmap) Equal(q *Pixmap) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.width != q.width || p.height != q.height {
		return false
	}
	for i := range p.data {
		if p.data[i] != q.data[i] {
			return false
		}
	}
	return true
}

// ToImage converts the pixmap to an opaque image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	for i, j := 0, 0; i < len(p.data); i, j = i+Channels, j+4 {
		img.Pix[j+0] = p.data[i+0]
		img.Pix[j+1] = p.data[i+1]
		img.Pix[j+2] = p.data[i+2]
		img.Pix[j+3] = 255
	}
	return img
}

// FromImage creates a pixmap from an image. Alpha is discarded after the
// image has been flattened onto black.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Bounds().Min != (image.Point{}) {
		rgba = image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
		draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	}
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		src := y * rgba.Stride
		for x := 0; x < pm.width; x++ {
			i := pm.offset(x, y)
			pm.data[i+0] = rgba.Pix[src+0]
			pm.data[i+1] = rgba.Pix[src+1]
			pm.data[i+2] = rgba.Pix[src+2]
			src += 4
		}
	}
	return pm
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
