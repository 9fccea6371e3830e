package creatum

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(4, 3)
	assert.Equal(t, 4, pm.Width())
	assert.Equal(t, 3, pm.Height())
	assert.Len(t, pm.Data(), 4*3*Channels)
	assert.Equal(t, Black, pm.GetPixel(1, 1))

	empty := NewPixmap(-2, 5)
	assert.Equal(t, 0, empty.Width())
	assert.Empty(t, empty.Data())
}

func TestPixmapSetGet(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, RGB{200, 100, 50})

	i := (5*10 + 5) * Channels
	assert.Equal(t, []uint8{200, 100, 50}, pm.Data()[i:i+3])
	assert.Equal(t, RGB{200, 100, 50}, pm.GetPixel(5, 5))

	// Out of bounds writes are ignored and reads return black.
	before := pm.Clone()
	for _, p := range []Point{{-1, 5}, {10, 5}, {5, -1}, {5, 10}} {
		pm.SetPixel(p.X, p.Y, White)
		assert.Equal(t, Black, pm.GetPixel(p.X, p.Y))
	}
	assert.True(t, pm.Equal(before))
}

// TestPixmapCloneIsolation verifies a clone shares no storage.
func TestPixmapCloneIsolation(t *testing.T) {
	pm := NewPixmapFilled(8, 8, Red)
	clone := pm.Clone()
	clone.Clear(Blue)

	assert.Equal(t, Red, pm.GetPixel(3, 3))
	assert.Equal(t, Blue, clone.GetPixel(3, 3))
}

func TestPixmapCrop(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(4, 6, Yellow)

	c := pm.Crop(Rect{X: 3, Y: 5, W: 4, H: 2})
	require.Equal(t, Pt(4, 2), c.Size())
	assert.Equal(t, Yellow, c.GetPixel(1, 1))

	clipped := pm.Crop(Rect{X: 8, Y: 8, W: 10, H: 10})
	assert.Equal(t, Pt(2, 2), clipped.Size())

	outside := pm.Crop(Rect{X: 20, Y: 20, W: 3, H: 3})
	assert.Equal(t, Point{}, outside.Size())
}

func TestPixmapFillRect(t *testing.T) {
	pm := NewPixmap(5, 5)
	pm.FillRect(Rect{X: 3, Y: 3, W: 10, H: 10}, White)
	assert.Equal(t, White, pm.GetPixel(4, 4))
	assert.Equal(t, White, pm.GetPixel(3, 3))
	assert.Equal(t, Black, pm.GetPixel(2, 2))
}

func TestPixmapImageConversion(t *testing.T) {
	src := image.NewNRGBA(image.Rect(10, 20, 14, 23))
	src.Set(11, 21, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	pm := FromImage(src)
	require.Equal(t, Pt(4, 3), pm.Size())
	assert.Equal(t, RGB{10, 20, 30}, pm.GetPixel(1, 1))

	img := pm.ToImage()
	assert.Equal(t, color.RGBA{R: 10, G: 20, B: 30, A: 255}, img.RGBAAt(1, 1))
	assert.Equal(t, uint8(255), img.RGBAAt(0, 0).A)

	var _ image.Image = pm
	r, g, b, a := pm.At(1, 1).RGBA()
	assert.Equal(t, []uint32{10 * 257, 20 * 257, 30 * 257, 0xffff}, []uint32{r, g, b, a})
}

func TestPixmapEqual(t *testing.T) {
	a := NewPixmapFilled(3, 3, Red)
	b := NewPixmapFilled(3, 3, Red)
	assert.True(t, a.Equal(b))
	b.SetPixel(0, 0, Blue)
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(NewPixmapFilled(3, 4, Red)))
	assert.False(t, a.Equal(nil))
}
