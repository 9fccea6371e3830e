package creatum

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLayer(t *testing.T, w, h int, c RGB, pos Point) *Layer {
	t.Helper()
	l, err := NewLayer(NewPixmapFilled(w, h, c), pos, false)
	require.NoError(t, err)
	return l
}

func TestNewLayer(t *testing.T) {
	l, err := NewLayer(NewPixmap(6, 4), Pt(3, 5), true)
	require.NoError(t, err)

	assert.Equal(t, Pt(3, 5), l.Position())
	assert.Equal(t, Pt(3, 5), l.PositionBeforeDrag())
	assert.True(t, l.Promoted())
	assert.False(t, l.Selected())
	require.NotNil(t, l.Mask())
	assert.Equal(t, 6, l.Mask().Width())
	assert.Equal(t, 4, l.Mask().Height())
	assert.Equal(t, image.Rect(3, 5, 9, 9), l.Bounds())
}

func TestNewLayerNilPixmap(t *testing.T) {
	l, err := NewLayer(nil, Point{}, false)
	assert.ErrorIs(t, err, ErrNilPixmap)
	assert.Nil(t, l)
}

// TestLayerCloneIsolation checks that pixels and mask of a clone are independent.
func TestLayerCloneIsolation(t *testing.T) {
	l := newTestLayer(t, 5, 5, Red, Pt(1, 1))
	l.SetSelected(true)
	l.promoted = true

	c := l.Clone()
	assert.False(t, c.Selected())
	assert.False(t, c.Promoted())
	assert.Equal(t, l.Position(), c.Position())

	c.Pixels().Clear(Blue)
	c.Mask().Fill(0)
	assert.Equal(t, Red, l.Pixels().GetPixel(2, 2))
	assert.Equal(t, float32(1), l.Mask().At(2, 2))
}

func TestLayerSetPixelsResetsMask(t *testing.T) {
	l := newTestLayer(t, 5, 5, Red, Point{})
	l.Mask().Fill(0.5)
	l.SetPixels(NewPixmap(8, 2))

	assert.Equal(t, 8, l.Mask().Width())
	assert.Equal(t, float32(1), l.Mask().At(7, 1))

	l.SetPixels(nil)
	assert.Equal(t, 8, l.Pixels().Width())
}

func TestLayerContainsPoint(t *testing.T) {
	l := newTestLayer(t, 10, 5, White, Pt(10, 20))
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(10, 20), true},
		{Pt(20, 25), true}, // bottom-right edge is inclusive
		{Pt(15, 22), true},
		{Pt(9, 22), false},
		{Pt(21, 22), false},
		{Pt(15, 26), false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, l.ContainsPoint(tt.p), "point %v", tt.p)
	}
}

func TestLayerExtractSelection(t *testing.T) {
	l := newTestLayer(t, 20, 20, White, Pt(100, 50))
	l.Pixels().SetPixel(5, 6, Red)

	assert.Nil(t, l.ExtractSelection(), "no selection")

	l.Region().SetBoundingRect(4, 5, 6, 3)
	out := l.ExtractSelection()
	require.NotNil(t, out)

	assert.True(t, out.Promoted())
	assert.Equal(t, Pt(104, 55), out.Position(), "placed at the global position")
	assert.Equal(t, Pt(6, 3), out.Size())
	assert.Equal(t, Red, out.Pixels().GetPixel(1, 1))
	assert.Equal(t, float32(1), out.Mask().At(0, 0))

	out.Pixels().Clear(Blue)
	assert.Equal(t, Red, l.Pixels().GetPixel(5, 6), "source untouched")
}

func TestLayerExtractSelectionWithoutMask(t *testing.T) {
	l := newTestLayer(t, 10, 10, White, Point{})
	l.region = NewRegion()
	l.region.rect = Rect{W: 4, H: 4}
	assert.Nil(t, l.ExtractSelection())
}

func TestLayerExtractPolygon(t *testing.T) {
	l := newTestLayer(t, 30, 30, White, Pt(5, 5))
	l.Region().SetMaskPoints([]Point{Pt(10, 10), Pt(20, 10), Pt(20, 20), Pt(10, 20)})

	out := l.ExtractSelection()
	require.NotNil(t, out)
	assert.Equal(t, Pt(15, 15), out.Position())
	assert.Equal(t, Pt(11, 11), out.Size())
	assert.Equal(t, float32(1), out.Mask().At(0, 0))
	assert.Equal(t, float32(0), out.Mask().At(10, 10), "outside the filled polygon")
	assert.Equal(t, Pt(0, 0), out.Region().MaskPoints()[0], "outline moved to local coordinates")
}
