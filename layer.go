package creatum

import "image"

// Layer is one positioned raster element of a document together with its
// selection metadata.
//
// A layer owns its pixel buffer and its Region. Position is the top-left
// corner in scene coordinates.
type Layer struct {
	pixels             *Pixmap
	position           Point
	positionBeforeDrag Point
	selected           bool
	promoted           bool
	region             *Region
}

// NewLayer wraps pixels as a layer at pos. The layer takes ownership of
// pixels and initialises a fully opaque mask of the same size.
// A promoted layer is a floating selection waiting to be merged down.
func NewLayer(pixels *Pixmap, pos Point, promoted bool) (*Layer, error) {
	if pixels == nil {
		return nil, ErrNilPixmap
	}
	l := &Layer{
		pixels:             pixels,
		position:           pos,
		positionBeforeDrag: pos,
		promoted:           promoted,
		region:             NewRegion(),
	}
	l.region.InitializeMask(pixels.height, pixels.width)
	return l, nil
}

// Clone returns a deep copy of the layer. The clone is never selected and
// never promoted.
func (l *Layer) Clone() *Layer {
	return &Layer{
		pixels:             l.pixels.Clone(),
		position:           l.position,
		positionBeforeDrag: l.positionBeforeDrag,
		region:             l.region.Clone(),
	}
}

// Pixels returns the layer's pixel buffer.
func (l *Layer) Pixels() *Pixmap { return l.pixels }

// SetPixels replaces the pixel buffer and re-initialises the mask to match.
// A nil pixmap is ignored.
func (l *Layer) SetPixels(pm *Pixmap) {
	if pm == nil {
		return
	}
	l.pixels = pm
	l.region.InitializeMask(pm.height, pm.width)
}

// Region returns the layer's region manager.
func (l *Layer) Region() *Region { return l.region }

// Mask returns the layer's alpha mask. See Region.Mask.
func (l *Layer) Mask() *Mask { return l.region.Mask() }

// Position returns the top-left corner in scene coordinates.
func (l *Layer) Position() Point { return l.position }

// SetPosition moves the layer.
func (l *Layer) SetPosition(p Point) { l.position = p }

// PositionBeforeDrag returns the drag baseline.
func (l *Layer) PositionBeforeDrag() Point { return l.positionBeforeDrag }

// Selected reports whether the layer takes part in the current selection.
func (l *Layer) Selected() bool { return l.selected }

// SetSelected sets the selection flag.
func (l *Layer) SetSelected(v bool) { l.selected = v }

// Promoted reports whether the layer is the floating selection.
func (l *Layer) Promoted() bool { return l.promoted }

// Size returns the pixel buffer dimensions.
func (l *Layer) Size() Point { return l.pixels.Size() }

// Bounds returns the layer's extent in scene coordinates.
func (l *Layer) Bounds() image.Rectangle {
	return Rect{X: l.position.X, Y: l.position.Y, W: l.pixels.width, H: l.pixels.height}.Image()
}

// ContainsPoint reports whether the scene point p hits the layer.
// Both edges are inclusive.
func (l *Layer) ContainsPoint(p Point) bool {
	lo := l.position
	hi := l.position.Add(l.pixels.Size())
	return lo.X <= p.X && p.X <= hi.X && lo.Y <= p.Y && p.Y <= hi.Y
}

// ToLocal converts a scene point to the layer's pixel coordinates.
func (l *Layer) ToLocal(p Point) Point {
	return p.Sub(l.position)
}

// ExtractSelection copies the selected area into a new promoted layer placed
// at the same scene position. A polygon selection becomes the new layer's
// mask. It returns nil when there is no mask or the selection is empty.
func (l *Layer) ExtractSelection() *Layer {
	mask := l.region.Mask()
	if mask == nil {
		return nil
	}
	rect := l.region.BoundingRect()
	if rect.Empty() {
		return nil
	}

	out, _ := NewLayer(l.pixels.Crop(rect), l.position.Add(rect.Min()), true)
	if sel := l.region.SelectionMask(); sel != nil {
		out.region.mask = sel.Crop(rect)
		// Keep the outline, in the new layer's coordinates, for frame feedback.
		out.region.points = make([]Point, len(l.region.points))
		for i, p := range l.region.points {
			out.region.points[i] = p.Sub(rect.Min())
		}
	} else {
		out.region.mask = mask.Crop(rect)
	}
	return out
}
