package creatum

import "slices"

// Region tracks the selected sub-area of one layer and the visibility mask
// used when the layer is composited.
//
// All coordinates are local to the owning layer's pixel buffer.
type Region struct {
	mask   *Mask
	rect   Rect
	points []Point
}

// NewRegion returns a Region without a mask. Until InitializeMask is called
// Mask returns nil, which compositing treats as fully opaque.
func NewRegion() *Region {
	return &Region{}
}

// InitializeMask allocates a fully opaque mask of the given size and drops
// any previous selection.
func (r *Region) InitializeMask(height, width int) {
	r.mask = NewOpaqueMask(width, height)
	r.ClearSelection()
}

// Mask returns the layer's alpha mask, or nil before InitializeMask.
func (r *Region) Mask() *Mask {
	return r.mask
}

// SetBoundingRect records the active rectangular selection. Negative sizes
// are normalised and the result is clamped to the mask bounds when a mask
// exists.
func (r *Region) SetBoundingRect(x, y, w, h int) {
	rect := Rect{X: x, Y: y, W: w, H: h}.Canon()
	if r.mask != nil {
		rect = rect.Intersect(Rect{W: r.mask.width, H: r.mask.height})
	}
	r.rect = rect
}

// BoundingRect returns the active selection rectangle.
func (r *Region) BoundingRect() Rect {
	return r.rect
}

// HasSelection reports whether a non-empty selection is active.
func (r *Region) HasSelection() bool {
	return !r.rect.Empty()
}

// SetMaskPoints stores a polygon selection path. With three or more points
// the bounding rectangle is set to the polygon's bounding box.
func (r *Region) SetMaskPoints(points []Point) {
	r.points = slices.Clone(points)
	if len(points) >= 3 {
		b := boundsOf(points)
		r.SetBoundingRect(b.X, b.Y, b.W, b.H)
	}
}

// MaskPoints returns the stored polygon path.
func (r *Region) MaskPoints() []Point {
	return r.points
}

// SelectionMask rasterises the polygon selection over the full mask area and
// composes it with the layer mask. It returns nil when there is no polygon
// selection or no mask.
func (r *Region) SelectionMask() *Mask {
	if r.mask == nil || len(r.points) < 3 {
		return nil
	}
	sel := RasterizePolygon(r.points, r.mask.width, r.mask.height)
	sel.Multiply(r.mask)
	return sel
}

// ClearSelection drops the rectangle and polygon selection.
func (r *Region) ClearSelection() {
	r.rect = Rect{}
	r.points = nil
}

// Clone returns a deep copy of the region.
func (r *Region) Clone() *Region {
	c := &Region{rect: r.rect, points: slices.Clone(r.points)}
	if r.mask != nil {
		c.mask = r.mask.Clone()
	}
	return c
}
