package creatum

import (
	"image"
	"slices"

	"golang.org/x/image/draw"
)

// Stack is the ordered layer list of one open document.
//
// Index 0 is the base layer: it is drawn first, it is never a hit-test
// candidate and it is never deleted. Later layers draw on top of earlier
// ones. At most one layer is promoted (the floating selection).
//
// Stack is not safe for concurrent use. Operations on an empty stack or with
// out-of-range arguments are no-ops or return nil.
type Stack struct {
	layers []*Layer
	zoom   float64
	colors FrameColors
}

// NewStack creates an empty stack. Call LoadBaseImage before use.
func NewStack(opts ...StackOption) *Stack {
	o := defaultStackOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Stack{
		layers: make([]*Layer, 0, 4),
		zoom:   o.zoom,
		colors: o.colors,
	}
}

// LoadBaseImage replaces the whole document with a single base layer
// wrapping pm at the origin.
func (s *Stack) LoadBaseImage(pm *Pixmap) error {
	base, err := NewLayer(pm, Point{}, false)
	if err != nil {
		return err
	}
	clear(s.layers)
	s.layers = append(s.layers[:0], base)
	Logger().Info("creatum: base image loaded", "width", pm.width, "height", pm.height)
	return nil
}

// Len returns the number of layers including the base layer.
func (s *Stack) Len() int { return len(s.layers) }

// At returns the layer at index i, or nil if i is out of range.
func (s *Stack) At(i int) *Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// Base returns the base layer, or nil for an empty stack.
func (s *Stack) Base() *Layer { return s.At(0) }

// Layers returns the layers back to front. The slice is a copy.
func (s *Stack) Layers() []*Layer { return slices.Clone(s.layers) }

// Index returns the position of l in the stack, or -1.
func (s *Stack) Index(l *Layer) int {
	if l == nil {
		return -1
	}
	return slices.Index(s.layers, l)
}

// Add appends l on top of the stack. On an empty stack l becomes the base.
func (s *Stack) Add(l *Layer) error {
	if l == nil {
		return ErrNilLayer
	}
	s.layers = append(s.layers, l)
	return nil
}

// Delete removes l from the stack. The base layer is never removed.
// It reports whether a layer was removed.
func (s *Stack) Delete(l *Layer) bool {
	i := s.Index(l)
	if i <= 0 {
		return false
	}
	s.layers = slices.Delete(s.layers, i, i+1)
	return true
}

// ObjectAt returns the topmost non-base, non-promoted layer containing the
// scene point p, or nil.
func (s *Stack) ObjectAt(p Point) *Layer {
	for i := len(s.layers) - 1; i >= 1; i-- {
		l := s.layers[i]
		if !l.promoted && l.ContainsPoint(p) {
			return l
		}
	}
	return nil
}

// PickAt returns the layer a pointer press at p should grab: the floating
// selection when p lies on it, otherwise ObjectAt(p).
func (s *Stack) PickAt(p Point) *Layer {
	if f := s.Promoted(); f != nil && f.ContainsPoint(p) {
		return f
	}
	return s.ObjectAt(p)
}

// SelectAt applies click selection at p. A plain click selects only the hit
// layer; an additive click toggles the hit layer and leaves the others
// alone. A click on empty space clears the selection. The hit layer, if
// any, is returned.
func (s *Stack) SelectAt(p Point, additive bool) *Layer {
	return s.SelectLayer(s.ObjectAt(p), additive)
}

// SelectLayer applies click selection to l as SelectAt does for a hit
// layer. A nil or foreign l clears the selection. The base layer is never
// selected.
func (s *Stack) SelectLayer(l *Layer, additive bool) *Layer {
	if s.Index(l) <= 0 {
		s.ClearSelection()
		return nil
	}
	l.positionBeforeDrag = l.position
	if additive {
		l.selected = !l.selected
	} else {
		s.ClearSelection()
		l.selected = true
	}
	return l
}

// Selected returns the selected layers back to front.
func (s *Stack) Selected() []*Layer {
	var out []*Layer
	for _, l := range s.layers {
		if l.selected {
			out = append(out, l)
		}
	}
	return out
}

// ActiveObject returns the first selected layer, or the base layer when
// nothing is selected.
func (s *Stack) ActiveObject() *Layer {
	for _, l := range s.layers {
		if l.selected {
			return l
		}
	}
	return s.Base()
}

// UpdateSelectedPosition moves every selected layer to its drag baseline
// plus delta. Repeated calls during one drag do not accumulate.
func (s *Stack) UpdateSelectedPosition(delta Point) {
	for _, l := range s.layers[min(1, len(s.layers)):] {
		if l.selected {
			l.position = l.positionBeforeDrag.Add(delta)
		}
	}
}

// CommitMove makes the current position of every selected layer its new
// drag baseline.
func (s *Stack) CommitMove() {
	for _, l := range s.layers {
		if l.selected {
			l.positionBeforeDrag = l.position
		}
	}
}

// ClearSelection deselects every layer.
func (s *Stack) ClearSelection() {
	for _, l := range s.layers {
		l.selected = false
	}
}

// Promoted returns the floating selection, or nil.
func (s *Stack) Promoted() *Layer {
	for _, l := range s.layers {
		if l.promoted {
			return l
		}
	}
	return nil
}

// ClearPromoted discards the floating selection.
func (s *Stack) ClearPromoted() {
	if p := s.Promoted(); p != nil {
		s.Delete(p)
		Logger().Debug("creatum: floating selection discarded")
	}
}

// CopyPromoted returns a clone of the floating selection for the clipboard,
// or nil if there is none. The clone is never promoted.
//
// cut is accepted for callers that distinguish cut from copy; the source
// pixels are left untouched either way.
func (s *Stack) CopyPromoted(cut bool) *Layer {
	p := s.Promoted()
	if p == nil {
		return nil
	}
	Logger().Debug("creatum: floating selection copied", "cut", cut)
	return p.Clone()
}

// Paste pushes a clone of clip on top of the stack as a selected,
// non-promoted layer and returns it. A nil clip is ignored.
func (s *Stack) Paste(clip *Layer) *Layer {
	if clip == nil {
		return nil
	}
	l := clip.Clone()
	l.selected = true
	l.promoted = false
	s.layers = append(s.layers, l)
	Logger().Debug("creatum: clipboard pasted", "x", l.position.X, "y", l.position.Y)
	return l
}

// ExtractSelection selects r, in the active object's local coordinates,
// and lifts it into a new floating selection on top of the stack. A
// previous floating selection is merged down first. It returns nil when r
// selects nothing.
func (s *Stack) ExtractSelection(r Rect) *Layer {
	return s.extract(func(reg *Region) {
		reg.ClearSelection()
		reg.SetBoundingRect(r.X, r.Y, r.W, r.H)
	})
}

// ExtractPolygon is like ExtractSelection for a closed polygon given in the
// active object's local coordinates.
func (s *Stack) ExtractPolygon(points []Point) *Layer {
	if len(points) < 3 {
		return nil
	}
	return s.extract(func(reg *Region) {
		reg.ClearSelection()
		reg.SetMaskPoints(points)
	})
}

func (s *Stack) extract(selectOn func(*Region)) *Layer {
	if s.Promoted() != nil {
		s.MergeSelection()
	}
	src := s.ActiveObject()
	if src == nil {
		return nil
	}
	selectOn(src.region)
	out := src.ExtractSelection()
	if out == nil {
		return nil
	}
	s.layers = append(s.layers, out)
	r := src.region.BoundingRect()
	Logger().Debug("creatum: selection promoted",
		"x", r.X, "y", r.Y, "w", r.W, "h", r.H, "polygon", len(src.region.points) > 0)
	return out
}

// MergeSelection blends the floating selection into the layer directly
// beneath it and removes it from the stack. The blend keeps the floating
// layer's scene position, whatever the position of the layer beneath. It
// reports whether a merge happened.
func (s *Stack) MergeSelection() bool {
	i := s.Index(s.Promoted())
	if i <= 0 {
		return false
	}
	promoted, below := s.layers[i], s.layers[i-1]
	mergeAt(promoted, below, promoted.position.Sub(below.position))
	s.layers = slices.Delete(s.layers, i, i+1)
	Logger().Debug("creatum: floating selection merged", "into", i-1)
	return true
}

// Adjust applies a colour adjustment to the floating selection or, when
// there is none, to every selected layer. Masks are kept. It reports
// whether any layer changed.
func (s *Stack) Adjust(kind Adjustment, param float64) bool {
	targets := s.Selected()
	if p := s.Promoted(); p != nil {
		targets = []*Layer{p}
	}
	changed := false
	for _, l := range targets {
		if out := kind.Apply(l.pixels, param); out != nil {
			l.pixels = out
			changed = true
		}
	}
	if changed {
		Logger().Debug("creatum: adjustment applied", "kind", kind.String(), "param", param, "layers", len(targets))
	}
	return changed
}

// Zoom returns the presentation zoom factor.
func (s *Stack) Zoom() float64 { return s.zoom }

// SetZoom sets the presentation zoom factor. Non-positive values are ignored.
func (s *Stack) SetZoom(zoom float64) {
	if zoom > 0 {
		s.zoom = zoom
	}
}

// Render composites the stack back to front into a new pixmap the size of
// the base layer. Promoted and selected layers get a selection frame. Layer
// pixel data is never modified. Returns nil for an empty stack.
func (s *Stack) Render() *Pixmap {
	if len(s.layers) == 0 {
		return nil
	}
	acc := s.layers[0].Clone()
	for _, l := range s.layers[1:] {
		overlay := l.Clone()
		if l.promoted {
			overlay.drawSelectionFrame(TransformNone, s.zoom, s.colors)
		}
		if l.selected {
			overlay.drawSelectionFrame(TransformScale, s.zoom, s.colors)
		}
		mergeAt(overlay, acc, overlay.position.Sub(acc.position))
	}
	return acc.pixels
}

// RenderZoomed renders the stack and scales the result by the zoom factor
// with bilinear filtering. Returns nil for an empty stack.
func (s *Stack) RenderZoomed() *image.RGBA {
	pm := s.Render()
	if pm == nil {
		return nil
	}
	src := pm.ToImage()
	if s.zoom == 1 {
		return src
	}
	w := max(1, int(float64(pm.width)*s.zoom))
	h := max(1, int(float64(pm.height)*s.zoom))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
