package creatum

// TransformMode selects how a layer's selection frame is drawn.
type TransformMode int

// Transform modes.
const (
	// TransformNone is used for the floating selection and also draws the
	// point cloud being edited.
	TransformNone TransformMode = iota
	TransformScale
	TransformRotate
	TransformPerspective
	TransformTranslate
	TransformMultiScale
)

// String returns the mode name.
func (m TransformMode) String() string {
	switch m {
	case TransformNone:
		return "None"
	case TransformScale:
		return "Scale"
	case TransformRotate:
		return "Rotate"
	case TransformPerspective:
		return "Perspective"
	case TransformTranslate:
		return "Translate"
	case TransformMultiScale:
		return "MultiScale"
	default:
		return "Unknown"
	}
}

// FrameColors maps transform modes to frame colours.
type FrameColors map[TransformMode]RGB

// DefaultFrameColors returns the built-in frame palette.
func DefaultFrameColors() FrameColors {
	return FrameColors{
		TransformNone:       Yellow,
		TransformScale:      Magenta,
		TransformMultiScale: Blue,
	}
}

const (
	minFrameSize = 4
	vertexRadius = 3
)

// pointCloudColor is used for the polyline and vertex markers.
var pointCloudColor = Yellow

// DrawSelectionFrame draws a border in the colour of mode directly onto the
// layer's pixels. For TransformNone the stored point cloud is drawn as a
// polyline with vertex markers. Layers smaller than 4 pixels in either
// dimension are left untouched.
//
// This mutates pixel data and is meant for a Clone used as a preview.
func (l *Layer) DrawSelectionFrame(mode TransformMode, zoom float64) {
	l.drawSelectionFrame(mode, zoom, DefaultFrameColors())
}

func (l *Layer) drawSelectionFrame(mode TransformMode, zoom float64, colors FrameColors) {
	pm := l.pixels
	if pm.width < minFrameSize || pm.height < minFrameSize {
		return
	}
	c, ok := colors[mode]
	if !ok {
		c = Magenta
	}
	thickness := frameThickness(zoom)

	w, h := pm.width, pm.height
	pm.FillRect(Rect{X: 0, Y: 0, W: w, H: thickness}, c)
	pm.FillRect(Rect{X: 0, Y: h - thickness, W: w, H: thickness}, c)
	pm.FillRect(Rect{X: 0, Y: 0, W: thickness, H: h}, c)
	pm.FillRect(Rect{X: w - thickness, Y: 0, W: thickness, H: h}, c)

	points := l.region.MaskPoints()
	if mode != TransformNone || len(points) == 0 {
		return
	}
	for i := 1; i < len(points); i++ {
		drawLine(pm, points[i-1], points[i], thickness, pointCloudColor)
	}
	for _, p := range points {
		fillDisc(pm, p, vertexRadius, pointCloudColor)
	}
}

// frameThickness keeps the frame about one screen pixel wide when zoomed out.
func frameThickness(zoom float64) int {
	if zoom <= 0 {
		return 1
	}
	return max(1, int(1/zoom))
}

// drawLine draws a Bresenham line with a square pen of the given width.
func drawLine(pm *Pixmap, a, b Point, width int, c RGB) {
	d := b.Sub(a).Abs()
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	off := (width - 1) / 2
	err := d.X - d.Y
	p := a
	for {
		pm.FillRect(Rect{X: p.X - off, Y: p.Y - off, W: width, H: width}, c)
		if p == b {
			return
		}
		e2 := 2 * err
		if e2 > -d.Y {
			err -= d.Y
			p.X += sx
		}
		if e2 < d.X {
			err += d.X
			p.Y += sy
		}
	}
}

// fillDisc fills a disc of radius r centred on p.
func fillDisc(pm *Pixmap, p Point, r int, c RGB) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				pm.SetPixel(p.X+dx, p.Y+dy, c)
			}
		}
	}
}
