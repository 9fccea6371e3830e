package creatum

import "image"

// Rect is an integer rectangle given by its top-left corner and size.
// A Rect with zero area means "no selection".
type Rect struct {
	X, Y int
	W, H int
}

// NormalizeRect builds a Rect from two arbitrary corner points, sorting the
// coordinates so that W and H are never negative.
func NormalizeRect(a, b Point) Rect {
	lo := a.Min(b)
	hi := a.Max(b)
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.X, Y: r.Y} }

// Max returns the exclusive bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.X + r.W, Y: r.Y + r.H} }

// Size returns the rectangle dimensions as a vector.
func (r Rect) Size() Point { return Point{X: r.W, Y: r.H} }

// Empty reports whether the rectangle has zero area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Canon returns r with a negative width or height flipped around its origin.
func (r Rect) Canon() Rect {
	return NormalizeRect(r.Min(), r.Max())
}

// Intersect returns the largest rectangle contained by both r and s.
// If they do not overlap the zero Rect is returned.
func (r Rect) Intersect(s Rect) Rect {
	lo := r.Min().Max(s.Min())
	hi := r.Max().Min(s.Max())
	if lo.X >= hi.X || lo.Y >= hi.Y {
		return Rect{}
	}
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X, H: hi.Y - lo.Y}
}

// Offset returns r translated by d.
func (r Rect) Offset(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// boundsOf returns the bounding box of a point cloud, with the maximum
// corner made exclusive.
func boundsOf(points []Point) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	lo, hi := points[0], points[0]
	for _, p := range points[1:] {
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return Rect{X: lo.X, Y: lo.Y, W: hi.X - lo.X + 1, H: hi.Y - lo.Y + 1}
}
