package creatum

import (
	"math"
	"slices"
)

// polyEdge is a non-horizontal polygon edge with y0 < y1.
type polyEdge struct {
	x0, y0 float64
	x1, y1 float64
}

// RasterizePolygon fills the closed polygon described by points into a new
// width×height mask using the even-odd rule. A pixel is covered when its
// centre lies inside the polygon. Fewer than three points yield an empty mask.
func RasterizePolygon(points []Point, width, height int) *Mask {
	mask := NewMask(width, height)
	if len(points) < 3 {
		return mask
	}

	edges := make([]polyEdge, 0, len(points))
	for i := range points {
		p0 := points[i]
		p1 := points[(i+1)%len(points)]
		if p0.Y == p1.Y {
			continue
		}
		if p0.Y > p1.Y {
			p0, p1 = p1, p0
		}
		edges = append(edges, polyEdge{
			x0: float64(p0.X), y0: float64(p0.Y),
			x1: float64(p1.X), y1: float64(p1.Y),
		})
	}
	if len(edges) == 0 {
		return mask
	}

	var xs []float64
	for y := 0; y < height; y++ {
		xs = scanlineCrossings(edges, float64(y)+0.5, xs[:0])
		for i := 0; i+1 < len(xs); i += 2 {
			// Pixel x is covered when x+0.5 lies in [xs[i], xs[i+1]).
			start := int(math.Ceil(xs[i] - 0.5))
			end := int(math.Ceil(xs[i+1] - 0.5))
			start = max(start, 0)
			end = min(end, width)
			for x := start; x < end; x++ {
				mask.data[y*width+x] = 1
			}
		}
	}
	return mask
}

// scanlineCrossings appends the sorted x coordinates where the edges cross
// the horizontal line at scanY.
func scanlineCrossings(edges []polyEdge, scanY float64, xs []float64) []float64 {
	for _, e := range edges {
		if e.y0 <= scanY && scanY < e.y1 {
			t := (scanY - e.y0) / (e.y1 - e.y0)
			xs = append(xs, e.x0+t*(e.x1-e.x0))
		}
	}
	slices.Sort(xs)
	return xs
}
