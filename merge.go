package creatum

import "github.com/creatumlibre/creatum/internal/parallel"

// Merge alpha-blends from onto to at from's scene position, clipped to the
// bounds of to's pixel buffer. The blend for every covered channel is
//
//	out = overlay*alpha + dest*(1-alpha)
//
// where alpha comes from from's mask, or is 1 when from has no mask.
// The result is truncated toward zero to 8 bits. to is never resized.
//
// Merge has no failure mode: nil layers, empty overlays and overlays lying
// entirely outside the destination are no-ops.
func Merge(from, to *Layer) {
	if from == nil || to == nil {
		return
	}
	mergeAt(from, to, from.position)
}

// mergeAt blends from onto to with from's top-left corner at pos in to's
// local pixel coordinates.
func mergeAt(from, to *Layer, pos Point) {
	overlay := from.pixels
	mask := from.region.Mask()
	base := to.pixels

	if overlay.width < 1 || overlay.height < 1 {
		return
	}

	topLeft := pos.Max(Point{})
	bottomRight := pos.Add(overlay.Size()).Min(base.Size())
	if topLeft.X >= bottomRight.X || topLeft.Y >= bottomRight.Y {
		return
	}

	src := topLeft.Sub(pos)
	span := bottomRight.Sub(topLeft)

	blendRows := func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			oi := overlay.offset(src.X, src.Y+y)
			bi := base.offset(topLeft.X, topLeft.Y+y)
			for x := 0; x < span.X; x++ {
				alpha := float32(1)
				if mask != nil {
					alpha = mask.At(src.X+x, src.Y+y)
				}
				for c := 0; c < Channels; c++ {
					o := float32(overlay.data[oi+c])
					d := float32(base.data[bi+c])
					base.data[bi+c] = truncate8(o*alpha + d*(1-alpha))
				}
				oi += Channels
				bi += Channels
			}
		}
	}

	if span.X*span.Y < parallelMergeArea {
		blendRows(0, span.Y)
		return
	}
	parallel.Default().Rows(span.Y, mergeBandRows, blendRows)
}

// Overlaps smaller than parallelMergeArea pixels are blended on the calling
// goroutine; larger ones are split into bands of at least mergeBandRows rows.
const (
	parallelMergeArea = 256 * 256
	mergeBandRows     = 32
)

// truncate8 converts a blended value to a byte, rounding toward zero.
func truncate8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
