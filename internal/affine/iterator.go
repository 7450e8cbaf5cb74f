// Package affine implements the fixed-point coordinate walk used by the
// nearest-neighbor resampler.
//
// A destination row is mapped back into source space once: its leftmost
// pixel gives an origin and the X basis vector (1, 0) gives a per-column
// step. Both are scaled by 2^BitShift and held as integers, so advancing
// one column costs two additions and two shifts.
package affine

import (
	"math"

	"golang.org/x/image/math/f64"
)

const (
	// BitShift is the number of fractional bits.
	BitShift = 14

	// One is 1.0 in fixed point.
	One = 1 << BitShift

	// Half is 0.5 in fixed point. It is added to every origin so that the
	// right shift rounds to nearest instead of flooring.
	Half = One >> 1

	fracMask = One - 1

	// MaxDimension is the largest width or height, in pixels, whose
	// fixed-point coordinates stay within int32 range.
	MaxDimension = math.MaxInt32 >> BitShift
)

// limit saturates fixed-point values so that a degenerate transform cannot
// overflow the accumulators while walking a row.
const limit = float64(1 << 40)

// Iterator walks one destination row in source space.
// The zero value is not useful; use NewIterator.
type Iterator struct {
	x, y   int64 // current source position, fixed point, half-pixel biased
	dx, dy int64 // step per destination column, fixed point
	maxX   int   // last valid source column
	maxY   int   // last valid source row
}

// NewIterator starts a walk at destination pixel (x, y). inv maps
// destination coordinates to source coordinates; width and height are the
// source dimensions used for bounds tests.
func NewIterator(inv f64.Aff3, x, y, width, height int) Iterator {
	fx, fy := float64(x), float64(y)
	sx := inv[0]*fx + inv[1]*fy + inv[2]
	sy := inv[3]*fx + inv[4]*fy + inv[5]

	return Iterator{
		x:    toFixed(sx) + Half,
		y:    toFixed(sy) + Half,
		dx:   toFixed(inv[0]),
		dy:   toFixed(inv[3]),
		maxX: width - 1,
		maxY: height - 1,
	}
}

// toFixed converts v to fixed point, rounding to nearest and saturating.
func toFixed(v float64) int64 {
	v *= One
	switch {
	case v != v: // NaN
		return 0
	case v > limit:
		return int64(limit)
	case v < -limit:
		return -int64(limit)
	}
	return int64(math.Round(v))
}

// Step returns the per-column step in fixed point.
func (it *Iterator) Step() (dx, dy int) {
	return int(it.dx), int(it.dy)
}

// Next returns the source pixel nearest to the current position and
// advances one column. The result is not bounds checked.
func (it *Iterator) Next() (x, y int) {
	x = int(it.x >> BitShift)
	y = int(it.y >> BitShift)
	it.x += it.dx
	it.y += it.dy
	return x, y
}

// NextInBounds is Next with a bounds test: ok is false when the source
// pixel lies outside the source image.
func (it *Iterator) NextInBounds() (x, y int, ok bool) {
	x, y = it.Next()
	ok = uint(x) <= uint(it.maxX) && uint(y) <= uint(it.maxY)
	return x, y, ok
}

// NextFrac returns the source pixel at or left/above the exact position,
// together with the fractional offsets in [0, One), then advances one
// column. It does not apply the rounding bias, so it suits interpolating
// samplers rather than nearest-neighbor lookup.
func (it *Iterator) NextFrac() (x, y, fx, fy int) {
	px := it.x - Half
	py := it.y - Half
	it.x += it.dx
	it.y += it.dy
	return int(px >> BitShift), int(py >> BitShift), int(px & fracMask), int(py & fracMask)
}

// NextInBoundsFrac is NextFrac with a bounds test on the floor coordinate.
func (it *Iterator) NextInBoundsFrac() (x, y, fx, fy int, ok bool) {
	x, y, fx, fy = it.NextFrac()
	ok = uint(x) <= uint(it.maxX) && uint(y) <= uint(it.maxY)
	return x, y, fx, fy, ok
}

// Clamp limits a source coordinate pair to the source image.
func (it *Iterator) Clamp(x, y int) (int, int) {
	return min(max(x, 0), it.maxX), min(max(y, 0), it.maxY)
}
