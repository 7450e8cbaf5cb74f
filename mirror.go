package bitmap

import (
	"fmt"
	"slices"

	"github.com/gogpu/bitmap/internal/parallel"
	"github.com/gogpu/bitmap/internal/scratch"
)

// Mirror flips v in place. A vertical flip swaps rows top to bottom; a
// horizontal flip reverses the pixel order of every row. Both may be
// requested in one call, which rotates the image by 180 degrees.
//
// Horizontal flips need a whole-pixel type to reverse with, so they are
// limited to pixel sizes of 1, 2, 3, 4, 8, 12 and 16 bytes; other sizes
// return ErrUnsupportedPixelSize before any pixel is moved. A vertical
// flip alone moves whole rows and accepts any pixel size. Large
// horizontal flips are split over four goroutines unless disabled with
// WithMultithreading(false).
func Mirror(v View, horizontal, vertical bool, opts ...MirrorOption) error {
	o := defaultMirrorOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if v.IsEmpty() {
		return fmt.Errorf("mirror: %w", ErrInvalidDimensions)
	}

	var reverse func(row []byte)
	if horizontal {
		var err error
		if reverse, err = rowReverser(v.pixelSize); err != nil {
			return fmt.Errorf("mirror: %w", err)
		}
	}

	if vertical {
		flipVertical(v)
	}
	if horizontal {
		return flipHorizontal(v, reverse, o)
	}
	return nil
}

// rowReverser returns a function that reverses the pixels of one row for
// the given pixel size.
func rowReverser(size int) (func(row []byte), error) {
	switch size {
	case 1:
		return slices.Reverse[[]byte], nil
	case 2:
		return reverseAs[[2]byte], nil
	case 3:
		return reverseAs[[3]byte], nil
	case 4:
		return reverseAs[[4]byte], nil
	case 8:
		return reverseAs[[8]byte], nil
	case 12:
		return reverseAs[[12]byte], nil
	case 16:
		return reverseAs[[16]byte], nil
	}
	return nil, fmt.Errorf("%w: %d bytes", ErrUnsupportedPixelSize, size)
}

// reverseAs reverses row as a slice of P.
func reverseAs[P any](row []byte) {
	slices.Reverse(castSlice[P](row))
}

// flipVertical swaps row i with row h-1-i through one scratch row.
func flipVertical(v View) {
	tmp := scratch.Get(v.RowBytes())
	defer scratch.Put(tmp)

	for top, bottom := 0, v.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a, b := v.Row(top), v.Row(bottom)
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// flipHorizontal reverses every row, splitting the rows into disjoint
// ranges when the image is tall enough.
func flipHorizontal(v View, reverse func(row []byte), o mirrorOptions) error {
	if !o.multithreading || v.height < o.parallelThreshold {
		Logger().Debug("bitmap: mirror", "path", "sequential", "height", v.height)
		for y := range v.height {
			reverse(v.Row(y))
		}
		return nil
	}

	Logger().Debug("bitmap: mirror", "path", "partitioned", "height", v.height, "workers", mirrorWorkers)
	return parallel.Rows(v.height, mirrorWorkers, func(r parallel.Range) error {
		for y := r.Start; y < r.End; y++ {
			reverse(v.Row(y))
		}
		return nil
	})
}
