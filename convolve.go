package bitmap

import (
	"fmt"

	"github.com/gogpu/bitmap/pixel"
)

// Kernel3x3 is the 3x3 neighborhood of one pixel, row-major with P22 at
// the center. Neighbors outside the image repeat the nearest edge pixel.
type Kernel3x3[T any] struct {
	P11, P12, P13 T
	P21, P22, P23 T
	P31, P32, P33 T
}

// rows3 is a rolling window over three consecutive source rows.
// row1 is y-1, row2 is y and row3 is y+1.
type rows3[T any] struct {
	row1, row2, row3 []T
}

// roll advances the window one row. The old row1 becomes row3 and must be
// reloaded before use.
func (r *rows3[T]) roll() {
	r.row1, r.row2, r.row3 = r.row2, r.row3, r.row1
}

// kernel gathers the neighborhood for columns (l, c, rr).
func (r *rows3[T]) kernel(l, c, rr int) Kernel3x3[T] {
	return Kernel3x3[T]{
		P11: r.row1[l], P12: r.row1[c], P13: r.row1[rr],
		P21: r.row2[l], P22: r.row2[c], P23: r.row2[rr],
		P31: r.row3[l], P32: r.row3[c], P33: r.row3[rr],
	}
}

// evalRow evaluates fn for every column of the window and stores the
// results in out. The first and last columns replicate the edge.
func evalRow[T, R any](r *rows3[T], out []R, fn func(Kernel3x3[T]) R) {
	w := len(out)
	if w == 1 {
		out[0] = fn(r.kernel(0, 0, 0))
		return
	}

	out[0] = fn(r.kernel(0, 0, 1))
	for x := 1; x < w-1; x++ {
		out[x] = fn(r.kernel(x-1, x, x+1))
	}
	out[w-1] = fn(r.kernel(w-2, w-1, w-1))
}

// convolveRows drives the rolling window over height rows of width pixels.
//
// load fills a window row with source row y. rowOut returns the row that
// receives the results for row y and commit, if not nil, is called once
// that row is complete. Source row y+1 is always loaded before results for
// row y are written, so rowOut may alias the source.
func convolveRows[T, R any](width, height int, load func(y int, row []T),
	fn func(Kernel3x3[T]) R, rowOut func(y int) []R, commit func(y int)) {
	r1, release1 := borrowRow[T](width)
	defer release1()
	r2, release2 := borrowRow[T](width)
	defer release2()
	r3, release3 := borrowRow[T](width)
	defer release3()

	r := rows3[T]{row1: r1, row2: r2, row3: r3}

	// Top edge: row -1 repeats row 0.
	load(0, r.row2)
	copy(r.row3, r.row2)

	for y := range height {
		r.roll()
		load(min(height-1, y+1), r.row3)

		evalRow(&r, rowOut(y), fn)
		if commit != nil {
			commit(y)
		}
	}
}

// Apply replaces every pixel of v with fn evaluated over its 3x3
// neighborhood. Only three rows of working memory are used, whatever the
// height of v.
func Apply[T any](v View, fn func(Kernel3x3[T]) T) error {
	if err := checkView[T](v); err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	convolveRows(v.width, v.height,
		func(y int, row []T) { copy(row, PixelRow[T](v, y)) },
		fn,
		func(y int) []T { return PixelRow[T](v, y) },
		nil)
	return nil
}

// ApplyTyped is Apply with the kernel evaluated in a different pixel type
// K, typically a float type that can sum without overflow. Rows are
// converted T to K when loaded and K to T when stored; both converters
// must exist.
func ApplyTyped[T, K any](v View, fn func(Kernel3x3[K]) K) error {
	if err := checkView[T](v); err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	if _, err := pixelSizeOf[K](); err != nil {
		return fmt.Errorf("apply kernel type: %w", err)
	}
	toK, err := LookupConverter[T, K]()
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}
	toT, err := LookupConverter[K, T]()
	if err != nil {
		return fmt.Errorf("apply: %w", err)
	}

	out, release := borrowRow[K](v.width)
	defer release()

	convolveRows(v.width, v.height,
		func(y int, row []K) { toK(PixelRow[T](v, y), row) },
		fn,
		func(int) []K { return out },
		func(y int) { toT(out, PixelRow[T](v, y)) })
	return nil
}

// Copy writes fn evaluated over every 3x3 neighborhood of src into dst.
// src and dst must have the same dimensions.
func Copy[T any](src, dst View, fn func(Kernel3x3[T]) T) error {
	if err := checkView[T](src); err != nil {
		return fmt.Errorf("copy source: %w", err)
	}
	if err := checkView[T](dst); err != nil {
		return fmt.Errorf("copy destination: %w", err)
	}
	if src.width != dst.width || src.height != dst.height {
		return fmt.Errorf("copy: %w: %dx%d != %dx%d", ErrDimensionMismatch,
			src.width, src.height, dst.width, dst.height)
	}

	convolveRows(src.width, src.height,
		func(y int, row []T) { copy(row, PixelRow[T](src, y)) },
		fn,
		func(y int) []T { return PixelRow[T](dst, y) },
		nil)
	return nil
}

// Process evaluates fn over every 3x3 neighborhood of src and passes each
// result to output in row-major order. src is not modified.
func Process[T, R any](src View, fn func(Kernel3x3[T]) R, output func(x, y int, value R)) error {
	if err := checkView[T](src); err != nil {
		return fmt.Errorf("process: %w", err)
	}

	out := make([]R, src.width)
	convolveRows(src.width, src.height,
		func(y int, row []T) { copy(row, PixelRow[T](src, y)) },
		fn,
		func(int) []R { return out },
		func(y int) {
			for x, v := range out {
				output(x, y, v)
			}
		})
	return nil
}

// Center returns the center pixel. As a kernel it leaves an image
// unchanged.
func Center[T any](k Kernel3x3[T]) T {
	return k.P22
}

// BoxMeanGray8 averages the neighborhood, rounding to nearest.
func BoxMeanGray8(k Kernel3x3[pixel.Gray8]) pixel.Gray8 {
	sum := uint32(k.P11) + uint32(k.P12) + uint32(k.P13) +
		uint32(k.P21) + uint32(k.P22) + uint32(k.P23) +
		uint32(k.P31) + uint32(k.P32) + uint32(k.P33)
	return pixel.Gray8((sum + 4) / 9)
}

// BoxMeanGray32F averages the neighborhood.
func BoxMeanGray32F(k Kernel3x3[pixel.Gray32F]) pixel.Gray32F {
	return (k.P11 + k.P12 + k.P13 + k.P21 + k.P22 + k.P23 + k.P31 + k.P32 + k.P33) / 9
}

// BoxMeanRGBA128F averages the neighborhood per channel.
func BoxMeanRGBA128F(k Kernel3x3[pixel.RGBA128F]) pixel.RGBA128F {
	var sum pixel.RGBA128F
	for _, p := range [9]pixel.RGBA128F{k.P11, k.P12, k.P13, k.P21, k.P22, k.P23, k.P31, k.P32, k.P33} {
		sum.R += p.R
		sum.G += p.G
		sum.B += p.B
		sum.A += p.A
	}
	return pixel.RGBA128F{R: sum.R / 9, G: sum.G / 9, B: sum.B / 9, A: sum.A / 9}
}

// SobelGray32F returns the gradient magnitude of the neighborhood,
// approximated as |Gx| + |Gy| and clamped to 1.
func SobelGray32F(k Kernel3x3[pixel.Gray32F]) pixel.Gray32F {
	gx := (k.P13 + 2*k.P23 + k.P33) - (k.P11 + 2*k.P21 + k.P31)
	gy := (k.P31 + 2*k.P32 + k.P33) - (k.P11 + 2*k.P12 + k.P13)
	m := abs32(gx) + abs32(gy)
	return min(m, 1)
}

func abs32(v pixel.Gray32F) pixel.Gray32F {
	if v < 0 {
		return -v
	}
	return v
}
