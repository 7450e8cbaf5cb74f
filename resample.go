package bitmap

import (
	"fmt"
	"image"
	"reflect"

	"golang.org/x/image/math/f64"

	"github.com/gogpu/bitmap/internal/affine"
)

// resampleJob is the per-call state shared by the three resampling policies.
type resampleJob[S, D any] struct {
	dst, src View
	inv      f64.Aff3
	clip     image.Rectangle
	same     bool // S and D are the same type
	sampler  sampler[S]
}

// newResampleJob validates the views and the transform. It returns a nil
// job and a nil error when the transformed source misses the destination.
func newResampleJob[S, D any](op string, dst, src View, transform Matrix) (*resampleJob[S, D], error) {
	if err := checkView[S](src); err != nil {
		return nil, fmt.Errorf("%s source: %w", op, err)
	}
	if err := checkView[D](dst); err != nil {
		return nil, fmt.Errorf("%s destination: %w", op, err)
	}
	if max(src.width, src.height, dst.width, dst.height) > affine.MaxDimension {
		return nil, fmt.Errorf("%s: %w (limit %d)", op, ErrDimensionTooLarge, affine.MaxDimension)
	}

	inv, ok := transform.Invert()
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrSingularTransform)
	}

	clip := transform.TransformRect(src.Bounds()).Intersect(dst.Bounds())
	if clip.Empty() {
		Logger().Debug("bitmap: resample clipped away", "op", op, "dst", dst.Bounds())
		return nil, nil
	}
	Logger().Debug("bitmap: resample", "op", op, "clip", clip)

	return &resampleJob[S, D]{
		dst:     dst,
		src:     src,
		inv:     inv.Aff3(),
		clip:    clip,
		same:    reflect.TypeFor[S]() == reflect.TypeFor[D](),
		sampler: newSampler[S](src),
	}, nil
}

// iterator starts the coordinate walk for destination row y.
func (j *resampleJob[S, D]) iterator(y int) affine.Iterator {
	return affine.NewIterator(j.inv, j.clip.Min.X, y, j.src.width, j.src.height)
}

// out returns the clipped part of destination row y.
func (j *resampleJob[S, D]) out(y int) []D {
	return PixelRow[D](j.dst, y)[j.clip.Min.X:j.clip.Max.X]
}

// SetPixels draws src into dst through transform using nearest-neighbor
// sampling. transform maps source coordinates to destination coordinates.
//
// Only destination pixels inside the transformed source bounds are
// visited, and of those only pixels whose sample falls inside src are
// written; the rest keep their previous content. When S and D differ the
// samples are converted with LookupConverter.
func SetPixels[S, D any](dst, src View, transform Matrix) error {
	j, err := newResampleJob[S, D]("set pixels", dst, src, transform)
	if err != nil || j == nil {
		return err
	}

	if j.same {
		for y := j.clip.Min.Y; y < j.clip.Max.Y; y++ {
			it := j.iterator(y)
			out := castSlice[S](j.out(y))
			for i := range out {
				if sx, sy, ok := it.NextInBounds(); ok {
					out[i] = j.sampler.at(sx, sy)
				}
			}
		}
		return nil
	}

	conv, err := LookupConverter[S, D]()
	if err != nil {
		return fmt.Errorf("set pixels: %w", err)
	}
	samples, release := borrowRow[S](j.clip.Dx())
	defer release()

	for y := j.clip.Min.Y; y < j.clip.Max.Y; y++ {
		it := j.iterator(y)
		out := j.out(y)
		start := -1
		for i := range out {
			sx, sy, ok := it.NextInBounds()
			if ok {
				samples[i] = j.sampler.at(sx, sy)
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				conv(samples[start:i], out[start:i])
				start = -1
			}
		}
		if start >= 0 {
			conv(samples[start:len(out)], out[start:])
		}
	}
	return nil
}

// FillPixels is like SetPixels but writes every visited destination pixel,
// clamping samples that fall outside src to its nearest edge pixel.
func FillPixels[S, D any](dst, src View, transform Matrix) error {
	j, err := newResampleJob[S, D]("fill pixels", dst, src, transform)
	if err != nil || j == nil {
		return err
	}

	if j.same {
		for y := j.clip.Min.Y; y < j.clip.Max.Y; y++ {
			it := j.iterator(y)
			out := castSlice[S](j.out(y))
			for i := range out {
				out[i] = j.sampler.at(it.Clamp(it.Next()))
			}
		}
		return nil
	}

	conv, err := LookupConverter[S, D]()
	if err != nil {
		return fmt.Errorf("fill pixels: %w", err)
	}
	samples, release := borrowRow[S](j.clip.Dx())
	defer release()

	for y := j.clip.Min.Y; y < j.clip.Max.Y; y++ {
		it := j.iterator(y)
		out := j.out(y)
		for i := range out {
			samples[i] = j.sampler.at(it.Clamp(it.Next()))
		}
		conv(samples[:len(out)], out)
	}
	return nil
}

// ComposePixels alpha-composites src onto dst through transform at the
// given opacity in [0, 1], using nearest-neighbor sampling.
//
// Opacity is quantized with QuantizeOpacity; a quantized opacity of 0
// returns without touching dst. Composition is resolved once per call:
// if S implements Compositor[D] each sample composes itself onto the
// destination pixel; otherwise, if D implements Blender[D], samples are
// converted to D and blended. Samples whose Alpha is 0 are skipped when S
// implements Alpher. ErrNoComposition is returned when neither form is
// available.
func ComposePixels[S, D any](dst, src View, transform Matrix, opacity float64) error {
	q := QuantizeOpacity(opacity)
	if q == 0 {
		if err := checkView[S](src); err != nil {
			return fmt.Errorf("compose pixels source: %w", err)
		}
		if err := checkView[D](dst); err != nil {
			return fmt.Errorf("compose pixels destination: %w", err)
		}
		return nil
	}

	var cur S
	if c, ok := any(&cur).(Compositor[D]); ok {
		j, err := newResampleJob[S, D]("compose pixels", dst, src, transform)
		if err != nil || j == nil {
			return err
		}
		Logger().Debug("bitmap: compose", "tier", "compositor", "opacity", q)
		j.composeOnto(c, &cur, q)
		return nil
	}

	var dcur D
	b, ok := any(&dcur).(Blender[D])
	if !ok {
		return fmt.Errorf("compose pixels: %w: %s onto %s", ErrNoComposition, typeName[S](), typeName[D]())
	}
	conv, err := LookupConverter[S, D]()
	if err != nil {
		return fmt.Errorf("compose pixels: %w: %w", ErrNoComposition, err)
	}

	j, err := newResampleJob[S, D]("compose pixels", dst, src, transform)
	if err != nil || j == nil {
		return err
	}
	Logger().Debug("bitmap: compose", "tier", "blender", "opacity", q)
	j.blend(b, &dcur, &cur, conv, q)
	return nil
}

// composeOnto is the compositor tier. c wraps cur, so loading a sample into
// cur selects the pixel c composes.
func (j *resampleJob[S, D]) composeOnto(c Compositor[D], cur *S, q uint8) {
	a, hasAlpha := any(cur).(Alpher)
	for y := j.clip.Min.Y; y < j.clip.Max.Y; y++ {
		it := j.iterator(y)
		out := j.out(y)
		for i := range out {
			sx, sy, ok := it.NextInBounds()
			if !ok {
				continue
			}
			*cur = j.sampler.at(sx, sy)
			if hasAlpha && a.Alpha() == 0 {
				continue
			}
			c.ComposeOnto(&out[i], q)
		}
	}
}

// blend is the blender tier. b wraps dcur; samples are collected in runs,
// converted to D, then blended one by one into the destination.
func (j *resampleJob[S, D]) blend(b Blender[D], dcur *D, cur *S, conv Converter[S, D], q uint8) {
	a, hasAlpha := any(cur).(Alpher)

	n := j.clip.Dx()
	samples, releaseSamples := borrowRow[S](n)
	defer releaseSamples()
	converted, releaseConverted := borrowRow[D](n)
	defer releaseConverted()

	flush := func(out []D, start, end int) {
		conv(samples[start:end], converted[start:end])
		for i := start; i < end; i++ {
			*dcur = out[i]
			out[i] = b.Blend(converted[i], q)
		}
	}

	for y := j.clip.Min.Y; y < j.clip.Max.Y; y++ {
		it := j.iterator(y)
		out := j.out(y)
		start := -1
		for i := range out {
			sx, sy, ok := it.NextInBounds()
			if ok {
				*cur = j.sampler.at(sx, sy)
				ok = !hasAlpha || a.Alpha() != 0
			}
			if ok {
				samples[i] = *cur
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				flush(out, start, i)
				start = -1
			}
		}
		if start >= 0 {
			flush(out, start, len(out))
		}
	}
}
