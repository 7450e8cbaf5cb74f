package bitmap

import (
	"fmt"
	"reflect"
	"sync"
	"unsafe"

	"github.com/gogpu/bitmap/pixel"
)

// Converter converts one scanline of S pixels into D pixels.
// dst must hold at least len(src) pixels; only dst[:len(src)] is written.
type Converter[S, D any] func(src []S, dst []D)

type pairKey struct {
	src, dst reflect.Type
}

// hubCodec holds the float hub functions of one pixel type, stored as
// func(T) pixel.RGBA128F and func(pixel.RGBA128F) T.
type hubCodec struct {
	decode any
	encode any
}

// registry maps pixel type pairs to converters.
//
// Thread safety: guarded by mu; lookups take the read lock only.
var registry = struct {
	mu     sync.RWMutex
	pairs  map[pairKey]any
	codecs map[reflect.Type]hubCodec
}{
	pairs:  make(map[pairKey]any),
	codecs: make(map[reflect.Type]hubCodec),
}

// RegisterConverter installs a direct converter for the pair (S, D),
// replacing any previous one. Direct converters take precedence over
// conversion through the float hub.
func RegisterConverter[S, D any](fn Converter[S, D]) {
	key := pairKey{reflect.TypeFor[S](), reflect.TypeFor[D]()}

	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.pairs[key] = fn
}

// RegisterPixel makes T convertible to and from every other registered
// pixel type through pixel.RGBA128F. Either function may be nil to
// register one direction only.
func RegisterPixel[T any](decode func(T) pixel.RGBA128F, encode func(pixel.RGBA128F) T) {
	t := reflect.TypeFor[T]()

	registry.mu.Lock()
	defer registry.mu.Unlock()
	c := registry.codecs[t]
	if decode != nil {
		c.decode = decode
	}
	if encode != nil {
		c.encode = encode
	}
	registry.codecs[t] = c
}

// LookupConverter returns a scanline converter from S to D.
//
// Identical types convert by copying. Otherwise a registered direct
// converter is used, and failing that the pair is composed through the
// float hub when S can be decoded and D can be encoded. It returns
// ErrNoConverter when none of these apply.
func LookupConverter[S, D any]() (Converter[S, D], error) {
	st, dt := reflect.TypeFor[S](), reflect.TypeFor[D]()
	if st == dt {
		return copyConverter[S, D], nil
	}

	registry.mu.RLock()
	direct, hasDirect := registry.pairs[pairKey{st, dt}]
	from := registry.codecs[st]
	to := registry.codecs[dt]
	registry.mu.RUnlock()

	if hasDirect {
		if fn, ok := direct.(Converter[S, D]); ok {
			return fn, nil
		}
	}

	decode, okDecode := from.decode.(func(S) pixel.RGBA128F)
	encode, okEncode := to.encode.(func(pixel.RGBA128F) D)
	if okDecode && okEncode {
		return func(src []S, dst []D) {
			dst = dst[:len(src)]
			for i, p := range src {
				dst[i] = encode(decode(p))
			}
		}, nil
	}

	Logger().Debug("bitmap: no pixel converter", "src", st.String(), "dst", dt.String())
	return nil, fmt.Errorf("%w: %s to %s", ErrNoConverter, st, dt)
}

// copyConverter is the converter between a type and itself.
func copyConverter[S, D any](src []S, dst []D) {
	copy(castSlice[S](dst), src)
}

// castSlice reinterprets a slice of U as a slice of T covering the same
// bytes. Both types must be plain data.
func castSlice[T, U any](s []U) []T {
	if len(s) == 0 {
		return nil
	}
	n := len(s) * SizeOf[U]() / SizeOf[T]()
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(s))), n)
}

// Convert converts every pixel of src into dst. Both views must have the
// same dimensions.
func Convert[S, D any](src, dst View) error {
	if err := checkView[S](src); err != nil {
		return fmt.Errorf("convert source: %w", err)
	}
	if err := checkView[D](dst); err != nil {
		return fmt.Errorf("convert destination: %w", err)
	}
	if src.width != dst.width || src.height != dst.height {
		return fmt.Errorf("%w: %dx%d != %dx%d", ErrDimensionMismatch, src.width, src.height, dst.width, dst.height)
	}

	conv, err := LookupConverter[S, D]()
	if err != nil {
		return err
	}
	for y := range src.height {
		conv(PixelRow[S](src, y), PixelRow[D](dst, y))
	}
	return nil
}

func init() {
	RegisterPixel(pixel.Gray8.RGBA128F, pixel.RGBA128F.Gray8)
	RegisterPixel(pixel.Gray16.RGBA128F, pixel.RGBA128F.Gray16)
	RegisterPixel(pixel.BGR565.RGBA128F, pixel.RGBA128F.BGR565)
	RegisterPixel(pixel.RGB24.RGBA128F, pixel.RGBA128F.RGB24)
	RegisterPixel(pixel.BGR24.RGBA128F, pixel.RGBA128F.BGR24)
	RegisterPixel(pixel.RGBA32.RGBA128F, pixel.RGBA128F.RGBA32)
	RegisterPixel(pixel.BGRA32.RGBA128F, pixel.RGBA128F.BGRA32)
	RegisterPixel(pixel.Gray32F.RGBA128F, pixel.RGBA128F.Gray32F)
	RegisterPixel(pixel.RGBA64H.RGBA128F, pixel.RGBA128F.RGBA64H)
	RegisterPixel(pixel.RGB96F.RGBA128F, pixel.RGBA128F.RGB96F)
	RegisterPixel(pixel.RGBA128F.RGBA128F, pixel.RGBA128F.RGBA128F)

	RegisterConverter[pixel.Gray8, pixel.Gray32F](pixel.Gray8ToGray32F)
	RegisterConverter[pixel.Gray32F, pixel.Gray8](pixel.Gray32FToGray8)
	RegisterConverter[pixel.BGR24, pixel.RGB24](pixel.BGR24ToRGB24)
	RegisterConverter[pixel.RGB24, pixel.BGR24](pixel.RGB24ToBGR24)
	RegisterConverter[pixel.BGRA32, pixel.RGBA32](pixel.BGRA32ToRGBA32)
	RegisterConverter[pixel.RGBA32, pixel.BGRA32](pixel.RGBA32ToBGRA32)
	RegisterConverter[pixel.BGR24, pixel.BGRA32](pixel.BGR24ToBGRA32)
	RegisterConverter[pixel.RGB24, pixel.RGBA32](pixel.RGB24ToRGBA32)
}
