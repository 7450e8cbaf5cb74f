package bitmap

import (
	"fmt"
	"image"
	"math"
	"reflect"
	"sync"
	"unsafe"
)

// View is a non-owning descriptor of a rectangular pixel buffer.
//
// A View never copies or retains the memory it describes; the caller keeps
// ownership and must keep the memory alive and unshared for the duration of
// every call the view is passed to. Rows are stride bytes apart and hold
// width pixels of pixelSize bytes each. Padding bytes between rows are never
// read or written.
//
// View is a small value type and is meant to be passed by value.
type View struct {
	data      []byte
	width     int
	height    int
	pixelSize int
	stride    int
}

// NewView describes existing memory as a bitmap without copying.
// A stride of 0 means rows are tightly packed (width * pixelSize).
// The last row does not need trailing padding.
func NewView(data []byte, width, height, pixelSize, stride int) (View, error) {
	if width <= 0 || height <= 0 {
		return View{}, ErrInvalidDimensions
	}
	if pixelSize <= 0 {
		return View{}, ErrInvalidPixelSize
	}

	if width > math.MaxInt/pixelSize {
		return View{}, fmt.Errorf("%w: row of %d pixels of %d bytes overflows", ErrInvalidDimensions, width, pixelSize)
	}
	rowBytes := width * pixelSize
	if stride == 0 {
		stride = rowBytes
	}
	if stride < rowBytes {
		return View{}, ErrInvalidStride
	}
	if height-1 > (math.MaxInt-rowBytes)/stride {
		return View{}, fmt.Errorf("%w: %d rows of stride %d overflow", ErrInvalidDimensions, height, stride)
	}

	required := stride*(height-1) + rowBytes
	if len(data) < required {
		return View{}, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), required)
	}

	return View{
		data:      data[:required],
		width:     width,
		height:    height,
		pixelSize: pixelSize,
		stride:    stride,
	}, nil
}

// ViewOf describes a tightly packed slice of pixels as a bitmap.
func ViewOf[T any](pixels []T, width, height int) (View, error) {
	size, err := pixelSizeOf[T]()
	if err != nil {
		return View{}, err
	}
	if len(pixels) == 0 {
		return View{}, ErrDataTooSmall
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(pixels))), len(pixels)*size)
	return NewView(data, width, height, size, 0)
}

// Width returns the width in pixels.
func (v View) Width() int {
	return v.width
}

// Height returns the height in pixels.
func (v View) Height() int {
	return v.height
}

// PixelSize returns the number of bytes per pixel.
func (v View) PixelSize() int {
	return v.pixelSize
}

// Stride returns the number of bytes between the starts of adjacent rows.
func (v View) Stride() int {
	return v.stride
}

// RowBytes returns the number of pixel bytes in one row (excluding padding).
func (v View) RowBytes() int {
	return v.width * v.pixelSize
}

// Bounds returns the view rectangle with its origin at (0, 0).
func (v View) Bounds() image.Rectangle {
	return image.Rect(0, 0, v.width, v.height)
}

// Data returns the described memory, from the first pixel of row 0 to the
// last pixel of the last row.
func (v View) Data() []byte {
	return v.data
}

// IsEmpty returns true for the zero View.
func (v View) IsEmpty() bool {
	return v.width == 0 || v.height == 0
}

// Row returns the pixel bytes of row y, without padding.
// Returns nil if y is out of bounds.
func (v View) Row(y int) []byte {
	if y < 0 || y >= v.height {
		return nil
	}
	start := y * v.stride
	return v.data[start : start+v.width*v.pixelSize : start+v.width*v.pixelSize]
}

// Slice returns a view of the sub-rectangle at (x, y) with the given size.
// The result shares memory and stride with v.
func (v View) Slice(x, y, width, height int) (View, error) {
	if width <= 0 || height <= 0 {
		return View{}, ErrInvalidDimensions
	}
	if x < 0 || y < 0 || width > v.width-x || height > v.height-y {
		return View{}, fmt.Errorf("%w: %v not in %v", ErrOutOfBounds,
			image.Rect(x, y, x+width, y+height), v.Bounds())
	}

	start := y*v.stride + x*v.pixelSize
	end := (y+height-1)*v.stride + (x+width)*v.pixelSize

	return View{
		data:      v.data[start:end],
		width:     width,
		height:    height,
		pixelSize: v.pixelSize,
		stride:    v.stride,
	}, nil
}

// CopyTo copies every row of v into dst. Both views must have the same
// dimensions and pixel size.
func (v View) CopyTo(dst View) error {
	if v.pixelSize != dst.pixelSize {
		return fmt.Errorf("%w: %d != %d", ErrPixelSizeMismatch, v.pixelSize, dst.pixelSize)
	}
	if v.width != dst.width || v.height != dst.height {
		return fmt.Errorf("%w: %dx%d != %dx%d", ErrDimensionMismatch, v.width, v.height, dst.width, dst.height)
	}
	for y := range v.height {
		copy(dst.Row(y), v.Row(y))
	}
	return nil
}

// PixelRow returns row y of v as typed pixels, without copying.
// Returns nil if y is out of bounds.
//
// PixelRow panics if the size of T differs from v.PixelSize(); that is a
// programming error rather than a data error. Rows must be suitably aligned
// for T, which holds for buffers allocated by Go whose stride is a multiple
// of the alignment of T.
func PixelRow[T any](v View, y int) []T {
	if size := SizeOf[T](); size != v.pixelSize {
		panic(fmt.Sprintf("bitmap: PixelRow[%s] on view with %d-byte pixels", typeName[T](), v.pixelSize))
	}
	row := v.Row(y)
	if row == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(row))), v.width)
}

// SizeOf returns the byte size of the pixel type T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// plainTypes caches the result of isPlain per type.
var plainTypes sync.Map // map[reflect.Type]bool

// pixelSizeOf returns the byte size of T after checking that T can be
// reinterpreted from raw memory.
func pixelSizeOf[T any]() (int, error) {
	t := reflect.TypeFor[T]()
	plain, ok := plainTypes.Load(t)
	if !ok {
		plain = isPlain(t)
		plainTypes.Store(t, plain)
	}
	if !plain.(bool) {
		return 0, fmt.Errorf("%w: %s", ErrInvalidPixelType, t)
	}
	size := int(t.Size())
	if size == 0 {
		return 0, fmt.Errorf("%w: %s has zero size", ErrInvalidPixelType, t)
	}
	return size, nil
}

// isPlain reports whether t holds no pointers.
func isPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPlain(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !isPlain(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// checkView verifies that T matches the pixel size of v.
func checkView[T any](v View) error {
	size, err := pixelSizeOf[T]()
	if err != nil {
		return err
	}
	if v.IsEmpty() {
		return ErrInvalidDimensions
	}
	if size != v.pixelSize {
		return fmt.Errorf("%w: %s is %d bytes, view has %d", ErrPixelSizeMismatch, typeName[T](), size, v.pixelSize)
	}
	return nil
}

func typeName[T any]() string {
	return reflect.TypeFor[T]().String()
}

// sampler reads single pixels of type T from a view.
type sampler[T any] struct {
	data   []byte
	stride int
	size   int
}

func newSampler[T any](v View) sampler[T] {
	return sampler[T]{data: v.data, stride: v.stride, size: v.pixelSize}
}

// at returns the pixel at (x, y). The coordinates must be inside the view.
func (s sampler[T]) at(x, y int) T {
	return *(*T)(unsafe.Pointer(&s.data[y*s.stride+x*s.size]))
}
