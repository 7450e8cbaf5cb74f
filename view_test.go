package bitmap

import (
	"errors"
	"image"
	"math"
	"testing"

	"github.com/gogpu/bitmap/pixel"
)

func TestNewView_Validation(t *testing.T) {
	tests := []struct {
		name      string
		dataLen   int
		width     int
		height    int
		pixelSize int
		stride    int
		wantErr   error
	}{
		{"tight", 12, 2, 2, 3, 0, nil},
		{"padded", 14, 2, 2, 3, 8, nil},
		{"last row without padding", 8 + 6, 2, 2, 3, 8, nil},
		{"zero width", 12, 0, 2, 3, 0, ErrInvalidDimensions},
		{"negative height", 12, 2, -1, 3, 0, ErrInvalidDimensions},
		{"zero pixel size", 12, 2, 2, 0, 0, ErrInvalidPixelSize},
		{"stride too small", 12, 2, 2, 3, 5, ErrInvalidStride},
		{"short data", 11, 2, 2, 3, 0, ErrDataTooSmall},
		{"empty data", 0, 1, 1, 1, 0, ErrDataTooSmall},
		{"row bytes overflow", 0, 1 << 61, 1, 8, 0, ErrInvalidDimensions},
		{"row bytes overflow max width", 0, math.MaxInt, 1, 2, 0, ErrInvalidDimensions},
		{"stride times height overflow", 0, 1, 1 << 40, 1, 1 << 30, ErrInvalidDimensions},
		{"last row overflows", 0, 1 << 62, 2, 1, 0, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewView(make([]byte, tt.dataLen), tt.width, tt.height, tt.pixelSize, tt.stride)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewView() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewView_NilData(t *testing.T) {
	if _, err := NewView(nil, 4, 4, 4, 0); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("NewView(nil) error = %v, want ErrDataTooSmall", err)
	}
}

func TestView_Accessors(t *testing.T) {
	v, err := NewView(make([]byte, 100), 3, 4, 4, 20)
	if err != nil {
		t.Fatal(err)
	}
	if v.Width() != 3 || v.Height() != 4 || v.PixelSize() != 4 || v.Stride() != 20 {
		t.Errorf("got %dx%d px=%d stride=%d", v.Width(), v.Height(), v.PixelSize(), v.Stride())
	}
	if v.RowBytes() != 12 {
		t.Errorf("RowBytes() = %d, want 12", v.RowBytes())
	}
	if v.Bounds() != image.Rect(0, 0, 3, 4) {
		t.Errorf("Bounds() = %v", v.Bounds())
	}
	if len(v.Data()) != 20*3+12 {
		t.Errorf("len(Data()) = %d, want %d", len(v.Data()), 20*3+12)
	}
	if v.IsEmpty() {
		t.Error("IsEmpty() = true")
	}
	if !(View{}).IsEmpty() {
		t.Error("zero View should be empty")
	}
}

func TestView_Row(t *testing.T) {
	data := make([]byte, 2*8)
	for i := range data {
		data[i] = byte(i)
	}
	v, err := NewView(data, 3, 2, 2, 8)
	if err != nil {
		t.Fatal(err)
	}

	row := v.Row(1)
	if len(row) != 6 || row[0] != 8 || row[5] != 13 {
		t.Errorf("Row(1) = %v", row)
	}
	if cap(row) != 6 {
		t.Errorf("cap(Row(1)) = %d, want 6 so appends cannot reach padding", cap(row))
	}
	if v.Row(-1) != nil || v.Row(2) != nil {
		t.Error("out of range Row should be nil")
	}
}

func TestView_Slice(t *testing.T) {
	pix := make([]pixel.Gray8, 5*4)
	for i := range pix {
		pix[i] = pixel.Gray8(i)
	}
	v, err := ViewOf(pix, 5, 4)
	if err != nil {
		t.Fatal(err)
	}

	sub, err := v.Slice(1, 2, 3, 2)
	if err != nil {
		t.Fatal(err)
	}
	if sub.Width() != 3 || sub.Height() != 2 || sub.Stride() != 5 {
		t.Errorf("sub = %dx%d stride %d", sub.Width(), sub.Height(), sub.Stride())
	}
	if got := PixelRow[pixel.Gray8](sub, 1); got[0] != 16 || got[2] != 18 {
		t.Errorf("sub row 1 = %v, want [16 17 18]", got)
	}

	// Writes through the sub-view land in the parent memory.
	PixelRow[pixel.Gray8](sub, 0)[0] = 200
	if pix[11] != 200 {
		t.Errorf("parent pixel = %d, want 200 (slice must not copy)", pix[11])
	}

	bad := []image.Rectangle{
		image.Rect(-1, 0, 1, 1),
		image.Rect(4, 0, 6, 1),
		image.Rect(0, 3, 1, 5),
	}
	for _, r := range bad {
		if _, err := v.Slice(r.Min.X, r.Min.Y, r.Dx(), r.Dy()); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Slice(%v) error = %v, want ErrOutOfBounds", r, err)
		}
	}
	huge := []struct{ x, y, w, h int }{
		{1, 0, math.MaxInt, 1},
		{0, 1, 1, math.MaxInt},
		{math.MaxInt, 0, 1, 1},
	}
	for _, r := range huge {
		if _, err := v.Slice(r.x, r.y, r.w, r.h); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("Slice(%d, %d, %d, %d) error = %v, want ErrOutOfBounds", r.x, r.y, r.w, r.h, err)
		}
	}
	if _, err := v.Slice(0, 0, 0, 1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("Slice with zero width error = %v", err)
	}
}

func TestView_CopyTo(t *testing.T) {
	src, _ := ViewOf([]pixel.RGB24{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}}, 2, 1)
	buf := make([]byte, 10)
	dst, _ := NewView(buf, 2, 1, 3, 10)

	if err := src.CopyTo(dst); err != nil {
		t.Fatal(err)
	}
	if got := PixelRow[pixel.RGB24](dst, 0); got[1] != (pixel.RGB24{R: 4, G: 5, B: 6}) {
		t.Errorf("CopyTo row = %v", got)
	}

	other, _ := ViewOf(make([]pixel.RGB24, 4), 2, 2)
	if err := src.CopyTo(other); !errors.Is(err, ErrDimensionMismatch) {
		t.Errorf("CopyTo size mismatch error = %v", err)
	}
	gray, _ := ViewOf(make([]pixel.Gray8, 2), 2, 1)
	if err := src.CopyTo(gray); !errors.Is(err, ErrPixelSizeMismatch) {
		t.Errorf("CopyTo pixel size mismatch error = %v", err)
	}
}

func TestPixelRow_PanicsOnSizeMismatch(t *testing.T) {
	v, _ := ViewOf(make([]pixel.Gray8, 4), 2, 2)
	defer func() {
		if recover() == nil {
			t.Error("PixelRow with wrong type did not panic")
		}
	}()
	_ = PixelRow[pixel.RGBA32](v, 0)
}

func TestViewOf_RejectsPointerTypes(t *testing.T) {
	type withPointer struct {
		p *int
	}
	if _, err := ViewOf(make([]withPointer, 4), 2, 2); !errors.Is(err, ErrInvalidPixelType) {
		t.Errorf("ViewOf(pointer type) error = %v, want ErrInvalidPixelType", err)
	}
	if _, err := ViewOf([]string{"a"}, 1, 1); !errors.Is(err, ErrInvalidPixelType) {
		t.Errorf("ViewOf(string) error = %v, want ErrInvalidPixelType", err)
	}
	if _, err := ViewOf([]pixel.Gray8{}, 1, 1); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("ViewOf(empty) error = %v, want ErrDataTooSmall", err)
	}
}

func TestSizeOf(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"Gray8", SizeOf[pixel.Gray8](), 1},
		{"BGR565", SizeOf[pixel.BGR565](), 2},
		{"RGB24", SizeOf[pixel.RGB24](), 3},
		{"BGRA32", SizeOf[pixel.BGRA32](), 4},
		{"RGBA64H", SizeOf[pixel.RGBA64H](), 8},
		{"RGB96F", SizeOf[pixel.RGB96F](), 12},
		{"RGBA128F", SizeOf[pixel.RGBA128F](), 16},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("SizeOf[%s]() = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}
