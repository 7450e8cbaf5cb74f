package pixel

import (
	"math"
	"testing"
)

func TestMix8_Endpoints(t *testing.T) {
	for s := range 256 {
		for d := 0; d < 256; d += 15 {
			if got := mix8(uint8(s), uint8(d), 0); got != uint8(d) {
				t.Fatalf("mix8(%d, %d, 0) = %d, want %d", s, d, got, d)
			}
			if got := mix8(uint8(s), uint8(d), 255); got != uint8(s) {
				t.Fatalf("mix8(%d, %d, 255) = %d, want %d", s, d, got, s)
			}
		}
	}
}

func TestBlend_HalfRedOverBlack(t *testing.T) {
	// Quantized opacity for 0.5 is round(127.5) = 128.
	// (255*128 + 0*127 + 127) / 255 = 128.
	got := BGR24{}.Blend(BGR24{R: 255}, 128)
	want := BGR24{R: 128}
	if got != want {
		t.Errorf("Blend = %v, want %v", got, want)
	}
}

func TestBlend_OpacityZeroIsNoOp(t *testing.T) {
	tests := []struct {
		name string
		fn   func() bool
	}{
		{"Gray8", func() bool { return Gray8(10).Blend(200, 0) == 10 }},
		{"Gray16", func() bool { return Gray16(1000).Blend(60000, 0) == 1000 }},
		{"BGR565", func() bool { return BGR565(0x1234).Blend(0xFFFF, 0) == 0x1234 }},
		{"RGB24", func() bool { return (RGB24{1, 2, 3}).Blend(RGB24{200, 200, 200}, 0) == RGB24{1, 2, 3} }},
		{"RGBA32", func() bool {
			return (RGBA32{1, 2, 3, 4}).Blend(RGBA32{200, 200, 200, 255}, 0) == RGBA32{1, 2, 3, 4}
		}},
		{"BGRA32", func() bool {
			return (BGRA32{1, 2, 3, 4}).Blend(BGRA32{200, 200, 200, 255}, 0) == BGRA32{1, 2, 3, 4}
		}},
		{"Gray32F", func() bool { return Gray32F(0.25).Blend(1, 0) == 0.25 }},
		{"RGB96F", func() bool { return (RGB96F{0.1, 0.2, 0.3}).Blend(RGB96F{1, 1, 1}, 0) == RGB96F{0.1, 0.2, 0.3} }},
		{"RGBA128F", func() bool {
			return (RGBA128F{0.1, 0.2, 0.3, 0.4}).Blend(RGBA128F{1, 1, 1, 1}, 0) == RGBA128F{0.1, 0.2, 0.3, 0.4}
		}},
		{"RGBA64H", func() bool {
			d := NewRGBA64H(0.5, 0.25, 0, 1)
			return d.Blend(NewRGBA64H(1, 1, 1, 1), 0) == d
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.fn() {
				t.Error("Blend with opacity 0 changed the destination")
			}
		})
	}
}

func TestBlend_OpaqueFullOpacityOverwrites(t *testing.T) {
	if got := (BGRA32{B: 9, G: 9, R: 9, A: 9}).Blend(BGRA32{B: 1, G: 2, R: 3, A: 255}, 255); got != (BGRA32{B: 1, G: 2, R: 3, A: 255}) {
		t.Errorf("BGRA32 overwrite = %v", got)
	}
	if got := (RGB24{9, 9, 9}).Blend(RGB24{1, 2, 3}, 255); got != (RGB24{1, 2, 3}) {
		t.Errorf("RGB24 overwrite = %v", got)
	}
	if got := BGR565(0).Blend(0xABCD, 255); got != 0xABCD {
		t.Errorf("BGR565 overwrite = %#x", uint16(got))
	}
	if got := (RGBA128F{}).Blend(RGBA128F{0.1, 0.2, 0.3, 1}, 255); got != (RGBA128F{0.1, 0.2, 0.3, 1}) {
		t.Errorf("RGBA128F overwrite = %v", got)
	}
	if got := Gray32F(0.75).Blend(0.125, 255); got != 0.125 {
		t.Errorf("Gray32F overwrite = %v", got)
	}
}

// Values that have no exact binary representation expose rounding in the
// float mix at both ends of the opacity range.
func TestBlend_FloatEndpointsAreExact(t *testing.T) {
	tests := []struct {
		name     string
		dst, src Gray32F
	}{
		{"tenths", 0.9, 0.1},
		{"thirds", 1.0 / 3, 2.0 / 3},
		{"small over large", 0.7, 0.0001},
		{"hdr", 3.3, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dst.Blend(tt.src, 255); got != tt.src {
				t.Errorf("Gray32F(%v).Blend(%v, 255) = %v, want exact source", tt.dst, tt.src, got)
			}
			if got := tt.dst.Blend(tt.src, 0); got != tt.dst {
				t.Errorf("Gray32F(%v).Blend(%v, 0) = %v, want exact destination", tt.dst, tt.src, got)
			}

			d := RGB96F{R: float32(tt.dst), G: float32(tt.src), B: float32(tt.dst)}
			s := RGB96F{R: float32(tt.src), G: float32(tt.dst), B: 0.3}
			if got := d.Blend(s, 255); got != s {
				t.Errorf("RGB96F.Blend(255) = %+v, want %+v", got, s)
			}

			f := d
			RGBA128F{R: s.R, G: s.G, B: s.B, A: 1}.ComposeOnto(&f, 255)
			if f != s {
				t.Errorf("RGBA128F.ComposeOnto(255) = %+v, want %+v", f, s)
			}
		})
	}
}

func TestBlend_StraightAlphaOver(t *testing.T) {
	tests := []struct {
		name    string
		dst     RGBA32
		src     RGBA32
		opacity uint8
		want    RGBA32
	}{
		{
			name:    "transparent source",
			dst:     RGBA32{10, 20, 30, 255},
			src:     RGBA32{255, 255, 255, 0},
			opacity: 255,
			want:    RGBA32{10, 20, 30, 255},
		},
		{
			name:    "onto transparent destination",
			dst:     RGBA32{},
			src:     RGBA32{200, 100, 50, 128},
			opacity: 255,
			want:    RGBA32{200, 100, 50, 128},
		},
		{
			name:    "half white over opaque black",
			dst:     RGBA32{0, 0, 0, 255},
			src:     RGBA32{255, 255, 255, 255},
			opacity: 128,
			want:    RGBA32{128, 128, 128, 255},
		},
		{
			name:    "source alpha times opacity",
			dst:     RGBA32{0, 0, 0, 255},
			src:     RGBA32{255, 0, 0, 128},
			opacity: 255,
			want:    RGBA32{128, 0, 0, 255},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dst.Blend(tt.src, tt.opacity); got != tt.want {
				t.Errorf("Blend() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComposeOnto(t *testing.T) {
	dst := BGR24{}
	BGRA32{R: 255, A: 255}.ComposeOnto(&dst, 128)
	if dst != (BGR24{R: 128}) {
		t.Errorf("BGRA32.ComposeOnto = %v, want R=128", dst)
	}

	dst = BGR24{B: 7, G: 7, R: 7}
	BGRA32{R: 255, A: 0}.ComposeOnto(&dst, 255)
	if dst != (BGR24{B: 7, G: 7, R: 7}) {
		t.Errorf("transparent ComposeOnto changed destination: %v", dst)
	}

	rgb := RGB24{}
	RGBA32{G: 255, A: 255}.ComposeOnto(&rgb, 255)
	if rgb != (RGB24{G: 255}) {
		t.Errorf("RGBA32.ComposeOnto = %v", rgb)
	}

	f := RGB96F{}
	RGBA128F{R: 1, A: 0.5}.ComposeOnto(&f, 255)
	if math.Abs(float64(f.R-0.5)) > 1e-6 || f.G != 0 || f.B != 0 {
		t.Errorf("RGBA128F.ComposeOnto = %+v, want R=0.5", f)
	}
}

func TestBGR565_BlendPerChannel(t *testing.T) {
	white := NewBGR565(255, 255, 255)
	got := BGR565(0).Blend(white, 128)
	r, g, b := got.RGB()
	// 31*128/255 rounds to 16, 63*128/255 rounds to 32.
	if r>>3 != 16 || g>>2 != 32 || b>>3 != 16 {
		t.Errorf("half white = (%d,%d,%d)", r, g, b)
	}
}
