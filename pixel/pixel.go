package pixel

import "github.com/x448/float16"

// Gray8 is 8-bit grayscale (1 byte per pixel).
type Gray8 uint8

// Gray16 is 16-bit grayscale in native byte order (2 bytes per pixel).
type Gray16 uint16

// BGR565 is a packed 16-bit color: red in bits 11-15, green in bits 5-10 and
// blue in bits 0-4 (2 bytes per pixel).
type BGR565 uint16

// RGB24 is 24-bit color stored R, G, B (3 bytes per pixel).
type RGB24 struct {
	R, G, B uint8
}

// BGR24 is 24-bit color stored B, G, R (3 bytes per pixel).
// This is the usual layout of Windows DIBs.
type BGR24 struct {
	B, G, R uint8
}

// RGBA32 is 32-bit color with straight alpha stored R, G, B, A (4 bytes per pixel).
type RGBA32 struct {
	R, G, B, A uint8
}

// BGRA32 is 32-bit color with straight alpha stored B, G, R, A (4 bytes per pixel).
type BGRA32 struct {
	B, G, R, A uint8
}

// Gray32F is float32 grayscale (4 bytes per pixel).
type Gray32F float32

// RGBA64H is half-float color with straight alpha (8 bytes per pixel).
type RGBA64H struct {
	R, G, B, A float16.Float16
}

// RGB96F is float32 color (12 bytes per pixel).
type RGB96F struct {
	R, G, B float32
}

// RGBA128F is float32 color with straight alpha (16 bytes per pixel).
// It is the hub every other type converts through.
type RGBA128F struct {
	R, G, B, A float32
}

// Opaque returns an opaque RGBA128F with the given channels.
func Opaque(r, g, b float32) RGBA128F {
	return RGBA128F{R: r, G: g, B: b, A: 1}
}

// NewBGR565 packs 8-bit channels into a BGR565 value, dropping the low bits.
func NewBGR565(r, g, b uint8) BGR565 {
	return BGR565(uint16(b)>>3 | uint16(g&0xFC)<<3 | uint16(r&0xF8)<<8)
}

// RGB expands the packed channels back to 8 bits, replicating the high
// bits into the vacated low bits so that 0x1F maps to 0xFF.
func (p BGR565) RGB() (r, g, b uint8) {
	r = uint8(p>>8) & 0xF8
	r |= r >> 5
	g = uint8(p>>3) & 0xFC
	g |= g >> 6
	b = uint8(p << 3)
	b |= b >> 5
	return r, g, b
}

// NewRGBA64H converts float32 channels to half precision.
func NewRGBA64H(r, g, b, a float32) RGBA64H {
	return RGBA64H{
		R: float16.Fromfloat32(r),
		G: float16.Fromfloat32(g),
		B: float16.Fromfloat32(b),
		A: float16.Fromfloat32(a),
	}
}

// Luminance returns the Rec. 601 luma of the color channels.
func (c RGBA128F) Luminance() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// RGBA128F decodes to the conversion hub.
func (p Gray8) RGBA128F() RGBA128F {
	v := unorm8(uint8(p))
	return RGBA128F{R: v, G: v, B: v, A: 1}
}

// RGBA128F decodes to the conversion hub.
func (p Gray16) RGBA128F() RGBA128F {
	v := float32(p) / 65535
	return RGBA128F{R: v, G: v, B: v, A: 1}
}

// RGBA128F decodes to the conversion hub.
func (p BGR565) RGBA128F() RGBA128F {
	r, g, b := p.RGB()
	return RGBA128F{R: unorm8(r), G: unorm8(g), B: unorm8(b), A: 1}
}

// RGBA128F decodes to the conversion hub.
func (p RGB24) RGBA128F() RGBA128F {
	return RGBA128F{R: unorm8(p.R), G: unorm8(p.G), B: unorm8(p.B), A: 1}
}

// RGBA128F decodes to the conversion hub.
func (p BGR24) RGBA128F() RGBA128F {
	return RGBA128F{R: unorm8(p.R), G: unorm8(p.G), B: unorm8(p.B), A: 1}
}

// RGBA128F decodes to the conversion hub.
func (p RGBA32) RGBA128F() RGBA128F {
	return RGBA128F{R: unorm8(p.R), G: unorm8(p.G), B: unorm8(p.B), A: unorm8(p.A)}
}

// RGBA128F decodes to the conversion hub.
func (p BGRA32) RGBA128F() RGBA128F {
	return RGBA128F{R: unorm8(p.R), G: unorm8(p.G), B: unorm8(p.B), A: unorm8(p.A)}
}

// RGBA128F decodes to the conversion hub.
func (p Gray32F) RGBA128F() RGBA128F {
	v := float32(p)
	return RGBA128F{R: v, G: v, B: v, A: 1}
}

// RGBA128F decodes to the conversion hub.
func (p RGBA64H) RGBA128F() RGBA128F {
	return RGBA128F{R: p.R.Float32(), G: p.G.Float32(), B: p.B.Float32(), A: p.A.Float32()}
}

// RGBA128F decodes to the conversion hub.
func (p RGB96F) RGBA128F() RGBA128F {
	return RGBA128F{R: p.R, G: p.G, B: p.B, A: 1}
}

// RGBA128F returns c unchanged. It lets the hub type register like any other.
func (c RGBA128F) RGBA128F() RGBA128F {
	return c
}

// Gray8 encodes the luminance of c.
func (c RGBA128F) Gray8() Gray8 {
	return Gray8(quantize8(c.Luminance()))
}

// Gray16 encodes the luminance of c.
func (c RGBA128F) Gray16() Gray16 {
	return Gray16(quantize16(c.Luminance()))
}

// BGR565 encodes the color channels of c, dropping alpha.
func (c RGBA128F) BGR565() BGR565 {
	return NewBGR565(quantize8(c.R), quantize8(c.G), quantize8(c.B))
}

// RGB24 encodes the color channels of c, dropping alpha.
func (c RGBA128F) RGB24() RGB24 {
	return RGB24{R: quantize8(c.R), G: quantize8(c.G), B: quantize8(c.B)}
}

// BGR24 encodes the color channels of c, dropping alpha.
func (c RGBA128F) BGR24() BGR24 {
	return BGR24{B: quantize8(c.B), G: quantize8(c.G), R: quantize8(c.R)}
}

// RGBA32 encodes c.
func (c RGBA128F) RGBA32() RGBA32 {
	return RGBA32{R: quantize8(c.R), G: quantize8(c.G), B: quantize8(c.B), A: quantize8(c.A)}
}

// BGRA32 encodes c.
func (c RGBA128F) BGRA32() BGRA32 {
	return BGRA32{B: quantize8(c.B), G: quantize8(c.G), R: quantize8(c.R), A: quantize8(c.A)}
}

// Gray32F encodes the luminance of c.
func (c RGBA128F) Gray32F() Gray32F {
	return Gray32F(c.Luminance())
}

// RGBA64H encodes c at half precision.
func (c RGBA128F) RGBA64H() RGBA64H {
	return NewRGBA64H(c.R, c.G, c.B, c.A)
}

// RGB96F encodes the color channels of c, dropping alpha.
func (c RGBA128F) RGB96F() RGB96F {
	return RGB96F{R: c.R, G: c.G, B: c.B}
}

// unorm8 maps [0,255] to [0,1].
func unorm8(v uint8) float32 {
	return float32(v) / 255
}

// quantize8 clamps v to [0,1] and rounds it to [0,255].
func quantize8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// quantize16 clamps v to [0,1] and rounds it to [0,65535].
func quantize16(v float32) uint16 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(v*65535 + 0.5)
}
