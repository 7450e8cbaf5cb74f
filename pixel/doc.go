// Package pixel provides the fixed-size pixel value types understood by
// gogpu/bitmap.
//
// Every type in this package is a plain value with no pointers, so a
// scanline of raw bytes can be reinterpreted as a slice of pixels without
// copying. The byte size of each type is part of its contract:
//
//	Gray8     1 byte     8-bit luminance
//	Gray16    2 bytes    16-bit luminance
//	BGR565    2 bytes    packed 5-6-5 color
//	RGB24     3 bytes    R, G, B
//	BGR24     3 bytes    B, G, R
//	RGBA32    4 bytes    R, G, B, straight A
//	BGRA32    4 bytes    B, G, R, straight A
//	Gray32F   4 bytes    float32 luminance
//	RGBA64H   8 bytes    half-float R, G, B, A
//	RGB96F   12 bytes    float32 R, G, B
//	RGBA128F 16 bytes    float32 R, G, B, A
//
// # Conversions
//
// RGBA128F is the conversion hub. Every type decodes to it with an RGBA128F
// method and encodes from it with the method of the same name on RGBA128F
// (for example RGBA128F.BGR24). Channels are normalized to [0,1]. The
// conversions are purely numeric; no gamma or color-space handling is done.
//
// # Composition
//
// All types implement Blend, which mixes a source pixel of the same type
// into the receiver using a quantized opacity in [0,255]. For 8-bit channels
// the rounding rule is
//
//	out = (src*w + dst*(255-w) + 127) / 255
//
// where w is the opacity, scaled by the source alpha for formats that carry
// one. Straight-alpha formats additionally implement ComposeOnto for their
// opaque counterpart (BGRA32 onto BGR24, RGBA32 onto RGB24, RGBA128F onto
// RGB96F), and Alpha for the transparent-pixel fast path.
package pixel
