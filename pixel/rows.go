package pixel

// Row converters for the pairs that are common enough to skip the float hub.
// Each one converts len(src) pixels; dst must be at least as long.

// Gray8ToGray32F maps [0,255] to [0,1].
func Gray8ToGray32F(src []Gray8, dst []Gray32F) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = Gray32F(float32(p) / 255)
	}
}

// Gray32FToGray8 clamps to [0,1] and rounds to [0,255].
func Gray32FToGray8(src []Gray32F, dst []Gray8) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = Gray8(quantize8(float32(p)))
	}
}

// BGR24ToRGB24 swaps the channel order.
func BGR24ToRGB24(src []BGR24, dst []RGB24) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = RGB24{R: p.R, G: p.G, B: p.B}
	}
}

// RGB24ToBGR24 swaps the channel order.
func RGB24ToBGR24(src []RGB24, dst []BGR24) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = BGR24{B: p.B, G: p.G, R: p.R}
	}
}

// BGRA32ToRGBA32 swaps the color channel order.
func BGRA32ToRGBA32(src []BGRA32, dst []RGBA32) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = RGBA32{R: p.R, G: p.G, B: p.B, A: p.A}
	}
}

// RGBA32ToBGRA32 swaps the color channel order.
func RGBA32ToBGRA32(src []RGBA32, dst []BGRA32) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = BGRA32{B: p.B, G: p.G, R: p.R, A: p.A}
	}
}

// BGR24ToBGRA32 adds an opaque alpha channel.
func BGR24ToBGRA32(src []BGR24, dst []BGRA32) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = BGRA32{B: p.B, G: p.G, R: p.R, A: 255}
	}
}

// RGB24ToRGBA32 adds an opaque alpha channel.
func RGB24ToRGBA32(src []RGB24, dst []RGBA32) {
	dst = dst[:len(src)]
	for i, p := range src {
		dst[i] = RGBA32{R: p.R, G: p.G, B: p.B, A: 255}
	}
}
