package pixel

// weight scales a quantized opacity by an 8-bit alpha, rounding to nearest.
func weight(opacity, alpha uint8) uint8 {
	return uint8((uint32(opacity)*uint32(alpha) + 127) / 255)
}

// mix8 linearly mixes src into dst with weight w in [0,255].
// w == 0 returns dst and w == 255 returns src exactly.
func mix8(src, dst, w uint8) uint8 {
	return uint8((uint32(src)*uint32(w) + uint32(dst)*uint32(255-w) + 127) / 255)
}

// mix16 is mix8 for 16-bit channels.
func mix16(src, dst uint16, w uint8) uint16 {
	return uint16((uint32(src)*uint32(w) + uint32(dst)*uint32(255-w) + 127) / 255)
}

// over8 composites a straight-alpha source over a straight-alpha destination.
// Channels 0-2 are color, channel 3 is alpha. w is the source weight, that
// is the opacity already multiplied by the source alpha.
func over8(src, dst [4]uint8, w uint8) [4]uint8 {
	if w == 0 {
		return dst
	}
	if w == 255 {
		return [4]uint8{src[0], src[1], src[2], 255}
	}

	// Porter-Duff source-over on straight alpha, scaled by 255:
	//   outA = w + dA*(255-w)/255
	//   outC = (sC*w + dC*dA*(255-w)/255) / outA
	dw := uint32(dst[3]) * uint32(255-w)
	den := uint32(w)*255 + dw
	if den == 0 {
		return [4]uint8{}
	}

	var out [4]uint8
	for i := range 3 {
		num := uint32(src[i])*uint32(w)*255 + uint32(dst[i])*dw
		out[i] = uint8((num + den/2) / den)
	}
	out[3] = uint8((den + 127) / 255)
	return out
}

// overF composites a straight-alpha float source over a float destination.
// w is the source weight in [0,1].
func overF(src, dst RGBA128F, w float32) RGBA128F {
	if w <= 0 {
		return dst
	}
	dw := dst.A * (1 - w)
	a := w + dw
	if a <= 0 {
		return RGBA128F{}
	}
	return RGBA128F{
		R: (src.R*w + dst.R*dw) / a,
		G: (src.G*w + dst.G*dw) / a,
		B: (src.B*w + dst.B*dw) / a,
		A: a,
	}
}

// lerpF weights both ends so that w == 1 yields src and w == 0 yields dst
// exactly.
func lerpF(src, dst, w float32) float32 {
	return src*w + dst*(1-w)
}

// Blend mixes src into p with the given opacity.
func (p Gray8) Blend(src Gray8, opacity uint8) Gray8 {
	return Gray8(mix8(uint8(src), uint8(p), opacity))
}

// Blend mixes src into p with the given opacity.
func (p Gray16) Blend(src Gray16, opacity uint8) Gray16 {
	return Gray16(mix16(uint16(src), uint16(p), opacity))
}

// Blend mixes src into p with the given opacity. The mix is done on the
// packed 5-6-5 channel values, so no precision is lost to expansion.
func (p BGR565) Blend(src BGR565, opacity uint8) BGR565 {
	r := mix16(uint16(src>>11), uint16(p>>11), opacity)
	g := mix16(uint16(src>>5)&0x3F, uint16(p>>5)&0x3F, opacity)
	b := mix16(uint16(src)&0x1F, uint16(p)&0x1F, opacity)
	return BGR565(r<<11 | g<<5 | b)
}

// Blend mixes src into p with the given opacity.
func (p RGB24) Blend(src RGB24, opacity uint8) RGB24 {
	return RGB24{
		R: mix8(src.R, p.R, opacity),
		G: mix8(src.G, p.G, opacity),
		B: mix8(src.B, p.B, opacity),
	}
}

// Blend mixes src into p with the given opacity.
func (p BGR24) Blend(src BGR24, opacity uint8) BGR24 {
	return BGR24{
		B: mix8(src.B, p.B, opacity),
		G: mix8(src.G, p.G, opacity),
		R: mix8(src.R, p.R, opacity),
	}
}

// Blend composites src over p (source-over, straight alpha).
func (p RGBA32) Blend(src RGBA32, opacity uint8) RGBA32 {
	o := over8([4]uint8{src.R, src.G, src.B, src.A}, [4]uint8{p.R, p.G, p.B, p.A}, weight(opacity, src.A))
	return RGBA32{R: o[0], G: o[1], B: o[2], A: o[3]}
}

// Blend composites src over p (source-over, straight alpha).
func (p BGRA32) Blend(src BGRA32, opacity uint8) BGRA32 {
	o := over8([4]uint8{src.B, src.G, src.R, src.A}, [4]uint8{p.B, p.G, p.R, p.A}, weight(opacity, src.A))
	return BGRA32{B: o[0], G: o[1], R: o[2], A: o[3]}
}

// Blend mixes src into p with the given opacity.
func (p Gray32F) Blend(src Gray32F, opacity uint8) Gray32F {
	if opacity == 0 {
		return p
	}
	return Gray32F(lerpF(float32(src), float32(p), unorm8(opacity)))
}

// Blend composites src over p (source-over, straight alpha).
func (p RGBA64H) Blend(src RGBA64H, opacity uint8) RGBA64H {
	if opacity == 0 {
		return p
	}
	s := src.RGBA128F()
	return overF(s, p.RGBA128F(), unorm8(opacity)*clampUnit(s.A)).RGBA64H()
}

// Blend mixes src into p with the given opacity.
func (p RGB96F) Blend(src RGB96F, opacity uint8) RGB96F {
	if opacity == 0 {
		return p
	}
	w := unorm8(opacity)
	return RGB96F{R: lerpF(src.R, p.R, w), G: lerpF(src.G, p.G, w), B: lerpF(src.B, p.B, w)}
}

// Blend composites src over p (source-over, straight alpha).
func (p RGBA128F) Blend(src RGBA128F, opacity uint8) RGBA128F {
	if opacity == 0 {
		return p
	}
	return overF(src, p, unorm8(opacity)*clampUnit(src.A))
}

// ComposeOnto blends p over an opaque BGR24 destination.
func (p BGRA32) ComposeOnto(dst *BGR24, opacity uint8) {
	w := weight(opacity, p.A)
	if w == 0 {
		return
	}
	dst.B = mix8(p.B, dst.B, w)
	dst.G = mix8(p.G, dst.G, w)
	dst.R = mix8(p.R, dst.R, w)
}

// ComposeOnto blends p over an opaque RGB24 destination.
func (p RGBA32) ComposeOnto(dst *RGB24, opacity uint8) {
	w := weight(opacity, p.A)
	if w == 0 {
		return
	}
	dst.R = mix8(p.R, dst.R, w)
	dst.G = mix8(p.G, dst.G, w)
	dst.B = mix8(p.B, dst.B, w)
}

// ComposeOnto blends p over an opaque RGB96F destination.
func (p RGBA128F) ComposeOnto(dst *RGB96F, opacity uint8) {
	w := unorm8(opacity) * clampUnit(p.A)
	if w <= 0 {
		return
	}
	dst.R = lerpF(p.R, dst.R, w)
	dst.G = lerpF(p.G, dst.G, w)
	dst.B = lerpF(p.B, dst.B, w)
}

// Alpha returns the alpha channel.
func (p RGBA32) Alpha() uint8 { return p.A }

// Alpha returns the alpha channel.
func (p BGRA32) Alpha() uint8 { return p.A }

// Alpha returns the alpha channel quantized to [0,255].
func (p RGBA64H) Alpha() uint8 { return quantize8(p.A.Float32()) }

// Alpha returns the alpha channel quantized to [0,255].
func (c RGBA128F) Alpha() uint8 { return quantize8(c.A) }

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
