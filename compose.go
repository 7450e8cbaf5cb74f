package bitmap

import "math"

// Blender is implemented by pixel types that can mix a source pixel of the
// same type into themselves. Blend returns the receiver with src mixed in
// at the given quantized opacity.
//
// Implementations must return the receiver unchanged for opacity 0 and
// must return an opaque src exactly for opacity 255.
type Blender[T any] interface {
	Blend(src T, opacity uint8) T
}

// Compositor is implemented by source pixel types that know how to blend
// themselves onto a destination of type D, typically a straight-alpha color
// onto its opaque counterpart. ComposeOnto must leave *dst unchanged for
// opacity 0.
type Compositor[D any] interface {
	ComposeOnto(dst *D, opacity uint8)
}

// Alpher is implemented by pixel types that carry coverage. Pixels whose
// Alpha is 0 are skipped by ComposePixels.
type Alpher interface {
	Alpha() uint8
}

// QuantizeOpacity maps an opacity in [0, 1] to [0, 255], rounding to
// nearest. Values outside the range are clamped and NaN maps to 0.
func QuantizeOpacity(opacity float64) uint8 {
	if !(opacity > 0) {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(math.Round(opacity * 255))
}
