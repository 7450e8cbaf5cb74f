// Package bitmap provides pixel-format agnostic processing over raw bitmap
// memory.
//
// # Overview
//
// bitmap works directly on caller-owned pixel buffers described by a View:
// width, height, row stride, pixel size and the bytes themselves. It never
// allocates or retains image memory. Operations are generic over the pixel
// value type, which can be any fixed-size plain value; ready-made types
// live in the pixel sub-package.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/bitmap"
//	    "github.com/gogpu/bitmap/pixel"
//	)
//
//	src, _ := bitmap.ViewOf(srcPixels, 640, 480)
//	dst, _ := bitmap.ViewOf(dstPixels, 320, 240)
//
//	// Draw src at half size, converting BGRA32 to RGB24 on the way.
//	err := bitmap.SetPixels[pixel.BGRA32, pixel.RGB24](dst, src, bitmap.Scale(0.5, 0.5))
//
// # Operations
//
//   - Resampling: SetPixels, FillPixels and ComposePixels draw a source
//     through an affine Matrix with nearest-neighbor sampling. Per-pixel
//     coordinates come from a 14-bit fixed-point walk, so no floating
//     point is evaluated inside a row.
//   - Convolution: Apply, ApplyTyped, Copy and Process evaluate a function
//     over every 3x3 neighborhood while holding only three rows.
//   - Mirroring: Mirror flips rows, columns or both, in place.
//   - Conversion: LookupConverter and Convert move scanlines between pixel
//     types.
//
// # Coordinate System
//
// Uses standard raster coordinates:
//   - Origin (0,0) at the top-left pixel
//   - X increases right
//   - Y increases down
//
// A resampling Matrix maps source coordinates to destination coordinates.
// Destination pixel (x, y) takes the source pixel nearest to its inverse
// image.
//
// # Limits
//
// Views wider or taller than 131071 pixels cannot be resampled, because
// fixed-point coordinates must fit in 32 bits.
//
// # Concurrency
//
// Calls on independent views are safe to run concurrently. Calls that
// share a destination must be serialized by the caller. Only horizontal
// mirroring uses more than one goroutine.
package bitmap

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
