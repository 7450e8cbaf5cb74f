package main

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/pixel"
)

// printer formats counts with digit grouping.
var printer = message.NewPrinter(language.English)

// loadNRGBA decodes path and returns it as a straight-alpha NRGBA image
// with its origin at (0, 0).
func loadNRGBA(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

// toNRGBA copies img into a new NRGBA image based at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// viewNRGBA describes the pixels of img as RGBA32.
func viewNRGBA(img *image.NRGBA) (bitmap.View, error) {
	b := img.Bounds()
	return bitmap.NewView(img.Pix, b.Dx(), b.Dy(), bitmap.SizeOf[pixel.RGBA32](), img.Stride)
}

// viewGray describes the pixels of img as Gray8.
func viewGray(img *image.Gray) (bitmap.View, error) {
	b := img.Bounds()
	return bitmap.NewView(img.Pix, b.Dx(), b.Dy(), bitmap.SizeOf[pixel.Gray8](), img.Stride)
}

// save encodes img to path, choosing the format from the extension, and
// reports the pixel count to w.
func save(w io.Writer, img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	b := img.Bounds()
	printer.Fprintf(w, "%d pixels (%dx%d) written to %s\n", b.Dx()*b.Dy(), b.Dx(), b.Dy(), path)
	return nil
}

// parseColor parses a CSS hex color such as "#336699" into an opaque RGBA32.
// An empty string means transparent black.
func parseColor(s string) (pixel.RGBA32, error) {
	if s == "" {
		return pixel.RGBA32{}, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return pixel.RGBA32{}, fmt.Errorf("color %q: %w", s, err)
	}
	return pixel.Opaque(float32(c.R), float32(c.G), float32(c.B)).RGBA32(), nil
}

// fill sets every pixel of v to c.
func fill(v bitmap.View, c pixel.RGBA32) {
	for y := range v.Height() {
		row := bitmap.PixelRow[pixel.RGBA32](v, y)
		for i := range row {
			row[i] = c
		}
	}
}
