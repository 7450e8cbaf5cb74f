package main

import (
	"fmt"
	"image"

	"github.com/spf13/cobra"

	"github.com/gogpu/bitmap"
	"github.com/gogpu/bitmap/pixel"
)

type blurOptions struct {
	in, out string
	passes  int
	kernel  string
}

func newBlurCommand() *cobra.Command {
	var o blurOptions

	cmd := &cobra.Command{
		Use:   "blur",
		Short: "Run a 3x3 kernel over an image",
		Long: "Run a 3x3 kernel over an image. The mean kernel blurs in place;\n" +
			"the sobel kernel writes a grayscale edge map.",
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadNRGBA(o.in)
			if err != nil {
				return err
			}
			var out image.Image
			switch o.kernel {
			case "mean":
				out, err = boxBlur(src, o.passes)
			case "sobel":
				out, err = edges(src)
			default:
				err = fmt.Errorf("unknown kernel %q (want mean or sobel)", o.kernel)
			}
			if err != nil {
				return err
			}
			return save(cmd.OutOrStdout(), out, o.out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.in, "in", "", "input image")
	f.StringVar(&o.out, "out", "blurred.png", "output image")
	f.IntVar(&o.passes, "passes", 1, "number of mean passes")
	f.StringVar(&o.kernel, "kernel", "mean", "kernel: mean or sobel")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

// boxBlur applies the 3x3 mean passes times, in place, summing in float.
func boxBlur(img *image.NRGBA, passes int) (*image.NRGBA, error) {
	v, err := viewNRGBA(img)
	if err != nil {
		return nil, err
	}
	for range passes {
		if err := bitmap.ApplyTyped[pixel.RGBA32](v, bitmap.BoxMeanRGBA128F); err != nil {
			return nil, err
		}
	}
	return img, nil
}

// edges converts img to float luminance, runs the Sobel kernel and
// returns the gradient magnitude as an 8-bit gray image.
func edges(img *image.NRGBA) (*image.Gray, error) {
	src, err := viewNRGBA(img)
	if err != nil {
		return nil, err
	}

	lum := make([]pixel.Gray32F, src.Width()*src.Height())
	lv, err := bitmap.ViewOf(lum, src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	if err := bitmap.Convert[pixel.RGBA32, pixel.Gray32F](src, lv); err != nil {
		return nil, err
	}
	if err := bitmap.Apply(lv, bitmap.SobelGray32F); err != nil {
		return nil, err
	}

	out := image.NewGray(image.Rect(0, 0, src.Width(), src.Height()))
	ov, err := viewGray(out)
	if err != nil {
		return nil, err
	}
	if err := bitmap.Convert[pixel.Gray32F, pixel.Gray8](lv, ov); err != nil {
		return nil, err
	}
	return out, nil
}
