package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/gogpu/bitmap"
)

func newMirrorCommand() *cobra.Command {
	var (
		in, out              string
		horizontal, vertical bool
		parallel             bool
	)

	cmd := &cobra.Command{
		Use:   "mirror",
		Short: "Flip an image horizontally, vertically or both",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !horizontal && !vertical {
				return errors.New("nothing to do: pass --horizontal and/or --vertical")
			}
			img, err := loadNRGBA(in)
			if err != nil {
				return err
			}
			v, err := viewNRGBA(img)
			if err != nil {
				return err
			}
			if err := bitmap.Mirror(v, horizontal, vertical, bitmap.WithMultithreading(parallel)); err != nil {
				return err
			}
			return save(cmd.OutOrStdout(), img, out)
		},
	}

	f := cmd.Flags()
	f.StringVar(&in, "in", "", "input image")
	f.StringVar(&out, "out", "mirrored.png", "output image")
	f.BoolVar(&horizontal, "horizontal", false, "flip left to right")
	f.BoolVar(&vertical, "vertical", false, "flip top to bottom")
	f.BoolVar(&parallel, "parallel", true, "split large horizontal flips across goroutines")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
