// Command bitmapdemo runs the bitmap operations on image files.
//
// Usage:
//
//	bitmapdemo warp   --in photo.png --out warped.png --scale 0.5 --rotate 15
//	bitmapdemo blur   --in photo.png --out soft.png --passes 3
//	bitmapdemo mirror --in photo.png --out flipped.png --horizontal
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/bitmap"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "bitmapdemo",
		Short:        "Run bitmap operations on image files",
		Version:      bitmap.Version,
		SilenceUsage: true,
	}
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if verbose {
			bitmap.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		newWarpCommand(),
		newBlurCommand(),
		newMirrorCommand(),
	)
	return root
}
