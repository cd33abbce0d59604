// Command raster draws a Wavefront OBJ model into an image file on the CPU.
// Without a model it draws a color test pattern.
//
//	raster -o pattern.png
//	raster assets/models/head.obj --solid -o head.png
package main

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"github.com/spf13/cobra"

	"github.com/paperboard/learnopengl/raster"
)

type options struct {
	output string
	width  int
	height int
	block  int
	solid  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {

	var opts options

	root := &cobra.Command{
		Use:          "raster [model.obj]",
		Short:        "Render a model without the GPU",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.width < 1 || opts.height < 1 {
				return fmt.Errorf("invalid image size %dx%d", opts.width, opts.height)
			}

			var img image.Image
			if len(args) == 0 {
				img = raster.TestPattern(opts.width, opts.height, opts.block)
			} else {
				m, err := raster.LoadOBJ(args[0])
				if err != nil {
					return err
				}
				if opts.solid {
					img = raster.Solid(m, opts.width, opts.height, color.White)
				} else {
					img = raster.Wireframe(m, opts.width, opts.height, color.White)
				}
			}

			if err := raster.Save(opts.output, img); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "wrote", opts.output)
			return nil
		},
	}

	flags := root.Flags()
	flags.StringVarP(&opts.output, "output", "o", "output.png", "image file, format from the extension (png, jpg, bmp)")
	flags.IntVar(&opts.width, "width", 800, "image width in pixels")
	flags.IntVar(&opts.height, "height", 800, "image height in pixels")
	flags.IntVar(&opts.block, "block", 700, "side of the test pattern square")
	flags.BoolVar(&opts.solid, "solid", false, "fill faces instead of drawing edges")

	return root

}
