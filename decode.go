package main

import (
	"errors"
	"image/png"
	"os"

	"github.com/lasaurgrbl/raster2gcode/raster"
	"github.com/urfave/cli/v2"
)

func decodeAction(ctx *cli.Context) error {
	if ctx.NArg() != 2 {
		return errors.New("decode requires 2 arguments, see help decode")
	}
	input, output := ctx.Args().Get(0), ctx.Args().Get(1)

	f, err := os.Open(input)
	if err != nil {
		return &raster.InputError{Path: input, Err: err}
	}
	defer f.Close()
	r, err := raster.Decode(f)
	if err != nil {
		return &raster.InputError{Path: input, Err: err}
	}
	img, err := r.Image()
	if err != nil {
		return &raster.InputError{Path: input, Err: err}
	}
	logVerbose("%s: %dx%d dots of %.4fmm", input, img.Bounds().Dx(), img.Bounds().Dy(), r.DotSizeMM)

	of, err := openOutputFile(output)
	if err != nil {
		return &raster.OutputError{Path: output, Err: err}
	}
	defer of.Close()
	if err := png.Encode(of, img); err != nil {
		return &raster.OutputError{Path: output, Err: err}
	}
	if err := of.Close(); err != nil {
		return &raster.OutputError{Path: output, Err: err}
	}
	return nil
}
