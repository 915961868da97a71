package main

import (
	"fmt"

	"github.com/lasaurgrbl/raster2gcode/raster"
	"github.com/urfave/cli/v2"
)

func encodeAction(ctx *cli.Context) error {
	if ctx.NArg() > 1 {
		return &raster.ConfigError{Field: "image", Msg: fmt.Sprintf("expected one image file, got %d arguments", ctx.NArg())}
	}
	cfg, err := configFromContext(ctx)
	if err != nil {
		return err
	}

	logVerbose("opening image file: %s", cfg.Image)
	img, err := LoadImage(cfg.Image)
	if err != nil {
		return &raster.InputError{Path: cfg.Image, Err: err}
	}
	img = resampleToWidth(img, cfg.Pixels)

	plane, err := raster.FromImage(img)
	if err != nil {
		return err
	}
	stats, err := encodeToFile(cfg.Out, plane, cfg.rasterConfig())
	if err != nil {
		return err
	}

	logVerbose("dimensions: %.0fmm x %.0fmm, dot size = %f", cfg.Width, stats.Scale.TargetHeightMM, stats.Scale.DotSizeMM)
	logDebug("%d pixels in %d records, %d row resets, %d lines", stats.Pixels, stats.Records, stats.RowResets, stats.Lines)
	fmt.Printf("G-code successfully written to %s\n", cfg.Out)
	return nil
}

// encodeToFile checks cfg against the plane before the output file is
// created, so a bad configuration never leaves an empty file behind.
func encodeToFile(filename string, plane *raster.Plane, cfg raster.Config) (raster.Stats, error) {
	if err := cfg.Validate(); err != nil {
		return raster.Stats{}, err
	}
	if _, err := raster.ComputeScale(cfg.TargetWidthMM, plane.Width, plane.Height); err != nil {
		return raster.Stats{}, err
	}

	f, err := openOutputFile(filename)
	if err != nil {
		return raster.Stats{}, &raster.OutputError{Path: filename, Err: err}
	}
	defer f.Close()

	stats, err := raster.Encode(f, plane, cfg)
	if err != nil {
		if oe, ok := err.(*raster.OutputError); ok && oe.Path == "" {
			oe.Path = filename
		}
		return stats, err
	}
	if err := f.Close(); err != nil {
		return stats, &raster.OutputError{Path: filename, Err: err}
	}
	return stats, nil
}
