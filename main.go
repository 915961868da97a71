package main

import (
	"fmt"
	"os"

	"github.com/lasaurgrbl/raster2gcode/raster"
	"github.com/urfave/cli/v2"
)

var (
	verboseFlag = false
	debugFlag   = false
	appVersion  = "0.1"
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "raster2gcode"
	app.Version = appVersion
	app.Usage = "convert an image to G8 raster directives for a laser cutter"
	app.ArgsUsage = "<image>"
	app.Flags = []cli.Flag{
		&cli.Float64Flag{
			Name:    "width",
			Aliases: []string{"w"},
			Value:   defaultWidthMM,
			Usage:   "Width of the rastered image (mm)",
		},
		&cli.BoolFlag{
			Name:    "invert",
			Aliases: []string{"i"},
			Usage:   "Invert the image output",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Value:   defaultOutput,
			Usage:   "Destination file",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Read settings from a yaml file; flags given on the command line take precedence",
		},
		&cli.IntFlag{
			Name:  "pixels",
			Usage: "Resample the image to this many pixels across before rastering (0 keeps the decoded size)",
		},
		&cli.IntFlag{
			Name:  "record-length",
			Value: raster.DefaultRecordLength,
			Usage: "Pixel cadence of G8 D records expected by the controller",
		},
		&cli.BoolFlag{
			Name:        "force",
			Aliases:     []string{"f"},
			Usage:       "Overwrite output files without asking",
			Destination: &forceFlag,
		},
		&cli.BoolFlag{
			Name:        "verbose",
			Usage:       "Enable verbose output",
			Destination: &verboseFlag,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Aliases:     []string{"d"},
			Usage:       "Print debug messages",
			Destination: &debugFlag,
		},
	}
	app.Action = encodeAction
	app.Commands = []*cli.Command{
		{
			Name:      "decode",
			Usage:     "Render a G8 raster file back to a black and white .png",
			ArgsUsage: "<input.gcode> <output.png>",
			Action:    decodeAction,
		},
	}
	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
