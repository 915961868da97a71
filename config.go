package main

import (
	"fmt"
	"os"

	"github.com/lasaurgrbl/raster2gcode/raster"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v2"
)

const (
	defaultWidthMM = 50
	defaultOutput  = "out.gcode"
)

// encodeConfig is the merged result of the config file and the command
// line. Flags given explicitly win over the file.
type encodeConfig struct {
	Width        float64 `yaml:"width"`
	Invert       bool    `yaml:"invert"`
	Out          string  `yaml:"out"`
	Pixels       int     `yaml:"pixels"`
	RecordLength int     `yaml:"record_length"`
	Image        string  `yaml:"-"`
}

func defaultConfig() *encodeConfig {
	return &encodeConfig{
		Width:        defaultWidthMM,
		Out:          defaultOutput,
		RecordLength: raster.DefaultRecordLength,
	}
}

func loadConfigFile(filename string, cfg *encodeConfig) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return &raster.ConfigError{Field: "config", Msg: err.Error()}
	}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return &raster.ConfigError{Field: "config", Msg: fmt.Sprintf("%s: %v", filename, err)}
	}
	return nil
}

func configFromContext(ctx *cli.Context) (*encodeConfig, error) {
	cfg := defaultConfig()
	if filename := ctx.String("config"); filename != "" {
		if err := loadConfigFile(filename, cfg); err != nil {
			return nil, err
		}
		logDebug("loaded config from %s: %+v", filename, *cfg)
	}
	if ctx.IsSet("width") {
		cfg.Width = ctx.Float64("width")
	}
	if ctx.IsSet("invert") {
		cfg.Invert = ctx.Bool("invert")
	}
	if ctx.IsSet("out") {
		cfg.Out = ctx.String("out")
	}
	if ctx.IsSet("pixels") {
		cfg.Pixels = ctx.Int("pixels")
	}
	if ctx.IsSet("record-length") {
		cfg.RecordLength = ctx.Int("record-length")
	}
	cfg.Image = ctx.Args().First()
	return cfg, cfg.validate()
}

func (c *encodeConfig) validate() error {
	if c.Image == "" {
		return &raster.ConfigError{Field: "image", Msg: "no image file given"}
	}
	if c.Out == "" {
		return &raster.ConfigError{Field: "out", Msg: "no output file given"}
	}
	if c.Pixels < 0 {
		return &raster.ConfigError{Field: "pixels", Msg: fmt.Sprintf("must not be negative, got %d", c.Pixels)}
	}
	return c.rasterConfig().Validate()
}

func (c *encodeConfig) rasterConfig() raster.Config {
	return raster.Config{
		TargetWidthMM: c.Width,
		Invert:        c.Invert,
		RecordLength:  c.RecordLength,
	}
}
