package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// loadSVG renders an SVG document onto a white canvas at one pixel per
// viewBox unit.
func loadSVG(data []byte) (image.Image, error) {
	svgIcon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	viewBoxW := svgIcon.ViewBox.W
	viewBoxH := svgIcon.ViewBox.H
	width := int(math.Ceil(viewBoxW))
	height := int(math.Ceil(viewBoxH))
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("svg has an empty viewBox (%gx%g)", viewBoxW, viewBoxH)
	}

	svgIcon.SetTarget(0, 0, viewBoxW, viewBoxH)

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	scanner.SetClip(img.Bounds())
	raster := rasterx.NewDasher(width, height, scanner)

	svgIcon.Draw(raster, 1.0)
	logDebug("rasterized svg viewBox %gx%g to %dx%d pixels", viewBoxW, viewBoxH, width, height)
	return img, nil
}
