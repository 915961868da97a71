package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

func LoadImage(filePath string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filePath))

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var img image.Image
	r := bytes.NewReader(data)
	switch ext {
	case ".svg":
		return loadSVG(data)
	case ".png":
		img, err = png.Decode(r)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(r)
	case ".gif":
		img, err = gif.Decode(r)
	case ".bmp":
		img, err = bmp.Decode(r)
	case ".tif", ".tiff":
		img, err = tiff.Decode(r)
	case ".webp":
		img, err = webp.Decode(r)
	default:
		return nil, errors.New("unsupported image format: " + ext)
	}

	if err != nil {
		return nil, err
	}
	return img, nil
}

// resampleToWidth scales img to width pixels, keeping the aspect ratio.
// Transparent areas end up white.
func resampleToWidth(img image.Image, width int) image.Image {
	bounds := img.Bounds()
	if width <= 0 || width == bounds.Dx() || bounds.Dx() == 0 {
		return img
	}
	height := int(math.Round(float64(bounds.Dy()) * float64(width) / float64(bounds.Dx())))
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), &image.Uniform{color.White}, image.Point{}, xdraw.Src)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	logVerbose("resampled %dx%d image to %dx%d", bounds.Dx(), bounds.Dy(), width, height)
	return dst
}
