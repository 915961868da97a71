package raster

import (
	"fmt"
	"image"
	"iter"
)

// Plane is a width×height grid of 8-bit intensities stored row-major.
// A Plane is not modified after construction.
type Plane struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPlane wraps pix as a plane. The slice is not copied.
func NewPlane(width, height int, pix []uint8) (*Plane, error) {
	if width <= 0 {
		return nil, &ConfigError{Field: "width", Msg: fmt.Sprintf("image width must be positive, got %d pixels", width)}
	}
	if height <= 0 {
		return nil, &ConfigError{Field: "height", Msg: fmt.Sprintf("image height must be positive, got %d pixels", height)}
	}
	if len(pix) != width*height {
		return nil, &ConfigError{Field: "pixels", Msg: fmt.Sprintf("have %d intensities for a %dx%d image", len(pix), width, height)}
	}
	return &Plane{Width: width, Height: height, Pix: pix}, nil
}

// FromImage converts img to luma intensities. Transparent regions are
// composited over white so they do not fire the laser.
func FromImage(img image.Image) (*Plane, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return NewPlane(width, height, nil)
	}

	pix := make([]uint8, 0, width*height)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			// premultiplied: blend with white by adding the uncovered share
			bg := 0xffff - a
			r, g, b = r+bg, g+bg, b+bg
			pix = append(pix, uint8(((299*r+587*g+114*b)/1000)>>8))
		}
	}
	return NewPlane(width, height, pix)
}

// At returns the intensity at column x of row y.
func (p *Plane) At(x, y int) uint8 {
	return p.Pix[y*p.Width+x]
}

// Bits yields one '0' or '1' per pixel in row-major order.
func (p *Plane) Bits(invert bool) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for _, v := range p.Pix {
			if !yield(Binarize(v, invert)) {
				return
			}
		}
	}
}
