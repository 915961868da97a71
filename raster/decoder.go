package raster

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
	"strings"
)

// Raster is a directive stream read back into rows of bits.
type Raster struct {
	DotSizeMM float64
	Rows      [][]byte
}

// Decode parses a stream produced by Encode. Data records between two
// row resets are joined into one row; segments without data are skipped.
func Decode(r io.Reader) (*Raster, error) {
	var (
		out Raster
		row []byte
		n   int
	)
	endRow := func() {
		if len(row) > 0 {
			out.Rows = append(out.Rows, row)
			row = nil
		}
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		n++
		line := strings.TrimRight(sc.Text(), "\r")
		switch {
		case line == "":
		case strings.HasPrefix(line, DirectiveDataPrefix):
			bits := line[len(DirectiveDataPrefix):]
			for i := 0; i < len(bits); i++ {
				if bits[i] != '0' && bits[i] != '1' {
					return nil, fmt.Errorf("line %d: invalid raster bit %q", n, bits[i])
				}
			}
			row = append(row, bits...)
		case strings.HasPrefix(line, "G8 N"):
			endRow()
		case strings.HasPrefix(line, DirectiveScalePrefix):
			v, err := strconv.ParseFloat(line[len(DirectiveScalePrefix):], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid dot size: %v", n, err)
			}
			out.DotSizeMM = v
		case strings.HasPrefix(line, "G8 X"), strings.HasPrefix(line, "G0"):
		default:
			return nil, fmt.Errorf("line %d: unexpected directive %q", n, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	endRow()
	return &out, nil
}

// Width returns the common row length, or an error if rows differ.
func (r *Raster) Width() (int, error) {
	if len(r.Rows) == 0 {
		return 0, fmt.Errorf("raster has no rows")
	}
	w := len(r.Rows[0])
	for i, row := range r.Rows[1:] {
		if len(row) != w {
			return 0, fmt.Errorf("row %d has %d dots, row 1 has %d", i+2, len(row), w)
		}
	}
	return w, nil
}

// Image renders the raster with fired dots in black.
func (r *Raster) Image() (*image.Gray, error) {
	w, err := r.Width()
	if err != nil {
		return nil, err
	}
	img := image.NewGray(image.Rect(0, 0, w, len(r.Rows)))
	for y, row := range r.Rows {
		for x, bit := range row {
			c := color.Gray{Y: 255}
			if bit == '1' {
				c.Y = 0
			}
			img.SetGray(x, y, c)
		}
	}
	return img, nil
}
