package raster

import (
	"fmt"
	"math"
)

type Scale struct {
	DotSizeMM      float64
	TargetHeightMM float64
}

// ComputeScale derives the size of one dot from the requested output
// width and the image width in pixels.
func ComputeScale(targetWidthMM float64, width, height int) (Scale, error) {
	if width <= 0 {
		return Scale{}, &ConfigError{Field: "width", Msg: fmt.Sprintf("image width must be positive, got %d pixels", width)}
	}
	if err := checkTargetWidth(targetWidthMM); err != nil {
		return Scale{}, err
	}
	dot := targetWidthMM / float64(width)
	return Scale{
		DotSizeMM:      dot,
		TargetHeightMM: float64(height) * dot,
	}, nil
}

func checkTargetWidth(mm float64) error {
	if math.IsNaN(mm) || math.IsInf(mm, 0) || mm <= 0 {
		return &ConfigError{Field: "target width", Msg: fmt.Sprintf("must be a positive number of millimetres, got %v", mm)}
	}
	return nil
}
