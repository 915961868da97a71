package raster

// Threshold is the intensity at or below which a pixel fires the laser.
const Threshold = 128

// Binarize maps an intensity to '1' (fire) or '0'. Dark pixels fire
// unless invert is set.
func Binarize(p uint8, invert bool) byte {
	dark := p <= Threshold
	if dark != invert {
		return '1'
	}
	return '0'
}
