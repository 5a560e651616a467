package images

import (
	"image"

	"github.com/disintegration/imaging"
)

// Adjust applies brightness and contrast given as percentages where 100 is
// neutral, CSS-filter style. Values are clamped to the library's -100..100
// delta range.
func Adjust(src image.Image, brightnessPct, contrastPct float64) image.Image {
	if src == nil {
		return nil
	}
	out := src
	if b := clampDelta(brightnessPct - 100); b != 0 {
		out = imaging.AdjustBrightness(out, b)
	}
	if c := clampDelta(contrastPct - 100); c != 0 {
		out = imaging.AdjustContrast(out, c)
	}
	return out
}

func clampDelta(v float64) float64 {
	if v < -100 {
		return -100
	}
	if v > 100 {
		return 100
	}
	return v
}
