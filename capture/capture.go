// Package capture imports radiographs from the screen, letting clinicians
// grab a study straight out of a PACS viewer window instead of exporting it
// to a file first.
package capture

import (
	"errors"
	"image"

	"github.com/vova616/screenshot"
)

// Grab returns a capture of the whole screen.
func Grab() (*image.RGBA, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, err
	}
	return img, nil
}

// GrabSelection captures only the given screen rectangle. An empty rectangle
// is rejected so callers fall back to a full-screen grab explicitly.
func GrabSelection(area image.Rectangle) (*image.RGBA, error) {
	if area.Dx() < 1 || area.Dy() < 1 {
		return nil, errors.New("empty selection rectangle")
	}
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, err
	}
	return img, nil
}
