package images

import (
	"errors"
	"image"
	"image/draw"
)

// CropRegion copies the part of frame covered by rect, clamped to the frame
// bounds and guaranteed at least 1x1. Used for the sign detail preview.
func CropRegion(frame *image.RGBA, rect image.Rectangle) (*image.RGBA, image.Rectangle, error) {
	if frame == nil {
		return nil, image.Rectangle{}, errors.New("nil frame")
	}
	b := frame.Bounds()
	r := rect.Intersect(b)
	if r.Dx() < 1 || r.Dy() < 1 {
		x0, y0 := rect.Min.X, rect.Min.Y
		if x0 < b.Min.X {
			x0 = b.Min.X
		}
		if x0 >= b.Max.X {
			x0 = b.Max.X - 1
		}
		if y0 < b.Min.Y {
			y0 = b.Min.Y
		}
		if y0 >= b.Max.Y {
			y0 = b.Max.Y - 1
		}
		r = image.Rect(x0, y0, x0+1, y0+1)
	}
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), frame, r.Min, draw.Src)
	return out, r, nil
}
