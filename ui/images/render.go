package images

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"rihana-annotator/domain/annotation"
	"rihana-annotator/domain/geometry"
)

const strokeWidth = 2

var labelFace = basicfont.Face7x13

// MeasureText returns the rendered width in pixels of label-chip text plus
// horizontal padding. Matches the face used by Compose so chips fit.
func MeasureText(text string) float64 {
	return float64(font.MeasureString(labelFace, text)>>6) + 8
}

// Compose rasterizes one repaint: the base image scaled to the canvas size
// followed by every overlay element in order. Pass one of the two passes of
// the rendering contract each call; the returned image replaces the previous
// frame wholesale, so stale overlay pixels can never accumulate.
func Compose(base image.Image, canvasW, canvasH int, overlays []annotation.Overlay) *image.RGBA {
	if canvasW < 1 || canvasH < 1 {
		return nil
	}
	var dst *image.RGBA
	if base != nil {
		dst = ScaleDisplay(base, canvasW, canvasH)
	} else {
		dst = image.NewRGBA(image.Rect(0, 0, canvasW, canvasH))
	}
	for _, o := range overlays {
		switch o.Kind {
		case annotation.KindOutline:
			strokeRect(dst, o.Rect, o.Fill)
		case annotation.KindLabel:
			fillRect(dst, o.Rect, o.Fill)
			drawChipText(dst, o.Rect, o.Text, o.TextColor)
		case annotation.KindHoverZone:
			if o.Delete {
				drawDeleteGlyph(dst, o.Rect, o.Fill)
			}
		}
	}
	return dst
}

// CandidateOutline wraps the in-progress drag region as an overlay so the
// transient outline renders through the same pass as committed signs.
func CandidateOutline(candidate geometry.Region, scale float64) annotation.Overlay {
	r := candidate.Regularize()
	return annotation.Overlay{
		Kind: annotation.KindOutline,
		Rect: geometry.Region{
			X:      r.X * scale,
			Y:      r.Y * scale,
			Width:  r.Width * scale,
			Height: r.Height * scale,
		},
		Fill: color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}
}

func rectToBounds(r geometry.Region) (x0, y0, x1, y1 int) {
	rr := r.Regularize()
	x0 = int(math.Round(rr.X))
	y0 = int(math.Round(rr.Y))
	x1 = int(math.Round(rr.X + rr.Width))
	y1 = int(math.Round(rr.Y + rr.Height))
	return
}

func strokeRect(dst *image.RGBA, r geometry.Region, col color.RGBA) {
	x0, y0, x1, y1 := rectToBounds(r)
	for t := 0; t < strokeWidth; t++ {
		hline(dst, x0, x1, y0+t, col)
		hline(dst, x0, x1, y1-1-t, col)
		vline(dst, x0+t, y0, y1, col)
		vline(dst, x1-1-t, y0, y1, col)
	}
}

func fillRect(dst *image.RGBA, r geometry.Region, col color.RGBA) {
	x0, y0, x1, y1 := rectToBounds(r)
	b := dst.Bounds()
	for y := max(y0, b.Min.Y); y < min(y1, b.Max.Y); y++ {
		for x := max(x0, b.Min.X); x < min(x1, b.Max.X); x++ {
			dst.SetRGBA(x, y, col)
		}
	}
}

func hline(dst *image.RGBA, x0, x1, y int, col color.RGBA) {
	b := dst.Bounds()
	if y < b.Min.Y || y >= b.Max.Y {
		return
	}
	for x := max(x0, b.Min.X); x < min(x1, b.Max.X); x++ {
		dst.SetRGBA(x, y, col)
	}
}

func vline(dst *image.RGBA, x, y0, y1 int, col color.RGBA) {
	b := dst.Bounds()
	if x < b.Min.X || x >= b.Max.X {
		return
	}
	for y := max(y0, b.Min.Y); y < min(y1, b.Max.Y); y++ {
		dst.SetRGBA(x, y, col)
	}
}

// drawChipText centers the label text inside the chip rectangle.
func drawChipText(dst *image.RGBA, chip geometry.Region, text string, col color.RGBA) {
	if text == "" {
		return
	}
	textW := font.MeasureString(labelFace, text) >> 6
	x0, y0, x1, y1 := rectToBounds(chip)
	x := x0 + (x1-x0-int(textW))/2
	y := y0 + (y1-y0+labelFace.Ascent-labelFace.Descent)/2
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: labelFace,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawDeleteGlyph paints a small x marker at the rectangle's top-right corner
// as the static hint for the delete affordance.
func drawDeleteGlyph(dst *image.RGBA, r geometry.Region, col color.RGBA) {
	if col.A == 0 {
		col = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	_, y0, x1, _ := rectToBounds(r)
	cx := x1 - 10
	cy := y0 + 4
	b := dst.Bounds()
	for i := 0; i < 6; i++ {
		for _, p := range [][2]int{{cx + i, cy + i}, {cx + 5 - i, cy + i}} {
			if p[0] >= b.Min.X && p[0] < b.Max.X && p[1] >= b.Min.Y && p[1] < b.Max.Y {
				dst.SetRGBA(p[0], p[1], col)
			}
		}
	}
}
