package annotation

import (
	"fmt"
	"image/color"

	"rihana-annotator/domain/geometry"
	"rihana-annotator/domain/sign"
)

// OverlayKind distinguishes the overlay elements a repaint produces.
type OverlayKind int

const (
	// KindOutline is the stroked rectangle of a sign's location.
	KindOutline OverlayKind = iota
	// KindLabel is the id chip attached to a sign rectangle.
	KindLabel
	// KindHoverZone is an interactive area exposing the delete affordance and,
	// when Popover is non-empty, the detail popover.
	KindHoverZone
)

// Overlay is one declarative element of a repaint. Rect is in screen pixels,
// already regularized. The UI layer materializes the list each repaint and
// must discard the previous repaint's elements first.
type Overlay struct {
	Kind      OverlayKind
	SignID    string
	Rect      geometry.Region
	Text      string
	Fill      color.RGBA
	TextColor color.RGBA
	Delete    bool
	Popover   string
}

// Chip geometry in screen pixels.
const (
	chipHeight  = 16.0
	chipGap     = 2.0
	chipPadding = 8.0
	charWidth   = 7.0
)

// Hover-affordance thresholds on the scaled rectangle, in screen pixels.
// Large rects get delete plus detail popover, medium rects delete only,
// anything smaller just the outline and label.
const (
	hoverLongSide   = 60.0
	hoverShortSide  = 30.0
	deleteThreshold = 25.0
)

// OverlayOptions parameterizes BuildOverlays.
type OverlayOptions struct {
	// Scale converts image px to screen px. Values <= 0 mean 1.
	Scale float64
	// CanvasW/CanvasH bound chip placement so labels stay on-canvas.
	CanvasW, CanvasH float64
	// PixelsToPhysical converts an image-pixel distance to physical units
	// (millimeters) for the popover text. Nil leaves popovers in pixels.
	PixelsToPhysical func(float64) float64
	// MeasureText estimates rendered text width in screen px. Nil uses a
	// fixed per-character estimate.
	MeasureText func(string) float64
}

func (o OverlayOptions) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

func (o OverlayOptions) measure(text string) float64 {
	if o.MeasureText != nil {
		return o.MeasureText(text)
	}
	return float64(len(text))*charWidth + chipPadding
}

// BuildOverlays maps the rendered signs to the overlay list of one repaint:
// an outline per sign in the type's primary color, a label chip showing the
// sign id, and a hover zone for rectangles large enough to interact with.
// Signs with Render false are skipped entirely. Pure; does not touch pixels.
func BuildOverlays(signs []sign.Sign, opts OverlayOptions) []Overlay {
	scale := opts.scale()
	out := make([]Overlay, 0, len(signs)*3)
	for i := range signs {
		s := &signs[i]
		if !s.Render {
			continue
		}
		loc := s.Location.Regularize()
		rect := geometry.Region{
			X:      loc.X * scale,
			Y:      loc.Y * scale,
			Width:  loc.Width * scale,
			Height: loc.Height * scale,
		}
		primary := sign.ColorFor(s.TypeCode(), false)
		secondary := sign.ColorFor(s.TypeCode(), true)

		out = append(out, Overlay{
			Kind:   KindOutline,
			SignID: s.ID,
			Rect:   rect,
			Fill:   primary,
		})
		out = append(out, labelChip(s.ID, rect, primary, secondary, opts))

		if zone, ok := hoverZone(s, loc, rect, opts); ok {
			out = append(out, zone)
		}
	}
	return out
}

// labelChip positions the id chip just below the rectangle when it still fits
// on-canvas, otherwise inside the rectangle above its bottom edge. The chip is
// widened to the longer of its text and the rectangle, and centered on the
// rectangle when wider than it.
func labelChip(id string, rect geometry.Region, bg, fg color.RGBA, opts OverlayOptions) Overlay {
	chipW := opts.measure(id)
	if rect.Width > chipW {
		chipW = rect.Width
	}
	x := rect.X
	if chipW > rect.Width {
		x = rect.X - (chipW-rect.Width)/2
	}
	y := rect.Y + rect.Height + chipGap
	if opts.CanvasH > 0 && y+chipHeight > opts.CanvasH {
		y = rect.Y + rect.Height - chipHeight - chipGap
	}
	return Overlay{
		Kind:      KindLabel,
		SignID:    id,
		Rect:      geometry.Region{X: x, Y: y, Width: chipW, Height: chipHeight},
		Text:      id,
		Fill:      bg,
		TextColor: fg,
	}
}

// hoverZone decides the interactive affordance for one sign from its scaled
// dimensions. Small rectangles get none; too little room to hit the controls.
func hoverZone(s *sign.Sign, loc, rect geometry.Region, opts OverlayOptions) (Overlay, bool) {
	w, h := rect.Width, rect.Height
	large := (w > hoverLongSide && h > hoverShortSide) || (w > hoverShortSide && h > hoverLongSide)
	medium := w > deleteThreshold && h > deleteThreshold
	if !large && !medium {
		return Overlay{}, false
	}
	zone := Overlay{
		Kind:   KindHoverZone,
		SignID: s.ID,
		Rect:   rect,
		Delete: true,
	}
	if large {
		zone.Popover = popoverText(loc, opts)
	}
	return zone, true
}

// popoverText formats the detail popover from the regularized image-space
// location: area plus x/y/width/height, all in physical units when a
// conversion is available.
func popoverText(loc geometry.Region, opts OverlayOptions) string {
	unit := "px"
	conv := opts.PixelsToPhysical
	if conv != nil {
		unit = "mm"
	} else {
		conv = func(v float64) float64 { return v }
	}
	w := conv(loc.Width)
	h := conv(loc.Height)
	return fmt.Sprintf("area: %.1f %s² x: %.1f y: %.1f width: %.1f height: %.1f",
		w*h, unit, conv(loc.X), conv(loc.Y), w, h)
}
