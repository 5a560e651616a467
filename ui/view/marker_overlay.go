package view

import (
	"fmt"
	"image"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders
	. "modernc.org/tk9.0"
)

// MarkerOverlay is the transparent framing window used to mark a sign on the
// displayed radiograph. The user drags and resizes it over the finding; on
// confirm the window rectangle, translated into canvas coordinates, is
// delivered as one complete drawing gesture.
type MarkerOverlay interface {
	Open(origin image.Point, onMark func(x, y, w, h float64))
}

type markerOverlay struct {
	win    *ToplevelWidget
	origin image.Point
	onMark func(x, y, w, h float64)
}

// NewMarkerOverlay creates a new overlay manager.
func NewMarkerOverlay() MarkerOverlay {
	return &markerOverlay{}
}

// Open shows the framing window at the canvas origin. origin is the canvas
// top-left corner in screen coordinates; confirmed rectangles are reported
// relative to it.
func (v *markerOverlay) Open(origin image.Point, onMark func(x, y, w, h float64)) {
	if v.win != nil {
		WmGeometry(v.win.Window)
		return
	}
	v.origin = origin
	v.onMark = onMark
	win := App.Toplevel(Borderwidth(2), Background("#008080"))
	win.WmTitle("Mark Sign")
	v.win = win
	initW, initH := 120, 90
	WmGeometry(win.Window, fmt.Sprintf("%dx%d+%d+%d", initW, initH, origin.X, origin.Y))
	WmAttributes(win.Window, "-topmost", 1)
	WmAttributes(win.Window, "-toolwindow", true)
	WmAttributes(win.Window, "-transparentcolor", "#008080")
	GridRowConfigure(win.Window, 0, Weight(1))
	GridColumnConfigure(win.Window, 0, Weight(1))
	center := win.Frame(Background("#008080"))
	Grid(center, Row(0), Column(0), Sticky("nsew"))
	controls := win.Frame()
	Grid(controls, Row(1), Column(0), Sticky("we"))
	confirm := win.Button(Txt("Mark [Enter]"), Command(v.confirm))
	Grid(confirm, In(controls), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	cancel := win.Button(Txt("Cancel [Esc]"), Command(v.cancel))
	Grid(cancel, In(controls), Row(0), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Bind(win, "<Return>", Command(v.confirm))
	Bind(win, "<Escape>", Command(v.cancel))
}

func (v *markerOverlay) confirm() {
	if v.win == nil {
		return
	}
	geom := WmGeometry(v.win.Window)
	if rect, ok := parseGeometry(geom); ok && v.onMark != nil {
		local := rect.Sub(v.origin)
		v.onMark(float64(local.Min.X), float64(local.Min.Y), float64(local.Dx()), float64(local.Dy()))
	}
	v.destroy()
}

func (v *markerOverlay) cancel() { v.destroy() }

func (v *markerOverlay) destroy() {
	if v.win != nil {
		Destroy(v.win)
		v.win = nil
	}
}
