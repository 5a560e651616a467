package view

import (
	"image"

	"rihana-annotator/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// CanvasView shows the composed annotation frame: the adjusted radiograph
// with every overlay already rasterized in. Each update replaces the whole
// photo, so overlay pixels from the previous repaint can never linger.
type CanvasView interface {
	UpdateCanvas(img image.Image)
	Reset()
}

type canvasView struct {
	canvasLabel *LabelWidget
	prevPhoto   *Img // last Tk photo instance, disposed before replacement
}

const (
	placeholderW = 512
	placeholderH = 384
)

// NewCanvasView creates the canvas label and grids it across the main column.
func NewCanvasView(row int) CanvasView {
	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	canvas := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(canvas, Row(row), Column(0), Columnspan(4), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	return &canvasView{canvasLabel: canvas, prevPhoto: photo}
}

func (v *canvasView) UpdateCanvas(img image.Image) {
	if v == nil || v.canvasLabel == nil || img == nil {
		return
	}
	pngBytes := images.EncodePNG(img)
	// Dispose the previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(pngBytes))
	v.prevPhoto = photo
	v.canvasLabel.Configure(Image(photo))
}

func (v *canvasView) Reset() {
	if v == nil || v.canvasLabel == nil {
		return
	}
	placeholder := image.NewRGBA(image.Rect(0, 0, placeholderW, placeholderH))
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(images.EncodePNG(placeholder)))
	v.canvasLabel.Configure(Image(v.prevPhoto))
}
