package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"rihana-annotator/capture"
	"rihana-annotator/ui/images"
)

// Imports larger than this are downscaled before annotation; full multi
// monitor grabs are rarely wanted at native resolution.
const maxImportSide = 4096

// SelectionRectProvider returns the persisted screen-import rectangle.
type SelectionRectProvider interface {
	ActiveRect() *image.Rectangle
}

// StatusView surfaces one-line feedback in the status row.
type StatusView interface {
	SetStatusLabel(text string)
}

// ImportPresenter grabs a radiograph off the screen, typically out of a PACS
// viewer window, and hands it to the annotation presenter as the new study.
// With an active selection rectangle only that region is captured; otherwise
// the whole screen is.
type ImportPresenter struct {
	annotation *AnnotationPresenter
	selection  SelectionRectProvider
	status     StatusView
	logger     *slog.Logger

	grabFull func() (*image.RGBA, error)
	grabArea func(image.Rectangle) (*image.RGBA, error)
}

// NewImportPresenter returns a presenter backed by the real screen grabber.
func NewImportPresenter(annotation *AnnotationPresenter, selection SelectionRectProvider, status StatusView, logger *slog.Logger) *ImportPresenter {
	return &ImportPresenter{
		annotation: annotation,
		selection:  selection,
		status:     status,
		logger:     logger,
		grabFull:   capture.Grab,
		grabArea:   capture.GrabSelection,
	}
}

// Import performs one capture and loads the result as the current study.
func (p *ImportPresenter) Import() {
	if p == nil || p.annotation == nil {
		return
	}
	var (
		img *image.RGBA
		err error
	)
	if p.selection != nil {
		if rect := p.selection.ActiveRect(); rect != nil {
			img, err = p.grabArea(*rect)
			if err != nil {
				// Not every backend can capture a sub-rectangle directly;
				// grab the whole screen and crop instead.
				var full *image.RGBA
				full, err = p.grabFull()
				if err == nil {
					img, _, err = images.CropRegion(full, *rect)
				}
			}
		}
	}
	if img == nil && err == nil {
		img, err = p.grabFull()
	}
	if err != nil {
		if p.logger != nil {
			p.logger.Error("screen import failed", "error", err)
		}
		if p.status != nil {
			p.status.SetStatusLabel("Import failed: " + err.Error())
		}
		return
	}
	study := images.ScaleToFit(img, maxImportSide, maxImportSide)
	p.annotation.SetBaseImage(study)
	if p.status != nil {
		b := study.Bounds()
		p.status.SetStatusLabel(fmt.Sprintf("Imported %dx%d study region", b.Dx(), b.Dy()))
	}
}
