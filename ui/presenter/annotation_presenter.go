package presenter

import (
	"image"
	"log/slog"
	"time"

	"rihana-annotator/config"
	"rihana-annotator/domain/annotation"
	"rihana-annotator/domain/geometry"
	"rihana-annotator/ui/images"
	"rihana-annotator/ui/model"
)

// CanvasView receives the composed frame of each repaint.
type CanvasView interface {
	UpdateCanvas(img image.Image)
}

// TypePicker asks the user to classify a freshly marked region.
type TypePicker interface {
	PromptSignType(id string)
}

// StatsView displays the sign count and zoom factor in the status row and
// keeps the sign id selector in sync with the collection.
type StatsView interface {
	SetSigns(count int)
	SetZoom(scale float64)
	SetSignIDs(ids []string)
}

// AnnotationPresenter mediates between the gesture engine, the sign
// collection and the canvas view. It owns the repaint cycle: on every tick it
// rebuilds the overlay list from the model and rasterizes a whole replacement
// frame, so no per-widget cleanup is ever needed between repaints.
type AnnotationPresenter struct {
	model  *model.AnnotationModel
	view   CanvasView
	picker TypePicker
	stats  StatsView
	cfg    *config.Config
	logger *slog.Logger

	engine *annotation.Engine
	base   image.Image

	// Display-adjusted base cached across repaints; invalidated when the
	// image or the brightness/contrast values change.
	adjusted    image.Image
	adjBright   float64
	adjContrast float64
}

// NewAnnotationPresenter constructs the presenter. The engine is attached
// separately because its callbacks close over the presenter.
func NewAnnotationPresenter(m *model.AnnotationModel, view CanvasView, picker TypePicker, stats StatsView, cfg *config.Config, logger *slog.Logger) *AnnotationPresenter {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &AnnotationPresenter{model: m, view: view, picker: picker, stats: stats, cfg: cfg, logger: logger}
}

// Callbacks returns the engine callbacks routed through this presenter.
func (p *AnnotationPresenter) Callbacks() annotation.Callbacks {
	return annotation.Callbacks{
		OnRegionCommitted: p.OnRegionCommitted,
		OnScaleChanged:    func(float64) { p.model.MarkDirty() },
	}
}

// AttachEngine binds the gesture engine after construction.
func (p *AnnotationPresenter) AttachEngine(e *annotation.Engine) {
	if p == nil {
		return
	}
	p.engine = e
}

// OnRegionCommitted promotes a finished drag into an untyped sign stub and
// asks the view to classify it.
func (p *AnnotationPresenter) OnRegionCommitted(region geometry.Region) {
	if p == nil || p.model == nil {
		return
	}
	stub := p.model.AddRegion(region)
	if p.logger != nil {
		p.logger.Debug("region committed", "id", stub.ID, "region", region)
	}
	if p.picker != nil {
		p.picker.PromptSignType(stub.ID)
	}
}

// SetBaseImage replaces the study being annotated and resets the engine's
// image dimensions. Existing signs are kept; they belong to the session, not
// the pixels.
func (p *AnnotationPresenter) SetBaseImage(img image.Image) {
	if p == nil {
		return
	}
	p.base = img
	p.adjusted = nil
	if p.engine != nil && img != nil {
		b := img.Bounds()
		p.engine.SetImageSize(b.Dx(), b.Dy())
	}
	if p.model != nil {
		p.model.MarkDirty()
	}
}

// Resize refits the study into the new container bounds.
func (p *AnnotationPresenter) Resize(maxW, maxH int) {
	if p == nil || p.engine == nil {
		return
	}
	p.engine.Rescale(maxW, maxH)
	if p.model != nil {
		p.model.MarkDirty()
	}
}

// MarkRegion replays a canvas-space rectangle as one complete drawing
// gesture. Used by the marker overlay, which delivers a finished rectangle
// rather than raw pointer events.
func (p *AnnotationPresenter) MarkRegion(x, y, w, h float64) {
	if p == nil || p.engine == nil {
		return
	}
	p.engine.PointerDown(x, y)
	p.engine.PointerMove(x+w, y+h)
	p.engine.PointerUp()
}

// AssignType classifies a sign; the id is recomputed from the type ordinal.
func (p *AnnotationPresenter) AssignType(id, code string) bool {
	if p == nil || p.model == nil {
		return false
	}
	s, ok := p.model.AssignType(id, code)
	if ok && p.logger != nil {
		p.logger.Info("sign classified", "id", s.ID, "type", code)
	}
	return ok
}

// DeleteSign removes a sign by id.
func (p *AnnotationPresenter) DeleteSign(id string) bool {
	if p == nil || p.model == nil {
		return false
	}
	ok := p.model.Delete(id)
	if ok && p.logger != nil {
		p.logger.Info("sign deleted", "id", id)
	}
	return ok
}

// SetSignVisible toggles one sign's outline without removing the record.
func (p *AnnotationPresenter) SetSignVisible(id string, visible bool) bool {
	if p == nil || p.model == nil {
		return false
	}
	return p.model.SetRender(id, visible)
}

// SetAllVisible shows or hides every sign at once.
func (p *AnnotationPresenter) SetAllVisible(visible bool) {
	if p == nil || p.model == nil {
		return
	}
	p.model.SetAllRender(visible)
}

// SetDisplay stores brightness/contrast percentages (100 = neutral).
func (p *AnnotationPresenter) SetDisplay(brightness, contrast float64) {
	if p == nil || p.model == nil {
		return
	}
	p.model.SetDisplay(brightness, contrast)
}

// Tick repaints when the model changed or a drag is in progress. The drag
// candidate mutates on every pointer move without touching the model, so an
// active gesture forces the repaint unconditionally.
func (p *AnnotationPresenter) Tick(now time.Time) {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	drawing := p.engine != nil && p.engine.State() == annotation.StateDrawing
	if !drawing && !p.model.Dirty() {
		return
	}
	p.repaint()
}

func (p *AnnotationPresenter) repaint() {
	cw, ch := 0, 0
	scale := 1.0
	if p.engine != nil {
		cw, ch = p.engine.CanvasSize()
		scale = p.engine.Scale()
	}
	if cw < 1 || ch < 1 {
		if p.base == nil {
			p.model.MarkClean()
			return
		}
		b := p.base.Bounds()
		cw, ch = b.Dx(), b.Dy()
	}

	opts := annotation.OverlayOptions{
		Scale:       scale,
		CanvasW:     float64(cw),
		CanvasH:     float64(ch),
		MeasureText: images.MeasureText,
	}
	if spacing := p.cfg.PixelSpacingMM; spacing > 0 {
		opts.PixelsToPhysical = func(v float64) float64 { return v * spacing }
	}
	overlays := annotation.BuildOverlays(p.model.Signs(), opts)
	if p.engine != nil {
		if cand, ok := p.engine.Candidate(); ok {
			overlays = append(overlays, images.CandidateOutline(cand, scale))
		}
	}

	frame := images.Compose(p.adjustedBase(), cw, ch, overlays)
	if frame != nil {
		p.view.UpdateCanvas(frame)
	}
	if p.stats != nil {
		signs := p.model.Signs()
		ids := make([]string, len(signs))
		for i := range signs {
			ids[i] = signs[i].ID
		}
		p.stats.SetSigns(len(signs))
		p.stats.SetZoom(scale)
		p.stats.SetSignIDs(ids)
	}
	p.model.MarkClean()
}

func (p *AnnotationPresenter) adjustedBase() image.Image {
	if p.base == nil {
		return nil
	}
	b, c := p.model.Brightness(), p.model.Contrast()
	if p.adjusted != nil && p.adjBright == b && p.adjContrast == c {
		return p.adjusted
	}
	p.adjusted = images.Adjust(p.base, b, c)
	p.adjBright, p.adjContrast = b, c
	return p.adjusted
}
