package annotation

import (
	"log/slog"
	"math"

	"rihana-annotator/domain/geometry"
)

// GestureState enumerates finite states of one drawing gesture.
type GestureState int

const (
	StateIdle GestureState = iota
	StateDrawing
)

func (s GestureState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDrawing:
		return "drawing"
	default:
		return "unknown"
	}
}

// Callbacks externalize the engine's outbound events. Any field may be nil.
type Callbacks struct {
	// OnRegionCommitted receives the regularized region of a finished drag
	// with nonzero area. The host wraps it into a Sign and owns it from then on.
	OnRegionCommitted func(geometry.Region)
	// OnScaleChanged fires when Rescale produces a new display scale factor.
	OnScaleChanged func(float64)
}

// Engine tracks a single in-progress drawing gesture over a scaled radiograph
// and converts between screen and image pixel spaces. It never owns the sign
// collection; mutations are expressed through Callbacks for the host to apply.
//
// All methods are synchronous and must be called from the UI event loop; the
// single-threaded delivery order makes the last pointer-move before pointer-up
// determine the committed region.
type Engine struct {
	logger *slog.Logger
	cb     Callbacks

	state    GestureState
	disabled bool

	imageW, imageH   int
	scale            float64
	canvasW, canvasH int

	anchorX, anchorY float64
	candidate        geometry.Region
	hasCandidate     bool
}

// NewEngine returns an engine with scale factor 1 and no image.
func NewEngine(logger *slog.Logger, cb Callbacks) *Engine {
	return &Engine{logger: logger, cb: cb, scale: 1}
}

// SetImageSize records the natural pixel dimensions of the loaded radiograph.
func (e *Engine) SetImageSize(w, h int) {
	if e == nil {
		return
	}
	e.imageW, e.imageH = w, h
}

// SetDisabled gates new gesture starts and move updates. A drag already in
// progress is not cancelled; its pointer-up is also suppressed while the flag
// is set, matching the historical behavior.
func (e *Engine) SetDisabled(disabled bool) {
	if e == nil {
		return
	}
	e.disabled = disabled
}

// Disabled reports the gating flag.
func (e *Engine) Disabled() bool { return e != nil && e.disabled }

// State returns the current gesture state.
func (e *Engine) State() GestureState {
	if e == nil {
		return StateIdle
	}
	return e.state
}

// Scale returns the current display scale factor (screen px per image px).
func (e *Engine) Scale() float64 {
	if e == nil || e.scale <= 0 {
		return 1
	}
	return e.scale
}

// CanvasSize returns the backing-store dimensions from the last Rescale.
func (e *Engine) CanvasSize() (int, int) {
	if e == nil {
		return 0, 0
	}
	return e.canvasW, e.canvasH
}

// Rescale fits the image into the container bounds preserving aspect ratio
// and returns the resulting scale factor. Canvas dimensions become image
// dimensions times the factor. Fires OnScaleChanged when the factor changed.
func (e *Engine) Rescale(maxW, maxH int) float64 {
	if e == nil {
		return 1
	}
	if e.imageW <= 0 || e.imageH <= 0 || maxW <= 0 || maxH <= 0 {
		return e.Scale()
	}
	scale := math.Min(float64(maxW)/float64(e.imageW), float64(maxH)/float64(e.imageH))
	prev := e.scale
	e.scale = scale
	e.canvasW = int(math.Round(float64(e.imageW) * scale))
	e.canvasH = int(math.Round(float64(e.imageH) * scale))
	if e.canvasW > maxW {
		e.canvasW = maxW
	}
	if e.canvasH > maxH {
		e.canvasH = maxH
	}
	if scale != prev {
		if e.logger != nil {
			e.logger.Debug("scale factor changed", "scale", scale, "canvas_w", e.canvasW, "canvas_h", e.canvasH)
		}
		if e.cb.OnScaleChanged != nil {
			e.cb.OnScaleChanged(scale)
		}
	}
	return scale
}

// PointerDown starts a new candidate region at the pointer's image-space
// position with zero extent. Ignored while disabled.
func (e *Engine) PointerDown(screenX, screenY float64) {
	if e == nil || e.disabled {
		return
	}
	e.anchorX = screenX / e.Scale()
	e.anchorY = screenY / e.Scale()
	e.candidate = geometry.Region{X: e.anchorX, Y: e.anchorY}
	e.hasCandidate = true
	e.state = StateDrawing
}

// PointerMove updates the candidate extent to the current image-space
// position minus the anchor. Ignored while disabled or not drawing.
func (e *Engine) PointerMove(screenX, screenY float64) {
	if e == nil || e.disabled || e.state != StateDrawing {
		return
	}
	e.candidate.Width = screenX/e.Scale() - e.anchorX
	e.candidate.Height = screenY/e.Scale() - e.anchorY
}

// PointerUp finishes the gesture. It is wired as a global listener so it fires
// even when the pointer leaves the canvas bounds. A candidate with zero area
// is discarded; otherwise the regularized region is emitted to the host.
func (e *Engine) PointerUp() {
	if e == nil || e.disabled || e.state != StateDrawing {
		return
	}
	e.state = StateIdle
	candidate := e.candidate
	e.candidate = geometry.Region{}
	e.hasCandidate = false
	if !candidate.IsValid() {
		if e.logger != nil {
			e.logger.Debug("zero-area drag discarded", "region", candidate)
		}
		return
	}
	region := candidate.Regularize()
	if e.cb.OnRegionCommitted != nil {
		e.cb.OnRegionCommitted(region)
	}
}

// Candidate returns the raw in-progress region (dimensions may be negative)
// and whether a gesture is active. Used to paint the transient outline.
func (e *Engine) Candidate() (geometry.Region, bool) {
	if e == nil {
		return geometry.Region{}, false
	}
	return e.candidate, e.hasCandidate
}
