package view

import (
	"image"
	"log/slog"
	"strconv"
	"strings"

	"rihana-annotator/config"
	"rihana-annotator/domain/report"
	"rihana-annotator/domain/sign"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers bundles the user-action callbacks invoked by the root view.
type Handlers struct {
	OnMarkSign   func()
	OnImport     func()
	OnImportArea func()
	OnToggleAll  func(visible bool)
	OnAssignType func(id, code string)
	OnDeleteSign func(id string)
	OnExtract    func()
	OnApply      func(brightness, contrast float64)
	OnExit       func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for
// presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Stats    StudyStats
	Display  DisplayPanel
	Report   ReportPanel
	Canvas   CanvasView
	Selector SelectionOverlay
	Marker   MarkerOverlay

	// Widgets
	StateLabel  *LabelWidget
	StatusLabel *LabelWidget
	TypeSelect  *TComboboxWidget
	SignSelect  *TComboboxWidget

	handlers  Handlers
	pendingID string
	typeCodes []string
	signIDs   []string
	allShown  bool
	canvasRow int
}

// UI abstracts the subset of view operations needed by presenters, enabling
// decoupling from the concrete RootView implementation.
type UI interface {
	SetStateLabel(text string)
	SetStatusLabel(text string)
	UpdateCanvas(img image.Image)
	PromptSignType(id string)
	SetSigns(count int)
	SetZoom(scale float64)
	SetSignIDs(ids []string)
	ReportText() string
	ShowExtraction(e report.Extraction)
	ShowExtractionError(err error)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger, allShown: true}
}

// Build constructs the layout and registers the action handlers.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	rv.handlers = h

	// Row 0: study stats, gesture state, status text, buttons frame.
	rv.SignSelect = TCombobox(Values([]string{"<none>"}), Width(10))
	rv.Stats = NewStudyStats(0, 0, rv.SignSelect)
	rv.StateLabel = Label(Txt("State: idle"), Borderwidth(1), Relief("ridge"))
	Grid(rv.StateLabel, Row(0), Column(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	rv.StatusLabel = Label(Txt("No study loaded"), Anchor("w"))
	Grid(rv.StatusLabel, Row(0), Column(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(4), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	markBtn := Button(Txt("Mark Sign"), Command(h.OnMarkSign))
	Grid(markBtn, In(btnFrame), Row(0), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	importBtn := Button(Txt("Import From Screen"), Command(h.OnImport))
	Grid(importBtn, In(btnFrame), Row(1), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	areaBtn := Button(Txt("Import Region"), Command(h.OnImportArea))
	Grid(areaBtn, In(btnFrame), Row(2), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	toggleBtn := Button(Txt("Toggle Signs"), Command(func() {
		rv.allShown = !rv.allShown
		if h.OnToggleAll != nil {
			h.OnToggleAll(rv.allShown)
		}
	}))
	Grid(toggleBtn, In(btnFrame), Row(3), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(4), Column(0), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 1: sign classification and deletion controls.
	rv.typeCodes = rv.typeCodes[:0]
	labels := make([]string, 0, len(sign.Types()))
	for _, t := range sign.Types() {
		rv.typeCodes = append(rv.typeCodes, t.Code)
		labels = append(labels, t.Code+" "+t.Name)
	}
	rv.TypeSelect = TCombobox(Values(labels), Width(22))
	rv.TypeSelect.Current(0)
	Grid(rv.TypeSelect, Row(1), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.2m"))
	assignBtn := Button(Txt("Assign Type"), Command(rv.assignSelected))
	Grid(assignBtn, Row(1), Column(1), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	Grid(rv.SignSelect, Row(1), Column(2), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	deleteBtn := Button(Txt("Delete Sign"), Command(rv.deleteSelected))
	Grid(deleteBtn, Row(1), Column(3), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Display panel rows.
	rv.Display = NewDisplayPanel(rv.cfg, rv.cfgPath, rv.logger)
	row := rv.Display.Build(2, h.OnApply)

	// Canvas placement.
	rv.canvasRow = row
	rv.Canvas = NewCanvasView(row)
	row++

	// Report panel rows.
	rv.Report = NewReportPanel()
	rv.Report.Build(row, h.OnExtract)

	// Overlays created lazily on use.
	rv.Selector = NewSelectionOverlay(rv.cfg, rv.cfgPath, rv.logger)
	rv.Marker = NewMarkerOverlay()
}

// CanvasOrigin estimates the canvas top-left in screen coordinates from the
// main window geometry. Approximate; the offsets match the grid layout above
// and should be replaced with proper Tk winfo queries.
func (rv *RootView) CanvasOrigin() image.Point {
	const offsetX, offsetY = 8, 180
	geom := strings.TrimSpace(WmGeometry(App))
	if rect, ok := parseGeometry(geom); ok {
		return image.Pt(rect.Min.X+offsetX, rect.Min.Y+offsetY)
	}
	return image.Pt(offsetX, offsetY)
}

// assignSelected classifies the pending (or selector-chosen) sign with the
// type currently picked in the type combobox.
func (rv *RootView) assignSelected() {
	if rv == nil || rv.handlers.OnAssignType == nil {
		return
	}
	id := rv.pendingID
	if id == "" {
		id = rv.selectedSignID()
	}
	if id == "" {
		return
	}
	code := rv.selectedTypeCode()
	rv.handlers.OnAssignType(id, code)
	rv.pendingID = ""
}

func (rv *RootView) deleteSelected() {
	if rv == nil || rv.handlers.OnDeleteSign == nil {
		return
	}
	if id := rv.selectedSignID(); id != "" {
		rv.handlers.OnDeleteSign(id)
	}
}

func (rv *RootView) selectedTypeCode() string {
	if rv.TypeSelect == nil {
		return sign.CodeNoFinding
	}
	idxStr := rv.TypeSelect.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(rv.typeCodes) {
		if rv.logger != nil {
			rv.logger.Error("type selection parse error", "error", err)
		}
		return sign.CodeNoFinding
	}
	return rv.typeCodes[idx]
}

func (rv *RootView) selectedSignID() string {
	if rv.SignSelect == nil || len(rv.signIDs) == 0 {
		return ""
	}
	idxStr := rv.SignSelect.Current(nil)
	idx, err := strconv.Atoi(idxStr)
	if err != nil || idx < 0 || idx >= len(rv.signIDs) {
		if rv.logger != nil {
			rv.logger.Error("sign selection parse error", "error", err)
		}
		return ""
	}
	return rv.signIDs[idx]
}

// SetStateLabel updates the gesture state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetStatusLabel updates the one-line status text.
func (rv *RootView) SetStatusLabel(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// PromptSignType records the stub id awaiting classification and points the
// user at the type selector.
func (rv *RootView) PromptSignType(id string) {
	if rv == nil {
		return
	}
	rv.pendingID = id
	rv.SetStatusLabel("Classify " + id + " and press Assign Type")
}

// UpdateCanvas proxies to the underlying canvas view.
func (rv *RootView) UpdateCanvas(img image.Image) {
	if rv != nil && rv.Canvas != nil {
		rv.Canvas.UpdateCanvas(img)
	}
}

// SetSigns proxies the sign count to the stats row.
func (rv *RootView) SetSigns(count int) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetSigns(count)
	}
}

// SetZoom proxies the zoom factor to the stats row.
func (rv *RootView) SetZoom(scale float64) {
	if rv != nil && rv.Stats != nil {
		rv.Stats.SetZoom(scale)
	}
}

// SetSignIDs proxies the id list to the selector.
func (rv *RootView) SetSignIDs(ids []string) {
	if rv == nil {
		return
	}
	rv.signIDs = append(rv.signIDs[:0], ids...)
	if rv.Stats != nil {
		rv.Stats.SetSignIDs(ids)
	}
}

// --- ReportPresenter view contract methods ---

func (rv *RootView) ReportText() string {
	if rv == nil || rv.Report == nil {
		return ""
	}
	return rv.Report.ReportText()
}

func (rv *RootView) ShowExtraction(e report.Extraction) {
	if rv != nil && rv.Report != nil {
		rv.Report.ShowExtraction(e)
	}
}

func (rv *RootView) ShowExtractionError(err error) {
	if rv != nil && rv.Report != nil {
		rv.Report.ShowExtractionError(err)
	}
}
