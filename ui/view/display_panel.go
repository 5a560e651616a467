package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"rihana-annotator/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// DisplayPanel encapsulates the display-adjustment form: brightness and
// contrast percentages plus the pixel spacing used for physical-unit
// popovers. ApplyChanges writes back into *config.Config, persists it, and
// notifies the presenter.
type DisplayPanel interface {
	Build(startRow int, onApply func(brightness, contrast float64)) (endRow int)
	SetEditable(enabled bool)
	ApplyChanges()
}

type displayPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(brightness, contrast float64)
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewDisplayPanel creates the view bound to cfg.
func NewDisplayPanel(cfg *config.Config, cfgPath string, logger *slog.Logger) DisplayPanel {
	return &displayPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, widgets: make(map[string]*TextWidget)}
}

func (v *displayPanel) Build(startRow int, onApply func(brightness, contrast float64)) (row int) {
	c := v.cfg
	v.onApply = onApply
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("brightness", "Brightness % (100 = neutral)", fmt.Sprintf("%.0f", c.Brightness))
	makeRow("contrast", "Contrast % (100 = neutral)", fmt.Sprintf("%.0f", c.Contrast))
	makeRow("pixelSpacing", "Pixel Spacing mm", fmt.Sprintf("%.3f", c.PixelSpacingMM))
	v.applyBtn = Button(Txt("Apply Display"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *displayPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *displayPanel) text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	parts := w.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *displayPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		w := v.widgets[id]
		if w == nil {
			return
		}
		if f, ok := parseFloatField(strings.TrimSpace(v.text(w))); ok {
			*dst = f
		}
	}
	assignFloat("brightness", &cfg.Brightness)
	assignFloat("contrast", &cfg.Contrast)
	assignFloat("pixelSpacing", &cfg.PixelSpacingMM)
	if verr := cfg.Validate(); verr != nil {
		return
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
	if v.onApply != nil {
		v.onApply(v.cfg.Brightness, v.cfg.Contrast)
	}
}

// parsing helpers (unexported)
func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
