package app

import (
	"fmt"
	"log/slog"
	"time"

	. "modernc.org/tk9.0"

	"rihana-annotator/assets"
	"rihana-annotator/config"
	"rihana-annotator/debug"
	"rihana-annotator/domain/annotation"
	"rihana-annotator/ui/presenter"
	"rihana-annotator/ui/theme"
	"rihana-annotator/ui/view"
)

const (
	tick = 50 * time.Millisecond

	// Layout margins subtracted from the window when fitting the canvas.
	canvasMarginW = 80
	canvasMarginH = 360
)

type app struct {
	cfg       *config.Config
	cfgPath   string
	logger    *slog.Logger
	container *AppContainer
	loop      *presenter.Loop
	afterID   string
	lastState annotation.GestureState
}

// NewApp creates the main window and the component container.
func NewApp(title string, cfg *config.Config, cfgPath string, logger *slog.Logger) *app {
	a := &app{cfg: cfg, cfgPath: cfgPath, logger: logger, lastState: -1}

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.WindowW, cfg.WindowH))

	a.container = BuildContainer(cfg, logger, cfgPath)
	return a
}

// Start builds the layout, loads the placeholder study and runs the event
// loop until the window closes.
func (a *app) Start() {
	theme.InitStyles()

	c := a.container
	rv := c.RootView
	rv.Build(view.Handlers{
		OnMarkSign: func() {
			rv.Marker.Open(rv.CanvasOrigin(), c.AnnotationPresenter.MarkRegion)
		},
		OnImport: func() {
			if c.ImportPresenter != nil {
				c.ImportPresenter.Import()
			}
		},
		OnImportArea: func() { rv.Selector.OpenOrFocus() },
		OnToggleAll:  c.AnnotationPresenter.SetAllVisible,
		OnAssignType: func(id, code string) { c.AnnotationPresenter.AssignType(id, code) },
		OnDeleteSign: func(id string) { c.AnnotationPresenter.DeleteSign(id) },
		OnExtract:    c.ReportPresenter.Extract,
		OnApply:      c.AnnotationPresenter.SetDisplay,
		OnExit:       a.exitHandler,
	})
	// The selection overlay exists only after Build, so the import presenter
	// is wired here.
	c.ImportPresenter = presenter.NewImportPresenter(c.AnnotationPresenter, rv.Selector, rv, a.logger)

	if img, err := assets.PlaceholderRadiograph(); err != nil {
		a.logger.Error("placeholder study load failed", "error", err)
	} else {
		c.AnnotationPresenter.SetBaseImage(img)
	}
	c.AnnotationPresenter.Resize(a.cfg.WindowW-canvasMarginW, a.cfg.WindowH-canvasMarginH)

	if a.cfg.Debug {
		debug.StartGoroutineLogger(time.Second, a.logger)
		debug.StartMemLogger(2*time.Second, a.logger)
	}

	a.loop = presenter.NewLoop(c.AnnotationPresenter, a.scheduleUpdate)
	a.scheduleUpdate()

	App.Wait()
}

func (a *app) update() {
	// Reflect the gesture state only on transitions to avoid a Tk round trip
	// every tick.
	if state := a.container.Engine.State(); state != a.lastState {
		a.lastState = state
		func() {
			defer func() { _ = recover() }()
			a.container.RootView.SetStateLabel("State: " + state.String())
		}()
	}
	a.loop.Tick()
}

func (a *app) exitHandler() {
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	// Schedule the next update using TclAfter to stay on Tk's event loop thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}
