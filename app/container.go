package app

import (
	"log/slog"

	"rihana-annotator/config"
	"rihana-annotator/domain/annotation"
	"rihana-annotator/ui/model"
	"rihana-annotator/ui/presenter"
	"rihana-annotator/ui/view"
)

// AppContainer assembles models, the gesture engine, presenters and the root
// view.
type AppContainer struct {
	Config      *config.Config
	Logger      *slog.Logger
	Annotations *model.AnnotationModel
	Reports     *model.ReportModel
	Engine      *annotation.Engine
	RootView    *view.RootView
	UI          view.UI

	// Presenters
	AnnotationPresenter *presenter.AnnotationPresenter
	ReportPresenter     *presenter.ReportPresenter
	ImportPresenter     *presenter.ImportPresenter
	Loop                *presenter.Loop
}

// BuildContainer constructs all components that exist before the Tk layout is
// built. The import presenter is wired by the app wrapper once the view's
// selection overlay exists.
func BuildContainer(cfg *config.Config, logger *slog.Logger, cfgPath string) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Annotations = model.NewAnnotationModel()
	c.Annotations.SetDisplay(cfg.Brightness, cfg.Contrast)
	c.Reports = model.NewReportModel()
	// View
	c.RootView = view.NewRootView(cfg, cfgPath, logger)
	c.UI = c.RootView
	// The engine's callbacks close over the presenter, so the presenter is
	// created first and the engine attached afterwards.
	c.AnnotationPresenter = presenter.NewAnnotationPresenter(c.Annotations, c.RootView, c.RootView, c.RootView, cfg, logger)
	c.Engine = annotation.NewEngine(logger, c.AnnotationPresenter.Callbacks())
	c.AnnotationPresenter.AttachEngine(c.Engine)
	c.ReportPresenter = presenter.NewReportPresenter(c.Reports, c.RootView, logger)
	return c
}
