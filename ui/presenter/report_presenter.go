package presenter

import (
	"log/slog"

	"rihana-annotator/domain/report"
	"rihana-annotator/ui/model"
)

// ReportView narrows what the presenter needs from the report panel.
type ReportView interface {
	ReportText() string
	ShowExtraction(report.Extraction)
	ShowExtractionError(err error)
}

// ReportPresenter runs field extraction over the pasted report text and
// pushes the outcome to the model and the view. Extraction is atomic: a
// document that fails on any field yields no partial record.
type ReportPresenter struct {
	model  *model.ReportModel
	view   ReportView
	logger *slog.Logger
}

// NewReportPresenter returns a new ReportPresenter.
func NewReportPresenter(m *model.ReportModel, view ReportView, logger *slog.Logger) *ReportPresenter {
	return &ReportPresenter{model: m, view: view, logger: logger}
}

// Extract parses the current panel text.
func (p *ReportPresenter) Extract() {
	if p == nil || p.model == nil || p.view == nil {
		return
	}
	ext, err := report.Extract(p.view.ReportText())
	if err != nil {
		p.model.SetError(err)
		p.view.ShowExtractionError(err)
		if p.logger != nil {
			p.logger.Warn("report extraction failed", "error", err)
		}
		return
	}
	p.model.SetResult(ext)
	p.view.ShowExtraction(ext)
	if p.logger != nil {
		p.logger.Info("report extracted",
			"report", ext.Report.ReportNumber,
			"patient", ext.Patient.PatientID,
			"requested", len(ext.Report.RequestedExplorations),
			"performed", len(ext.Report.PerformedExplorations),
		)
	}
}
