package model

import "rihana-annotator/domain/report"

// ReportModel holds the result of the most recent report extraction. Each
// successful parse replaces the whole record; a failed parse clears it, so a
// stale result can never be mistaken for the current document's fields.
// The zero value is empty and usable.
type ReportModel struct {
	extraction report.Extraction
	valid      bool
	lastErr    error
}

// NewReportModel returns an empty model.
func NewReportModel() *ReportModel { return &ReportModel{} }

// SetResult stores a fresh successful extraction.
func (m *ReportModel) SetResult(e report.Extraction) {
	if m == nil {
		return
	}
	m.extraction = e
	m.valid = true
	m.lastErr = nil
}

// SetError records a failed extraction, discarding any previous result.
func (m *ReportModel) SetError(err error) {
	if m == nil {
		return
	}
	m.extraction = report.Extraction{}
	m.valid = false
	m.lastErr = err
}

// Current returns the latest extraction and whether one is present.
func (m *ReportModel) Current() (report.Extraction, bool) {
	if m == nil {
		return report.Extraction{}, false
	}
	return m.extraction, m.valid
}

// LastError returns the most recent extraction failure, if any.
func (m *ReportModel) LastError() error {
	if m == nil {
		return nil
	}
	return m.lastErr
}
