package presenter

import (
	"errors"
	"testing"

	"rihana-annotator/domain/report"
	"rihana-annotator/ui/model"
)

const validReport = `Informe Nº: 900 Solicitude Nº: 1
CIP: AB12 NSS: 99 Data Nac: 1/2/1970 Sexo: Mujer NHC: 5
Cama: 12B Servizo Solicitante: URX Prioridade: Normal Estado: Informado
Data Realización: 5/6/2024 Data Informe: 6/6/2024
Exploracións solicitadas 1001 - Rx torax 5/6/2024
DATOS CLÍNICOS Tose persistente
Exploracións realizadas 1001 - Rx torax 5/6/2024 Non Non
ACHADOS Sen achados agudos
CONCLUSIÓNS Estudo normal`

type fakeReportView struct {
	text      string
	shown     []report.Extraction
	errsShown []error
}

func (f *fakeReportView) ReportText() string                 { return f.text }
func (f *fakeReportView) ShowExtraction(e report.Extraction) { f.shown = append(f.shown, e) }
func (f *fakeReportView) ShowExtractionError(err error)      { f.errsShown = append(f.errsShown, err) }

func TestReportPresenter_ExtractSuccess(t *testing.T) {
	m := model.NewReportModel()
	view := &fakeReportView{text: validReport}
	p := NewReportPresenter(m, view, discardLogger())

	p.Extract()

	if len(view.shown) != 1 {
		t.Fatalf("expected one extraction shown, got %d", len(view.shown))
	}
	got := view.shown[0]
	if got.Report.ReportNumber != "900" || got.Patient.PatientID != "AB12" {
		t.Fatalf("unexpected extraction: %+v", got)
	}
	if current, ok := m.Current(); !ok || current.Report.Bed != "12B" {
		t.Fatal("model must hold the extraction")
	}
}

func TestReportPresenter_ExtractFailureClearsModel(t *testing.T) {
	m := model.NewReportModel()
	m.SetResult(report.Extraction{Patient: report.Patient{PatientID: "OLD"}})
	view := &fakeReportView{text: "not a report"}
	p := NewReportPresenter(m, view, discardLogger())

	p.Extract()

	if len(view.errsShown) != 1 {
		t.Fatalf("expected one error shown, got %d", len(view.errsShown))
	}
	if !errors.Is(view.errsShown[0], report.ErrUnrecognizedReport) {
		t.Fatalf("unexpected error: %v", view.errsShown[0])
	}
	if _, ok := m.Current(); ok {
		t.Fatal("failed parse must clear the previous result")
	}
}
