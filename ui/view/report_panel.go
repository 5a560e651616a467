package view

import (
	"fmt"
	"strings"

	"rihana-annotator/assets"
	"rihana-annotator/domain/report"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ReportPanel encapsulates the report text area and the extraction results.
// The presenter reads the pasted text through ReportText and pushes outcomes
// back through ShowExtraction/ShowExtractionError.
type ReportPanel interface {
	Build(startRow int, onExtract func()) (endRow int)
	SetEditable(enabled bool)
	ReportText() string
	ShowExtraction(e report.Extraction)
	ShowExtractionError(err error)
}

type reportPanel struct {
	textArea   *TextWidget
	resultLbl  *LabelWidget
	extractBtn *ButtonWidget
}

// NewReportPanel creates an empty panel; widgets exist after Build.
func NewReportPanel() ReportPanel {
	return &reportPanel{}
}

func (v *reportPanel) Build(startRow int, onExtract func()) (row int) {
	row = startRow
	header := Label(Txt("Report text"), Anchor("w"))
	Grid(header, Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
	row++

	v.textArea = Text(Height(8), Width(60))
	Grid(v.textArea, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
	row++

	v.extractBtn = Button(Txt("Extract Fields"), Command(onExtract))
	Grid(v.extractBtn, Row(row), Column(0), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	sampleBtn := Button(Txt("Load Sample"), Command(func() { v.setText(assets.SampleReportText) }))
	Grid(sampleBtn, Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++

	v.resultLbl = Label(Txt("No report extracted"), Anchor("w"), Borderwidth(1), Relief("groove"))
	Grid(v.resultLbl, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *reportPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	if v.textArea != nil {
		v.textArea.Configure(State(state))
	}
	if v.extractBtn != nil {
		v.extractBtn.Configure(State(state))
	}
}

func (v *reportPanel) ReportText() string {
	if v == nil || v.textArea == nil {
		return ""
	}
	parts := v.textArea.Get("1.0", END)
	return strings.Join(parts, "")
}

func (v *reportPanel) setText(text string) {
	if v == nil || v.textArea == nil {
		return
	}
	v.textArea.Delete("1.0", END)
	v.textArea.Insert("1.0", text)
}

func (v *reportPanel) ShowExtraction(e report.Extraction) {
	if v == nil || v.resultLbl == nil {
		return
	}
	summary := fmt.Sprintf("Report %s | %s | patient %s (%s) | %d requested, %d performed",
		e.Report.ReportNumber,
		e.Report.Status,
		e.Patient.PatientID,
		e.Patient.Sex,
		len(e.Report.RequestedExplorations),
		len(e.Report.PerformedExplorations),
	)
	v.resultLbl.Configure(Txt(summary))
}

func (v *reportPanel) ShowExtractionError(err error) {
	if v == nil || v.resultLbl == nil {
		return
	}
	v.resultLbl.Configure(Txt("Extraction failed: " + err.Error()))
}
