package report

import (
	"errors"
	"strings"
	"testing"
	"time"
)

const sampleReport = `Datos do paciente CIP: ABC123 NSS: 281234567890 ` +
	`Data Nac: 05 / 06 / 1980 Sexo: Mujer NHC: 123456 ` +
	`Informe Nº: 2021-0042 Solicitude Cama: 12B Servizo Solicitante: URX ` +
	`Prioridade: Normal Estado: Informada ` +
	`Data Realización: 17 / 03 / 2021 Data Informe: 18 / 03 / 2021 ` +
	`Exploracións solicitadas ` +
	`91010 - RX tórax PA e LAT 17 / 03 / 2021 ` +
	`91011 - RX tórax portátil 17 / 03 / 2021 ` +
	`DATOS CLÍNICOS Disnea e febre de tres días. ` +
	`Exploracións realizadas ` +
	`91010 - RX tórax PA e LAT 17 / 03 / 2021 Si Non ` +
	`ACHADOS Infiltrado alveolar en lobo inferior dereito. ` +
	`CONCLUSIÓNS Achados compatibles con pneumonía.`

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtract_FullSample(t *testing.T) {
	got, err := Extract(sampleReport)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}

	if got.Patient.PatientID != "ABC123" {
		t.Errorf("patient id: got %q", got.Patient.PatientID)
	}
	if got.Patient.Sex != SexFemale {
		t.Errorf("sex: got %v", got.Patient.Sex)
	}
	if !got.Patient.Birthdate.Equal(date(1980, time.June, 5)) {
		t.Errorf("birthdate: got %v", got.Patient.Birthdate)
	}

	r := got.Report
	if r.ReportNumber != "2021-0042" {
		t.Errorf("report number: got %q", r.ReportNumber)
	}
	if r.Bed != "12B" || r.Applicant != "URX" || r.Priority != "Normal" || r.Status != "Informada" {
		t.Errorf("header fields: %+v", r)
	}
	if !r.CompletionDate.Equal(date(2021, time.March, 17)) {
		t.Errorf("completion date: got %v", r.CompletionDate)
	}
	if r.ClinicalData != "Disnea e febre de tres días." {
		t.Errorf("clinical data: got %q", r.ClinicalData)
	}
	if r.Findings != "Infiltrado alveolar en lobo inferior dereito." {
		t.Errorf("findings: got %q", r.Findings)
	}
	if r.Conclusions != "Achados compatibles con pneumonía." {
		t.Errorf("conclusions: got %q", r.Conclusions)
	}

	if len(r.RequestedExplorations) != 2 {
		t.Fatalf("requested explorations: got %d", len(r.RequestedExplorations))
	}
	first := r.RequestedExplorations[0]
	if first.Code != "91010" || first.Description != "RX tórax PA e LAT" || !first.Date.Equal(date(2021, time.March, 17)) {
		t.Errorf("requested[0]: %+v", first)
	}
	if r.RequestedExplorations[1].Description != "RX tórax portátil" {
		t.Errorf("requested[1]: %+v", r.RequestedExplorations[1])
	}

	if len(r.PerformedExplorations) != 1 {
		t.Fatalf("performed explorations: got %d", len(r.PerformedExplorations))
	}
	p := r.PerformedExplorations[0]
	if p.Code != "91010" || !p.Portable || p.Surgery {
		t.Errorf("performed[0]: %+v", p)
	}
}

func TestExtract_NormalizesMultilineInput(t *testing.T) {
	// PDF text extraction delivers the same content with newlines and
	// irregular runs of whitespace.
	mangled := strings.ReplaceAll(sampleReport, ". ", ".\n\n")
	mangled = strings.ReplaceAll(mangled, ": ", ":\t ")

	got, err := Extract(mangled)
	if err != nil {
		t.Fatalf("extract failed on multi-line input: %v", err)
	}
	if got.Patient.PatientID != "ABC123" || len(got.Report.RequestedExplorations) != 2 {
		t.Fatalf("multi-line extraction diverged: %+v", got)
	}
}

func TestExtract_MissingSectionFailsAtomically(t *testing.T) {
	broken := strings.ReplaceAll(sampleReport, "CONCLUSIÓNS", "")
	got, err := Extract(broken)
	if err == nil {
		t.Fatal("expected failure for missing section marker")
	}
	if !errors.Is(err, ErrUnrecognizedReport) {
		t.Fatalf("expected ErrUnrecognizedReport, got %v", err)
	}
	if got.Patient != (Patient{}) {
		t.Fatalf("failed extraction must not populate patient fields: %+v", got.Patient)
	}
	if got.Report.ReportNumber != "" || got.Report.RequestedExplorations != nil || got.Report.PerformedExplorations != nil {
		t.Fatalf("failed extraction must not populate report fields: %+v", got.Report)
	}
}

func TestExtract_DuplicateAnchorFails(t *testing.T) {
	doubled := sampleReport + " CIP: OTRO NSS:"
	if _, err := Extract(doubled); !errors.Is(err, ErrUnrecognizedReport) {
		t.Fatalf("ambiguous anchor must fail, got %v", err)
	}
}

func TestExtract_SexDefaultsToMale(t *testing.T) {
	male := strings.ReplaceAll(sampleReport, "Sexo: Mujer", "Sexo: Hombre")
	got, err := Extract(male)
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if got.Patient.Sex != SexMale {
		t.Fatalf("any non-Mujer token must map to male, got %v", got.Patient.Sex)
	}
}

func TestParseDate_WhitespaceVariants(t *testing.T) {
	cases := []string{"5/6/1980", "05 / 06 / 1980", "05/ 06 /1980", "5  /  6  /  1980"}
	want := date(1980, time.June, 5)
	for _, c := range cases {
		if got := parseDate(c); !got.Equal(want) {
			t.Errorf("parseDate(%q) = %v, want %v", c, got, want)
		}
	}
	if !parseDate("non a date").IsZero() {
		t.Error("unparseable date must yield zero time")
	}
}
