// Package report extracts structured fields from pasted radiology report
// text. The input is the semi-structured Galician report layout produced by
// PDF text extraction or clipboard paste.
package report

import "time"

// Sex of the patient as recognized by the report layout. Only the literal
// token "Mujer" maps to Female; anything else is Male. This narrowness is
// inherited from the source data and is not to be silently expanded.
type Sex int

const (
	SexMale Sex = iota
	SexFemale
)

func (s Sex) String() string {
	if s == SexFemale {
		return "female"
	}
	return "male"
}

// Patient identification fields extracted alongside the report.
type Patient struct {
	PatientID string
	Birthdate time.Time
	Sex       Sex
}

// RequestedExploration is one record of the requested-explorations list.
type RequestedExploration struct {
	Code        string
	Description string
	Date        time.Time
}

// PerformedExploration is one record of the performed-explorations list.
type PerformedExploration struct {
	Code        string
	Description string
	Date        time.Time
	Portable    bool
	Surgery     bool
}

// Report holds every extracted report field.
type Report struct {
	CompletionDate        time.Time
	ReportNumber          string
	Applicant             string
	Priority              string
	Status                string
	Bed                   string
	RequestedExplorations []RequestedExploration
	ClinicalData          string
	PerformedExplorations []PerformedExploration
	Findings              string
	Conclusions           string
}

// Extraction is the atomic result of one successful parse. It is constructed
// fresh per parse and never partially populated.
type Extraction struct {
	Report  Report
	Patient Patient
}
