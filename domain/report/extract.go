package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ErrUnrecognizedReport is returned when any anchor pattern fails to match.
// The caller must treat the text as not being a recognized report and refuse
// to populate any field.
var ErrUnrecognizedReport = errors.New("unrecognized report format")

const datePattern = `\d{1,2}\s*/\s*\d{1,2}\s*/\s*\d{4}`

// Anchored field patterns. Each captures the value between two literal label
// markers of the report layout and must match exactly once against the
// whitespace-normalized text.
var (
	reWhitespace = regexp.MustCompile(`\s+`)
	reDate       = regexp.MustCompile(`(\d{1,2})\s*/\s*(\d{1,2})\s*/\s*(\d{4})`)

	reReportNumber   = regexp.MustCompile(`Informe Nº: (.*?) Solicitude`)
	reBed            = regexp.MustCompile(`Cama: (.*?) Servizo Solicitante:`)
	reApplicant      = regexp.MustCompile(`Servizo Solicitante: (.*?) Prioridade:`)
	rePriority       = regexp.MustCompile(`Prioridade: (.*?) Estado:`)
	reStatus         = regexp.MustCompile(`Estado: (.*?) Data Realización:`)
	reCompletionDate = regexp.MustCompile(`Data Realización: (.*?) Data Informe:`)
	reRequestedList  = regexp.MustCompile(`Exploracións solicitadas (.*?) DATOS CLÍNICOS`)
	reClinicalData   = regexp.MustCompile(`DATOS CLÍNICOS (.*?) Exploracións realizadas`)
	rePerformedList  = regexp.MustCompile(`Exploracións realizadas (.*?) ACHADOS`)
	reFindings       = regexp.MustCompile(`ACHADOS (.*?) CONCLUSIÓNS`)
	reConclusions    = regexp.MustCompile(`CONCLUSIÓNS (.*)$`)
	rePatientID      = regexp.MustCompile(`CIP: (.*?) NSS:`)
	reBirthdate      = regexp.MustCompile(`Data Nac: (.*?) Sexo:`)
	reSex            = regexp.MustCompile(`Sexo: (.*?) NHC:`)

	// Per-record patterns for the repeated lists. Requested records carry
	// code, description and date; performed records add the portable and
	// surgery flags.
	reRequestedRecord = regexp.MustCompile(`(\d+) - (.+?) (` + datePattern + `)`)
	rePerformedRecord = regexp.MustCompile(`(\d+) - (.+?) (` + datePattern + `) (Si|Non) (Si|Non)`)
)

// Extract parses the raw report text into an atomic Extraction. Whitespace
// runs are collapsed first, so multi-line input from PDF extraction is fine.
// Any anchor mismatch aborts the whole extraction before a single field is
// assigned; there are no partial results.
func Extract(raw string) (Extraction, error) {
	text := strings.TrimSpace(reWhitespace.ReplaceAllString(raw, " "))

	reportNumber, err := captureOne(reReportNumber, text, "report number")
	if err != nil {
		return Extraction{}, err
	}
	bed, err := captureOne(reBed, text, "bed")
	if err != nil {
		return Extraction{}, err
	}
	applicant, err := captureOne(reApplicant, text, "applicant")
	if err != nil {
		return Extraction{}, err
	}
	priority, err := captureOne(rePriority, text, "priority")
	if err != nil {
		return Extraction{}, err
	}
	status, err := captureOne(reStatus, text, "status")
	if err != nil {
		return Extraction{}, err
	}
	completion, err := captureOne(reCompletionDate, text, "completion date")
	if err != nil {
		return Extraction{}, err
	}
	requestedSpan, err := captureOne(reRequestedList, text, "requested explorations")
	if err != nil {
		return Extraction{}, err
	}
	clinicalData, err := captureOne(reClinicalData, text, "clinical data")
	if err != nil {
		return Extraction{}, err
	}
	performedSpan, err := captureOne(rePerformedList, text, "performed explorations")
	if err != nil {
		return Extraction{}, err
	}
	findings, err := captureOne(reFindings, text, "findings")
	if err != nil {
		return Extraction{}, err
	}
	conclusions, err := captureOne(reConclusions, text, "conclusions")
	if err != nil {
		return Extraction{}, err
	}
	patientID, err := captureOne(rePatientID, text, "patient id")
	if err != nil {
		return Extraction{}, err
	}
	birthdate, err := captureOne(reBirthdate, text, "birthdate")
	if err != nil {
		return Extraction{}, err
	}
	sexValue, err := captureOne(reSex, text, "sex")
	if err != nil {
		return Extraction{}, err
	}

	return Extraction{
		Report: Report{
			CompletionDate:        parseDate(completion),
			ReportNumber:          reportNumber,
			Applicant:             applicant,
			Priority:              priority,
			Status:                status,
			Bed:                   bed,
			RequestedExplorations: parseRequested(requestedSpan),
			ClinicalData:          clinicalData,
			PerformedExplorations: parsePerformed(performedSpan),
			Findings:              findings,
			Conclusions:           conclusions,
		},
		Patient: Patient{
			PatientID: patientID,
			Birthdate: parseDate(birthdate),
			Sex:       parseSex(sexValue),
		},
	}, nil
}

// captureOne applies an anchored pattern that must match exactly once and
// returns its trimmed capture group.
func captureOne(re *regexp.Regexp, text, field string) (string, error) {
	matches := re.FindAllStringSubmatch(text, 2)
	if len(matches) != 1 {
		return "", fmt.Errorf("%w: field %q", ErrUnrecognizedReport, field)
	}
	return strings.TrimSpace(matches[0][1]), nil
}

// parseRequested walks every per-record match of the requested list span.
// Capture order: whole match, code, description, date.
func parseRequested(span string) []RequestedExploration {
	var out []RequestedExploration
	for _, m := range reRequestedRecord.FindAllStringSubmatch(span, -1) {
		out = append(out, RequestedExploration{
			Code:        m[1],
			Description: strings.TrimSpace(m[2]),
			Date:        parseDate(m[3]),
		})
	}
	return out
}

// parsePerformed walks every per-record match of the performed list span.
// Capture order: whole match, code, description, date, portable, surgery.
func parsePerformed(span string) []PerformedExploration {
	var out []PerformedExploration
	for _, m := range rePerformedRecord.FindAllStringSubmatch(span, -1) {
		out = append(out, PerformedExploration{
			Code:        m[1],
			Description: strings.TrimSpace(m[2]),
			Date:        parseDate(m[3]),
			Portable:    m[4] == "Si",
			Surgery:     m[5] == "Si",
		})
	}
	return out
}

// parseDate reads a day/month/year value with arbitrary whitespace around the
// slashes. A value without a recognizable date yields the zero time; dates are
// not validated further here, surfacing only when later displayed.
func parseDate(value string) time.Time {
	m := reDate.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func parseSex(value string) Sex {
	if value == "Mujer" {
		return SexFemale
	}
	return SexMale
}
