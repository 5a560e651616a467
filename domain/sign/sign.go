package sign

import (
	"strconv"
	"strings"

	"rihana-annotator/domain/geometry"
)

// SignType classifies a finding. Reference data; Code is the stable key used
// for id prefixes and color lookup.
type SignType struct {
	Code        string
	Name        string
	Description string
	Target      int
}

// Sign is one clinician-placed annotation on a radiograph.
type Sign struct {
	ID       string
	Type     *SignType
	Location geometry.Region
	// Render toggles visibility without removing the record.
	Render     bool
	Brightness float64
	Contrast   float64
}

// TypeCode returns the sign's type code or the untyped fallback code for
// freshly committed stubs.
func (s *Sign) TypeCode() string {
	if s == nil || s.Type == nil {
		return CodeNoFinding
	}
	return s.Type.Code
}

// Known type codes.
const (
	CodeCardiomegaly   = "CAR"
	CodeCondensation   = "CON"
	CodeMasses         = "MAS"
	CodeNodule         = "NOD"
	CodePleuralEff     = "PLE"
	CodePneumothorax   = "PNE"
	CodeRedistribution = "RED"
	CodeNoFinding      = "NOF"
	CodeNormal         = "NON"
)

// NextID assigns the id for a new sign of the given type: the type code plus
// the count of existing signs of that type. The ordinal is recomputed from the
// current slice at creation time and never compacted after deletions, matching
// the historical behavior (deleting "CAR0" and adding a CAR sign reuses the
// id for a different logical region).
func NextID(existing []Sign, code string) string {
	n := 0
	for i := range existing {
		if existing[i].TypeCode() == code {
			n++
		}
	}
	return code + strconv.Itoa(n)
}

// TypeByCode resolves one of the built-in reference types. Unknown codes map
// to the no-finding type so callers always get a usable value.
func TypeByCode(code string) *SignType {
	if t, ok := builtinTypes[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return t
	}
	return builtinTypes[CodeNoFinding]
}

// Types returns the built-in reference types in display order.
func Types() []*SignType {
	out := make([]*SignType, 0, len(typeOrder))
	for _, code := range typeOrder {
		out = append(out, builtinTypes[code])
	}
	return out
}

var typeOrder = []string{
	CodeCardiomegaly, CodeCondensation, CodeMasses, CodeNodule,
	CodePleuralEff, CodePneumothorax, CodeRedistribution,
	CodeNoFinding, CodeNormal,
}

var builtinTypes = map[string]*SignType{
	CodeCardiomegaly:   {Code: CodeCardiomegaly, Name: "Cardiomegaly"},
	CodeCondensation:   {Code: CodeCondensation, Name: "Condensation"},
	CodeMasses:         {Code: CodeMasses, Name: "Masses"},
	CodeNodule:         {Code: CodeNodule, Name: "Nodule"},
	CodePleuralEff:     {Code: CodePleuralEff, Name: "Pleural effusion"},
	CodePneumothorax:   {Code: CodePneumothorax, Name: "Pneumothorax"},
	CodeRedistribution: {Code: CodeRedistribution, Name: "Redistribution"},
	CodeNoFinding:      {Code: CodeNoFinding, Name: "No finding"},
	CodeNormal:         {Code: CodeNormal, Name: "Normal"},
}
