package view

import (
	"fmt"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// StudyStats shows the sign count and zoom factor of the current study and
// feeds the sign id selector used by the delete and visibility actions.
type StudyStats interface {
	SetSigns(count int)
	SetZoom(scale float64)
	SetSignIDs(ids []string)
}

type studyStats struct {
	signsLbl *LabelWidget
	zoomLbl  *LabelWidget
	signSel  *TComboboxWidget
	lastIDs  string
}

// NewStudyStats creates the stat labels at (row, startCol) and binds the
// given sign selector so its values track the collection.
func NewStudyStats(row, startCol int, signSel *TComboboxWidget) StudyStats {
	s := &studyStats{
		signsLbl: Label(Width(12)),
		zoomLbl:  Label(Width(12)),
		signSel:  signSel,
	}
	Grid(s.signsLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.zoomLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	s.signsLbl.Configure(Txt("Signs: 0"))
	s.zoomLbl.Configure(Txt("Zoom: 100%"))
	return s
}

func (s *studyStats) SetSigns(count int) {
	if s == nil || s.signsLbl == nil {
		return
	}
	s.signsLbl.Configure(Txt(fmt.Sprintf("Signs: %d", count)))
}

func (s *studyStats) SetZoom(scale float64) {
	if s == nil || s.zoomLbl == nil {
		return
	}
	s.zoomLbl.Configure(Txt(fmt.Sprintf("Zoom: %.0f%%", scale*100)))
}

// SetSignIDs refreshes the selector values, skipping the Tk round trip when
// the id list did not change since the previous repaint.
func (s *studyStats) SetSignIDs(ids []string) {
	if s == nil || s.signSel == nil {
		return
	}
	key := fmt.Sprint(ids)
	if key == s.lastIDs {
		return
	}
	s.lastIDs = key
	if len(ids) == 0 {
		ids = []string{"<none>"}
	}
	s.signSel.Configure(Values(ids))
	s.signSel.Current(0)
}
