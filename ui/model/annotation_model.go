package model

import (
	"rihana-annotator/domain/geometry"
	"rihana-annotator/domain/sign"
)

// AnnotationModel owns the sign collection for the exploration being edited.
// The engine and views receive the slice read-only; every mutation replaces
// it through a model method and marks the model dirty so the presenter can
// schedule a repaint. No synchronization needed: updates occur on the UI
// thread. The zero value is usable with neutral display settings.
type AnnotationModel struct {
	signs      []sign.Sign
	brightness float64
	contrast   float64
	dirty      bool
}

// NewAnnotationModel returns a model with neutral brightness/contrast.
func NewAnnotationModel() *AnnotationModel {
	return &AnnotationModel{brightness: 100, contrast: 100}
}

// Signs returns the current collection. Callers must treat it as read-only
// within one render cycle.
func (m *AnnotationModel) Signs() []sign.Sign {
	if m == nil {
		return nil
	}
	return m.signs
}

// AddRegion promotes a committed drag region to an untyped sign stub and
// returns it. The id is the untyped ordinal until a type is assigned.
func (m *AnnotationModel) AddRegion(region geometry.Region) sign.Sign {
	if m == nil {
		return sign.Sign{}
	}
	s := sign.Sign{
		ID:         sign.NextID(m.signs, sign.CodeNoFinding),
		Location:   region,
		Render:     true,
		Brightness: m.Brightness(),
		Contrast:   m.Contrast(),
	}
	m.signs = append(append([]sign.Sign(nil), m.signs...), s)
	m.dirty = true
	return s
}

// AssignType classifies a sign, reassigning its id to the new type's ordinal.
// The ordinal is the count of other signs already carrying that type; it is
// recomputed at assignment time and never compacted after deletions.
func (m *AnnotationModel) AssignType(id, code string) (sign.Sign, bool) {
	if m == nil {
		return sign.Sign{}, false
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return sign.Sign{}, false
	}
	t := sign.TypeByCode(code)
	others := make([]sign.Sign, 0, len(m.signs)-1)
	others = append(others, m.signs[:idx]...)
	others = append(others, m.signs[idx+1:]...)

	next := append([]sign.Sign(nil), m.signs...)
	next[idx].Type = t
	next[idx].ID = sign.NextID(others, t.Code)
	m.signs = next
	m.dirty = true
	return next[idx], true
}

// Delete removes a sign by id. Remaining ids are left untouched.
func (m *AnnotationModel) Delete(id string) bool {
	if m == nil {
		return false
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	next := make([]sign.Sign, 0, len(m.signs)-1)
	next = append(next, m.signs[:idx]...)
	next = append(next, m.signs[idx+1:]...)
	m.signs = next
	m.dirty = true
	return true
}

// SetRender toggles one sign's visibility without removing the record.
func (m *AnnotationModel) SetRender(id string, render bool) bool {
	if m == nil {
		return false
	}
	idx := m.indexOf(id)
	if idx < 0 {
		return false
	}
	if m.signs[idx].Render == render {
		return true
	}
	next := append([]sign.Sign(nil), m.signs...)
	next[idx].Render = render
	m.signs = next
	m.dirty = true
	return true
}

// SetAllRender toggles visibility for every sign at once.
func (m *AnnotationModel) SetAllRender(render bool) {
	if m == nil || len(m.signs) == 0 {
		return
	}
	next := append([]sign.Sign(nil), m.signs...)
	changed := false
	for i := range next {
		if next[i].Render != render {
			next[i].Render = render
			changed = true
		}
	}
	if changed {
		m.signs = next
		m.dirty = true
	}
}

// SetDisplay stores the brightness/contrast percentages (100 = neutral).
func (m *AnnotationModel) SetDisplay(brightness, contrast float64) {
	if m == nil {
		return
	}
	if m.brightness == brightness && m.contrast == contrast {
		return
	}
	m.brightness = brightness
	m.contrast = contrast
	m.dirty = true
}

// Brightness returns the current brightness percentage.
func (m *AnnotationModel) Brightness() float64 {
	if m == nil || m.brightness == 0 {
		return 100
	}
	return m.brightness
}

// Contrast returns the current contrast percentage.
func (m *AnnotationModel) Contrast() float64 {
	if m == nil || m.contrast == 0 {
		return 100
	}
	return m.contrast
}

// Dirty reports whether a repaint is pending.
func (m *AnnotationModel) Dirty() bool { return m != nil && m.dirty }

// MarkDirty forces a repaint on the next presenter tick.
func (m *AnnotationModel) MarkDirty() {
	if m != nil {
		m.dirty = true
	}
}

// MarkClean is called by the presenter after a completed repaint.
func (m *AnnotationModel) MarkClean() {
	if m != nil {
		m.dirty = false
	}
}

func (m *AnnotationModel) indexOf(id string) int {
	for i := range m.signs {
		if m.signs[i].ID == id {
			return i
		}
	}
	return -1
}
