package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback that
// re-arms the next tick on the Tk event loop. The zero value is usable
// (methods are nil-safe).
type Loop struct {
	Annotation *AnnotationPresenter
	Schedule   func()
}

func NewLoop(annotation *AnnotationPresenter, schedule func()) *Loop {
	return &Loop{Annotation: annotation, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Annotation != nil {
		l.Annotation.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
