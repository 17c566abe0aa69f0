package model

import "time"

type Importance int

const (
	ImportanceLow Importance = iota
	ImportanceMedium
	ImportanceHigh
)

func (i Importance) String() string {
	switch i {
	case ImportanceLow:
		return "low"
	case ImportanceMedium:
		return "medium"
	case ImportanceHigh:
		return "high"
	}
	return "unknown"
}

type Task struct {
	ID          string
	Description string
	Importance  Importance
	DueDate     time.Time
	Notes       string
	Completed   bool
}

// TaskPatch описывает частичное обновление задачи. Nil-поле означает
// "оставить как есть".
type TaskPatch struct {
	Description *string
	Importance  *Importance
	DueDate     *time.Time
	Notes       *string
	Completed   *bool
}

func (p TaskPatch) Apply(t Task) Task {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Importance != nil {
		t.Importance = *p.Importance
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	return t
}
