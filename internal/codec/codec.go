// Package codec is the serialize/rehydrate boundary between the domain
// records and the key-value store. Records carry an explicit schema
// version; due dates travel as RFC 3339 strings and are parsed back into
// time.Time on load.
package codec

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/avdeenko/todokeep/internal/model"
)

// Schema is the current record layout version.
//
// v1: project "tasks" was a map from task id to an embedded copy of the
// task object. v2: tasks are referenced by id only ("taskIds"); the
// embedded copies are gone. DecodeProject still reads v1 and lifts the
// ids out of the map.
const Schema = 2

type taskRecord struct {
	Schema      int    `json:"schema,omitempty"`
	ID          string `json:"id"`
	Description string `json:"description"`
	Importance  int    `json:"importance"`
	DueDate     string `json:"dueDate"`
	Notes       string `json:"notes"`
	Completed   bool   `json:"completed"`
}

type projectRecord struct {
	Schema      int             `json:"schema,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	TaskIDs     []string        `json:"taskIds,omitempty"`
	Tasks       json.RawMessage `json:"tasks,omitempty"` // legacy v1 membership map
}

func EncodeTask(t model.Task) ([]byte, error) {
	return json.Marshal(taskRecord{
		Schema:      Schema,
		ID:          t.ID,
		Description: t.Description,
		Importance:  int(t.Importance),
		DueDate:     t.DueDate.Format(time.RFC3339),
		Notes:       t.Notes,
		Completed:   t.Completed,
	})
}

func DecodeTask(data []byte) (model.Task, error) {
	var rec taskRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Task{}, fmt.Errorf("decode task: %w", err)
	}
	due, err := time.Parse(time.RFC3339, rec.DueDate)
	if err != nil {
		return model.Task{}, fmt.Errorf("decode task %s: bad due date %q: %w", rec.ID, rec.DueDate, err)
	}
	return model.Task{
		ID:          rec.ID,
		Description: rec.Description,
		Importance:  model.Importance(rec.Importance),
		DueDate:     due,
		Notes:       rec.Notes,
		Completed:   rec.Completed,
	}, nil
}

func EncodeProject(p model.Project) ([]byte, error) {
	ids := make([]string, len(p.TaskIDs))
	copy(ids, p.TaskIDs)
	sort.Strings(ids)
	return json.Marshal(projectRecord{
		Schema:      Schema,
		Name:        p.Name,
		Description: p.Description,
		TaskIDs:     ids,
	})
}

func DecodeProject(data []byte) (model.Project, error) {
	var rec projectRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.Project{}, fmt.Errorf("decode project: %w", err)
	}

	p := model.Project{
		Name:        rec.Name,
		Description: rec.Description,
		TaskIDs:     rec.TaskIDs,
	}

	// Legacy v1 record: membership keyed a map of embedded task copies.
	// Only the ids are authoritative, the copies are dropped.
	if p.TaskIDs == nil && len(rec.Tasks) > 0 {
		var embedded map[string]json.RawMessage
		if err := json.Unmarshal(rec.Tasks, &embedded); err != nil {
			return model.Project{}, fmt.Errorf("decode project %s: legacy tasks: %w", rec.Name, err)
		}
		for id := range embedded {
			p.TaskIDs = append(p.TaskIDs, id)
		}
		sort.Strings(p.TaskIDs)
	}
	if p.TaskIDs == nil {
		p.TaskIDs = []string{}
	}
	return p, nil
}
