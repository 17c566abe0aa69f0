package codec

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeenko/todokeep/internal/model"
)

func TestTaskRoundTrip(t *testing.T) {
	due := time.Date(2024, time.June, 14, 23, 59, 59, 123456789, time.Local)
	in := model.Task{
		ID:          "task-7",
		Description: "water the plants",
		Importance:  model.ImportanceHigh,
		DueDate:     due,
		Notes:       "the ficus too",
		Completed:   true,
	}

	data, err := EncodeTask(in)
	require.NoError(t, err)

	out, err := DecodeTask(data)
	require.NoError(t, err)

	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.Description, out.Description)
	assert.Equal(t, in.Importance, out.Importance)
	assert.Equal(t, in.Notes, out.Notes)
	assert.Equal(t, in.Completed, out.Completed)
	// RFC 3339 carries seconds; the rehydrated date matches to the second.
	assert.True(t, out.DueDate.Equal(due.Truncate(time.Second)))
}

func TestTaskRecordLayout(t *testing.T) {
	data, err := EncodeTask(model.Task{
		ID:          "task-0",
		Description: "d",
		DueDate:     time.Date(2024, time.June, 1, 23, 59, 59, 0, time.UTC),
	})
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, float64(Schema), raw["schema"])
	assert.Equal(t, "task-0", raw["id"])
	assert.Equal(t, "2024-06-01T23:59:59Z", raw["dueDate"])
}

func TestDecodeTask_BadDate(t *testing.T) {
	_, err := DecodeTask([]byte(`{"id":"task-1","description":"d","dueDate":"not a date"}`))
	assert.Error(t, err)

	_, err = DecodeTask([]byte(`{broken`))
	assert.Error(t, err)
}

func TestProjectRoundTrip(t *testing.T) {
	in := model.Project{
		Name:        "Garden",
		Description: "outdoor chores",
		TaskIDs:     []string{"task-4", "task-1"},
	}

	data, err := EncodeProject(in)
	require.NoError(t, err)

	out, err := DecodeProject(data)
	require.NoError(t, err)

	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Description, out.Description)
	assert.ElementsMatch(t, in.TaskIDs, out.TaskIDs)
}

func TestDecodeProject_LegacyEmbeddedTasks(t *testing.T) {
	// Schema v1 embedded a full task copy per member; only the ids
	// survive rehydration.
	raw := []byte(`{
		"name": "Work",
		"description": "office things",
		"tasks": {
			"task-3": {"id": "task-3", "description": "report", "importance": 2, "dueDate": "2024-06-14T23:59:59Z", "notes": "", "completed": false},
			"task-1": {"id": "task-1", "description": "email", "importance": 0, "dueDate": "2024-06-10T23:59:59Z", "notes": "", "completed": true}
		}
	}`)

	p, err := DecodeProject(raw)
	require.NoError(t, err)
	assert.Equal(t, "Work", p.Name)
	assert.Equal(t, []string{"task-1", "task-3"}, p.TaskIDs)
}

func TestDecodeProject_EmptyMembership(t *testing.T) {
	p, err := DecodeProject([]byte(`{"name":"Empty","description":""}`))
	require.NoError(t, err)
	assert.NotNil(t, p.TaskIDs)
	assert.Empty(t, p.TaskIDs)
}
