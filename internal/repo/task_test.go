package repo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdeenko/todokeep/internal/kv"
	"github.com/avdeenko/todokeep/internal/model"
)

func TestTaskRepo_AllocateID(t *testing.T) {
	store := kv.NewMemory()
	r := NewTaskRepo(store)

	id, err := r.AllocateID()
	require.NoError(t, err)
	assert.Equal(t, "task-0", id)

	id, err = r.AllocateID()
	require.NoError(t, err)
	assert.Equal(t, "task-1", id)

	// Счетчик переживает рестарт - новый репозиторий продолжает нумерацию.
	r2 := NewTaskRepo(store)
	id, err = r2.AllocateID()
	require.NoError(t, err)
	assert.Equal(t, "task-2", id)
}

func TestTaskRepo_AllocateID_CorruptCounter(t *testing.T) {
	store := kv.NewMemory()
	require.NoError(t, store.Set("next-task-id", []byte("banana")))

	_, err := NewTaskRepo(store).AllocateID()
	assert.Error(t, err)
}

func TestTaskRepo_SaveLoad(t *testing.T) {
	store := kv.NewMemory()
	r := NewTaskRepo(store)

	due := time.Date(2024, time.June, 14, 23, 59, 59, 0, time.Local)
	task := model.Task{
		ID:          "task-0",
		Description: "buy milk",
		Importance:  model.ImportanceMedium,
		DueDate:     due,
		Notes:       "2 liters",
	}
	require.NoError(t, r.Save(task))

	loaded, err := r.LoadAll()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "task-0", loaded[0].ID)
	assert.Equal(t, "buy milk", loaded[0].Description)
	assert.True(t, loaded[0].DueDate.Equal(due))
}

func TestTaskRepo_Wipe(t *testing.T) {
	store := kv.NewMemory()
	r := NewTaskRepo(store)

	_, err := r.AllocateID()
	require.NoError(t, err)
	require.NoError(t, r.Save(model.Task{ID: "task-0", Description: "d", DueDate: time.Now()}))

	require.NoError(t, r.Wipe())

	keys, err := store.Keys("")
	require.NoError(t, err)
	assert.Empty(t, keys, "wipe clears task keys and the counter")

	// После wipe нумерация начинается заново.
	id, err := r.AllocateID()
	require.NoError(t, err)
	assert.Equal(t, "task-0", id)
}
