package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/avdeenko/todokeep/internal/kv"
	"github.com/avdeenko/todokeep/internal/model"
	"github.com/avdeenko/todokeep/internal/repo"
)

func newProjects(t *testing.T, store kv.Store) *ProjectService {
	t.Helper()
	projects, err := NewProjectService(repo.NewProjectRepo(store), zap.NewNop())
	require.NoError(t, err)
	return projects
}

func TestProjectService_Create(t *testing.T) {
	projects := newProjects(t, kv.NewMemory())

	p, err := projects.Create("Work", "office things")
	require.NoError(t, err)
	assert.Equal(t, "Work", p.Name)
	assert.Empty(t, p.TaskIDs)

	t.Run("duplicate name is rejected", func(t *testing.T) {
		_, err := projects.Create("Work", "other description")
		assert.ErrorIs(t, err, repo.ErrorConflict)

		// Исходный проект не тронут.
		got, err := projects.Get("Work")
		require.NoError(t, err)
		assert.Equal(t, "office things", got.Description)
	})

	t.Run("names are case-sensitive", func(t *testing.T) {
		_, err := projects.Create("work", "")
		assert.NoError(t, err)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := projects.Create("  ", "")
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestProjectService_Membership(t *testing.T) {
	projects := newProjects(t, kv.NewMemory())

	_, err := projects.Create("Work", "")
	require.NoError(t, err)

	require.NoError(t, projects.AddTask("Work", "task-1"))
	assert.True(t, projects.HasTask("Work", "task-1"))

	t.Run("add is idempotent", func(t *testing.T) {
		require.NoError(t, projects.AddTask("Work", "task-1"))
		p, err := projects.Get("Work")
		require.NoError(t, err)
		assert.Equal(t, []string{"task-1"}, p.TaskIDs, "exactly one membership after a double add")
	})

	t.Run("remove is idempotent", func(t *testing.T) {
		require.NoError(t, projects.RemoveTask("Work", "task-1"))
		require.NoError(t, projects.RemoveTask("Work", "task-1"))
		assert.False(t, projects.HasTask("Work", "task-1"))
	})

	t.Run("unknown project", func(t *testing.T) {
		assert.ErrorIs(t, projects.AddTask("Nope", "task-1"), repo.ErrorNotFound)
		assert.ErrorIs(t, projects.RemoveTask("Nope", "task-1"), repo.ErrorNotFound)
		assert.False(t, projects.HasTask("Nope", "task-1"))
	})
}

func TestProjectService_ProjectsContaining(t *testing.T) {
	projects := newProjects(t, kv.NewMemory())

	for _, name := range []string{"Work", "Home", "Garden"} {
		_, err := projects.Create(name, "")
		require.NoError(t, err)
	}
	require.NoError(t, projects.AddTask("Work", "task-1"))
	require.NoError(t, projects.AddTask("Garden", "task-1"))
	require.NoError(t, projects.AddTask("Home", "task-2"))

	assert.Equal(t, []string{"Garden", "Work"}, projects.ProjectsContaining("task-1"))
	assert.Empty(t, projects.ProjectsContaining("task-99"))
}

func TestProjectService_RemoveTaskFromAll(t *testing.T) {
	projects := newProjects(t, kv.NewMemory())

	for _, name := range []string{"Work", "Home"} {
		_, err := projects.Create(name, "")
		require.NoError(t, err)
		require.NoError(t, projects.AddTask(name, "task-1"))
	}
	require.NoError(t, projects.AddTask("Home", "task-2"))

	require.NoError(t, projects.RemoveTaskFromAll("task-1"))

	assert.Empty(t, projects.ProjectsContaining("task-1"))
	assert.True(t, projects.HasTask("Home", "task-2"), "other memberships survive")
}

func TestProjectService_SetTaskProjects(t *testing.T) {
	projects := newProjects(t, kv.NewMemory())

	for _, name := range []string{"Work", "Home", "Garden"} {
		_, err := projects.Create(name, "")
		require.NoError(t, err)
	}
	require.NoError(t, projects.AddTask("Work", "task-1"))
	require.NoError(t, projects.AddTask("Home", "task-1"))

	require.NoError(t, projects.SetTaskProjects("task-1", []string{"Home", "Garden"}))
	assert.Equal(t, []string{"Garden", "Home"}, projects.ProjectsContaining("task-1"))

	t.Run("unknown target fails before any change", func(t *testing.T) {
		err := projects.SetTaskProjects("task-1", []string{"Home", "Nope"})
		assert.ErrorIs(t, err, repo.ErrorNotFound)
		assert.Equal(t, []string{"Garden", "Home"}, projects.ProjectsContaining("task-1"))
	})

	t.Run("empty set clears membership", func(t *testing.T) {
		require.NoError(t, projects.SetTaskProjects("task-1", nil))
		assert.Empty(t, projects.ProjectsContaining("task-1"))
	})
}

func TestProjectService_Delete(t *testing.T) {
	store := kv.NewMemory()
	tasks, projects := newStores(t, store)

	created, err := tasks.Create("kept task", model.ImportanceLow, due(2024, time.June, 10), "", false)
	require.NoError(t, err)

	_, err = projects.Create("Work", "")
	require.NoError(t, err)
	require.NoError(t, projects.AddTask("Work", created.ID))

	require.NoError(t, projects.Delete("Work"))

	_, err = projects.Get("Work")
	assert.ErrorIs(t, err, repo.ErrorNotFound)

	// Удаление проекта не трогает задачи-члены.
	_, err = tasks.Get(created.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, projects.Delete("Work"), repo.ErrorNotFound)
}

func TestProjectService_ListAndNames(t *testing.T) {
	projects := newProjects(t, kv.NewMemory())

	for _, name := range []string{"beta", "alpha"} {
		_, err := projects.Create(name, "")
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"alpha", "beta"}, projects.Names())

	list := projects.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Name)

	// Снимок: мутация результата не видна стору.
	list[0].TaskIDs = append(list[0].TaskIDs, "task-9")
	assert.False(t, projects.HasTask("alpha", "task-9"))
}

func TestProjectService_RestartRehydrates(t *testing.T) {
	store := kv.NewMemory()
	projects := newProjects(t, store)

	_, err := projects.Create("Work", "office")
	require.NoError(t, err)
	require.NoError(t, projects.AddTask("Work", "task-3"))

	projects2 := newProjects(t, store)
	got, err := projects2.Get("Work")
	require.NoError(t, err)
	assert.Equal(t, "office", got.Description)
	assert.True(t, projects2.HasTask("Work", "task-3"))
}

func TestProjectService_Wipe(t *testing.T) {
	store := kv.NewMemory()
	projects := newProjects(t, store)

	_, err := projects.Create("Work", "")
	require.NoError(t, err)

	require.NoError(t, projects.Wipe())
	assert.Empty(t, projects.Names())

	keys, err := store.Keys("proj-")
	require.NoError(t, err)
	assert.Empty(t, keys)
}
