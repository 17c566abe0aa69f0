package repo

import "github.com/avdeenko/todokeep/internal/model"

// TaskRepository определяет интерфейс для персистентности задач
type TaskRepository interface {
	LoadAll() ([]model.Task, error)
	Save(t model.Task) error
	Delete(id string) error
	AllocateID() (string, error)
	Wipe() error
}

// ProjectRepository определяет интерфейс для персистентности проектов
type ProjectRepository interface {
	LoadAll() ([]model.Project, error)
	Save(p model.Project) error
	Delete(name string) error
	Wipe() error
}
