package repo

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/avdeenko/todokeep/internal/codec"
	"github.com/avdeenko/todokeep/internal/kv"
	"github.com/avdeenko/todokeep/internal/model"
)

var (
	ErrorNotFound = errors.New("not found")
	ErrorConflict = errors.New("conflict")
)

const (
	taskKeyPrefix = "task-"
	counterKey    = "next-task-id"
)

type TaskRepo struct { // Репозиторий для работы непосредственно с хранилищем
	store kv.Store
}

func NewTaskRepo(store kv.Store) *TaskRepo { // Конструктор
	return &TaskRepo{
		store: store,
	}
}

// LoadAll регидрирует все сохраненные задачи.
func (r *TaskRepo) LoadAll() ([]model.Task, error) {
	keys, err := r.store.Keys(taskKeyPrefix)
	if err != nil {
		return nil, err
	}

	tasks := make([]model.Task, 0, len(keys))
	for _, key := range keys {
		data, err := r.store.Get(key)
		if err != nil {
			return nil, err
		}
		t, err := codec.DecodeTask(data)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// AllocateID выдает следующий id и сохраняет счетчик до записи самой
// задачи: после рестарта id никогда не выдается повторно.
func (r *TaskRepo) AllocateID() (string, error) {
	n := 0
	data, err := r.store.Get(counterKey)
	switch {
	case err == nil:
		n, err = strconv.Atoi(string(data))
		if err != nil {
			return "", fmt.Errorf("corrupt id counter %q: %w", data, err)
		}
	case errors.Is(err, kv.ErrNoKey):
		// Первый запуск - счетчик начинается с нуля.
	default:
		return "", err
	}

	if err := r.store.Set(counterKey, []byte(strconv.Itoa(n+1))); err != nil {
		return "", err
	}
	return taskKeyPrefix + strconv.Itoa(n), nil
}

func (r *TaskRepo) Save(t model.Task) error {
	data, err := codec.EncodeTask(t)
	if err != nil {
		return err
	}
	return r.store.Set(t.ID, data) // ключ записи совпадает с id задачи
}

func (r *TaskRepo) Delete(id string) error {
	return r.store.Delete(id)
}

func (r *TaskRepo) Wipe() error {
	keys, err := r.store.Keys(taskKeyPrefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := r.store.Delete(key); err != nil {
			return err
		}
	}
	return r.store.Delete(counterKey)
}
