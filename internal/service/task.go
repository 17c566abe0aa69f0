package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avdeenko/todokeep/internal/model"
	"github.com/avdeenko/todokeep/internal/repo"
	"github.com/avdeenko/todokeep/internal/timeframe"
)

var ErrValidation = errors.New("validation error")

// MembershipScrubber is the slice of ProjectService that task deletion
// needs: drop the task id from every project that references it.
type MembershipScrubber interface {
	RemoveTaskFromAll(taskID string) error
}

// TaskService владеет задачами: валидация, выдача id, мутации, сортировки.
// Карта в памяти и хранилище пишутся сквозняком - после возврата из любой
// операции они совпадают.
type TaskService struct {
	repo      repo.TaskRepository
	projects  MembershipScrubber
	weekStart time.Weekday
	logger    *zap.Logger
	tasks     map[string]model.Task
}

func NewTaskService(r repo.TaskRepository, projects MembershipScrubber, weekStart time.Weekday, logger *zap.Logger) (*TaskService, error) {
	loaded, err := r.LoadAll() // Регидрация при старте
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	tasks := make(map[string]model.Task, len(loaded))
	for _, t := range loaded {
		tasks[t.ID] = t
	}

	return &TaskService{
		repo:      r,
		projects:  projects,
		weekStart: weekStart,
		logger:    logger,
		tasks:     tasks,
	}, nil
}

// Create validates every field first; the id counter is only consumed
// once validation has passed, so a rejected create costs nothing.
func (s *TaskService) Create(description string, importance model.Importance, dueDate time.Time, notes string, completed bool) (model.Task, error) {
	t := model.Task{
		Description: description,
		Importance:  importance,
		DueDate:     dueDate,
		Notes:       notes,
		Completed:   completed,
	}
	if err := s.validate(t); err != nil {
		return model.Task{}, err
	}

	id, err := s.repo.AllocateID()
	if err != nil {
		return model.Task{}, err
	}
	t.ID = id

	if err := s.repo.Save(t); err != nil {
		return model.Task{}, err
	}
	s.tasks[id] = t
	s.logger.Debug("task created", zap.String("id", id))
	return t, nil
}

// Update применяет патч как единое целое: либо все поля проходят
// валидацию и запись замещается, либо задача не меняется вовсе.
func (s *TaskService) Update(id string, patch model.TaskPatch) (model.Task, error) {
	current, ok := s.tasks[id]
	if !ok {
		return model.Task{}, repo.ErrorNotFound
	}

	next := patch.Apply(current)
	if err := s.validate(next); err != nil {
		return model.Task{}, err
	}

	if err := s.repo.Save(next); err != nil {
		return model.Task{}, err
	}
	s.tasks[id] = next
	return next, nil
}

func (s *TaskService) ToggleCompleted(id string) (model.Task, error) {
	current, ok := s.tasks[id]
	if !ok {
		return model.Task{}, repo.ErrorNotFound
	}

	current.Completed = !current.Completed
	if err := s.repo.Save(current); err != nil {
		return model.Task{}, err
	}
	s.tasks[id] = current
	return current, nil
}

// Delete убирает задачу из всех проектов, из карты и из хранилища.
func (s *TaskService) Delete(id string) error {
	if _, ok := s.tasks[id]; !ok {
		return repo.ErrorNotFound
	}

	if err := s.projects.RemoveTaskFromAll(id); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	delete(s.tasks, id)
	s.logger.Debug("task deleted", zap.String("id", id))
	return nil
}

func (s *TaskService) Get(id string) (model.Task, error) {
	t, ok := s.tasks[id]
	if !ok {
		return model.Task{}, repo.ErrorNotFound
	}
	return t, nil
}

// List возвращает снимок: задачи-значения, отсортированные по номеру id.
func (s *TaskService) List() []model.Task {
	out := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		return idOrdinal(out[i].ID) < idOrdinal(out[j].ID)
	})
	return out
}

func (s *TaskService) SortByDueDate(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

func (s *TaskService) SortByImportance(tasks []model.Task) []model.Task {
	out := make([]model.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Importance > out[j].Importance
	})
	return out
}

func (s *TaskService) DueToday(tasks []model.Task, now time.Time) []model.Task {
	out := make([]model.Task, 0)
	for _, t := range tasks {
		frame, err := timeframe.Classify(t.DueDate, now, s.weekStart)
		if err != nil {
			s.logger.Warn("unclassifiable due date", zap.String("id", t.ID), zap.Error(err))
			continue
		}
		if frame == timeframe.Today {
			out = append(out, t)
		}
	}
	return out
}

// DueThisWeek: текущая календарная неделя, но только сегодня и позже -
// прошедшие дни недели не показываются. Результат по возрастанию срока.
func (s *TaskService) DueThisWeek(tasks []model.Task, now time.Time) []model.Task {
	dayStart := timeframe.StartOfDay(now)
	out := make([]model.Task, 0)
	for _, t := range tasks {
		same, err := timeframe.SameWeek(t.DueDate, now, s.weekStart)
		if err != nil {
			s.logger.Warn("unclassifiable due date", zap.String("id", t.ID), zap.Error(err))
			continue
		}
		if same && !t.DueDate.Before(dayStart) {
			out = append(out, t)
		}
	}
	return s.SortByDueDate(out)
}

// GroupByTimeFrame раскладывает задачи по корзинам для группированного вида.
func (s *TaskService) GroupByTimeFrame(tasks []model.Task, now time.Time) map[timeframe.TimeFrame][]model.Task {
	out := make(map[timeframe.TimeFrame][]model.Task)
	for _, t := range tasks {
		frame, err := timeframe.Classify(t.DueDate, now, s.weekStart)
		if err != nil {
			s.logger.Warn("unclassifiable due date", zap.String("id", t.ID), zap.Error(err))
			continue
		}
		out[frame] = append(out[frame], t)
	}
	return out
}

func (s *TaskService) Wipe() error {
	if err := s.repo.Wipe(); err != nil {
		return err
	}
	s.tasks = make(map[string]model.Task)
	return nil
}

func (s *TaskService) validate(t model.Task) error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description must not be empty", ErrValidation)
	}
	if t.Importance < model.ImportanceLow || t.Importance > model.ImportanceHigh {
		return fmt.Errorf("%w: importance must be 0, 1 or 2", ErrValidation)
	}
	if t.DueDate.IsZero() {
		return fmt.Errorf("%w: due date is required", ErrValidation)
	}
	return nil
}

func idOrdinal(id string) int {
	n := 0
	for i := len("task-"); i < len(id); i++ {
		n = n*10 + int(id[i]-'0')
	}
	return n
}
