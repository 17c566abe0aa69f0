package service

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/avdeenko/todokeep/internal/model"
	"github.com/avdeenko/todokeep/internal/repo"
)

// ProjectService владеет проектами и связью задача-проект. Проект хранит
// только id задач - членство, не владение: удаление проекта не трогает
// задачи, удаление задачи вычищается через RemoveTaskFromAll.
type ProjectService struct {
	repo     repo.ProjectRepository
	logger   *zap.Logger
	projects map[string]model.Project
}

func NewProjectService(r repo.ProjectRepository, logger *zap.Logger) (*ProjectService, error) {
	loaded, err := r.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	projects := make(map[string]model.Project, len(loaded))
	for _, p := range loaded {
		projects[p.Name] = p
	}

	return &ProjectService{
		repo:     r,
		logger:   logger,
		projects: projects,
	}, nil
}

// Create rejects a name collision and leaves the existing project as is.
func (s *ProjectService) Create(name, description string) (model.Project, error) {
	if strings.TrimSpace(name) == "" {
		return model.Project{}, fmt.Errorf("%w: project name must not be empty", ErrValidation)
	}
	if _, exists := s.projects[name]; exists {
		return model.Project{}, fmt.Errorf("%w: project %q already exists", repo.ErrorConflict, name)
	}

	p := model.Project{
		Name:        name,
		Description: description,
		TaskIDs:     []string{},
	}
	if err := s.repo.Save(p); err != nil {
		return model.Project{}, err
	}
	s.projects[name] = p
	s.logger.Debug("project created", zap.String("name", name))
	return p.Clone(), nil
}

// AddTask идемпотентен: повторное добавление того же id - no-op.
func (s *ProjectService) AddTask(projectName, taskID string) error {
	p, ok := s.projects[projectName]
	if !ok {
		return repo.ErrorNotFound
	}
	if p.Contains(taskID) {
		return nil
	}

	next := p.Clone()
	next.TaskIDs = append(next.TaskIDs, taskID)
	if err := s.repo.Save(next); err != nil {
		return err
	}
	s.projects[projectName] = next
	return nil
}

// RemoveTask идемпотентен: удаление не-члена - no-op.
func (s *ProjectService) RemoveTask(projectName, taskID string) error {
	p, ok := s.projects[projectName]
	if !ok {
		return repo.ErrorNotFound
	}
	if !p.Contains(taskID) {
		return nil
	}

	next := p.Clone()
	kept := next.TaskIDs[:0]
	for _, id := range next.TaskIDs {
		if id != taskID {
			kept = append(kept, id)
		}
	}
	next.TaskIDs = kept
	if err := s.repo.Save(next); err != nil {
		return err
	}
	s.projects[projectName] = next
	return nil
}

func (s *ProjectService) HasTask(projectName, taskID string) bool {
	p, ok := s.projects[projectName]
	return ok && p.Contains(taskID)
}

func (s *ProjectService) ProjectsContaining(taskID string) []string {
	names := make([]string, 0)
	for name, p := range s.projects {
		if p.Contains(taskID) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// RemoveTaskFromAll вычищает id задачи из каждого проекта; используется
// при удалении задачи и при переназначении ее проектов.
func (s *ProjectService) RemoveTaskFromAll(taskID string) error {
	for name := range s.projects {
		if err := s.RemoveTask(name, taskID); err != nil {
			return err
		}
	}
	return nil
}

// SetTaskProjects переназначает проекты задачи: сперва удаление отовсюду,
// затем добавление в выбранный набор - без частичного и двойного членства.
func (s *ProjectService) SetTaskProjects(taskID string, projectNames []string) error {
	for _, name := range projectNames {
		if _, ok := s.projects[name]; !ok {
			return fmt.Errorf("%w: project %q", repo.ErrorNotFound, name)
		}
	}

	if err := s.RemoveTaskFromAll(taskID); err != nil {
		return err
	}
	for _, name := range projectNames {
		if err := s.AddTask(name, taskID); err != nil {
			return err
		}
	}
	return nil
}

// Delete удаляет сам проект; задачи-члены остаются нетронутыми.
func (s *ProjectService) Delete(projectName string) error {
	if _, ok := s.projects[projectName]; !ok {
		return repo.ErrorNotFound
	}
	if err := s.repo.Delete(projectName); err != nil {
		return err
	}
	delete(s.projects, projectName)
	s.logger.Debug("project deleted", zap.String("name", projectName))
	return nil
}

func (s *ProjectService) Get(projectName string) (model.Project, error) {
	p, ok := s.projects[projectName]
	if !ok {
		return model.Project{}, repo.ErrorNotFound
	}
	return p.Clone(), nil
}

func (s *ProjectService) List() []model.Project {
	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *ProjectService) Names() []string {
	names := make([]string, 0, len(s.projects))
	for name := range s.projects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (s *ProjectService) Wipe() error {
	if err := s.repo.Wipe(); err != nil {
		return err
	}
	s.projects = make(map[string]model.Project)
	return nil
}
