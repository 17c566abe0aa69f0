package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/avdeenko/todokeep/internal/model"
	"github.com/avdeenko/todokeep/internal/repo"
	"github.com/avdeenko/todokeep/internal/service"
)

// App связывает команды с публичной поверхностью сервисов. CLI только
// разбирает ввод и печатает результат - все правила живут в service.
type App struct {
	Tasks    *service.TaskService
	Projects *service.ProjectService
	Logger   *zap.Logger
	Now      func() time.Time
}

func New(app *App) *cobra.Command {
	if app.Now == nil {
		app.Now = time.Now
	}

	root := &cobra.Command{
		Use:           "todokeep",
		Short:         "todokeep - local to-do list with projects and time-frame views",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(addCmd(app))
	root.AddCommand(listCmd(app))
	root.AddCommand(showCmd(app))
	root.AddCommand(editCmd(app))
	root.AddCommand(doneCmd(app))
	root.AddCommand(rmCmd(app))
	root.AddCommand(projectCmd(app))
	root.AddCommand(wipeCmd(app))
	return root
}

// mapError переводит сентинели ядра в сообщения для пользователя.
func mapError(err error) error {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		return fmt.Errorf("not found: %v", err)
	case errors.Is(err, repo.ErrorConflict):
		return fmt.Errorf("already exists: %v", err)
	case errors.Is(err, service.ErrValidation):
		return err
	default:
		return err
	}
}

func parseImportance(s string) (model.Importance, error) {
	switch s {
	case "low", "0":
		return model.ImportanceLow, nil
	case "medium", "1":
		return model.ImportanceMedium, nil
	case "high", "2":
		return model.ImportanceHigh, nil
	}
	return 0, fmt.Errorf("invalid importance %q (want low, medium or high)", s)
}

// parseDue разбирает день и нормализует срок к 23:59:59 локального
// времени этого дня - ядро хранит дату как есть.
func parseDue(s string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q (want YYYY-MM-DD)", s)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.Local), nil
}
