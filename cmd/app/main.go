package main

import (
	"fmt"
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/avdeenko/todokeep/internal/cli"
	"github.com/avdeenko/todokeep/internal/config"
	"github.com/avdeenko/todokeep/internal/kv"
	"github.com/avdeenko/todokeep/internal/repo"
	"github.com/avdeenko/todokeep/internal/service"
)

func main() {
	// Загрузка конфигурации
	cfg := config.Load()

	// Подключаем логгер
	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	// Открываем локальное хранилище
	store, err := kv.NewSqlite(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open the store: ", err) // Fatal потому что дальнейшая работа теряет смысл
	}
	defer store.Close() // Запланированное закрытие соединения

	// Регидрация: проекты первыми, задачи ссылаются на них при удалении
	projects, err := service.NewProjectService(repo.NewProjectRepo(store), logger)
	if err != nil {
		log.Fatal("Failed to load projects: ", err)
	}
	tasks, err := service.NewTaskService(repo.NewTaskRepo(store), projects, cfg.WeekStart, logger)
	if err != nil {
		log.Fatal("Failed to load tasks: ", err)
	}

	root := cli.New(&cli.App{
		Tasks:    tasks,
		Projects: projects,
		Logger:   logger,
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(level string) *zap.Logger {
	if level == "debug" {
		logger, _ := zap.NewDevelopment()
		return logger
	}
	logger, _ := zap.NewProduction()
	return logger
}
