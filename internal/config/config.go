package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DBPath    string
	WeekStart time.Weekday
	LogLevel  string
}

// Load собирает конфигурацию: значения по умолчанию, затем необязательный
// ~/.todokeep/config.yaml, затем переменные окружения поверх всего.
func Load() Config {
	cfg := Config{
		DBPath:    defaultDBPath(),
		WeekStart: time.Sunday,
		LogLevel:  "info",
	}

	loadFile(&cfg)

	if v := os.Getenv("TODOKEEP_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TODOKEEP_WEEK_START"); v != "" {
		if day, ok := ParseWeekday(v); ok {
			cfg.WeekStart = day
		}
	}
	cfg.LogLevel = getEnv("TODOKEEP_LOG", cfg.LogLevel)

	return cfg
}

func loadFile(cfg *Config) {
	home, err := os.UserHomeDir()
	if err != nil {
		return // Без домашнего каталога остаются значения по умолчанию
	}
	path := filepath.Join(home, ".todokeep", "config.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return
	}

	if s := v.GetString("db"); s != "" {
		cfg.DBPath = s
	}
	if s := v.GetString("week_start"); s != "" {
		if day, ok := ParseWeekday(s); ok {
			cfg.WeekStart = day
		}
	}
	if s := v.GetString("log"); s != "" {
		cfg.LogLevel = s
	}
}

func ParseWeekday(s string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, true
		}
	}
	return time.Sunday, false
}

func defaultDBPath() string {
	return filepath.Join("~", ".todokeep", "todokeep.db")
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
