package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in   string
		want time.Weekday
		ok   bool
	}{
		{"monday", time.Monday, true},
		{"Monday", time.Monday, true},
		{"SUNDAY", time.Sunday, true},
		{"saturday", time.Saturday, true},
		{"someday", time.Sunday, false},
		{"", time.Sunday, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseWeekday(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TODOKEEP_DB", "/tmp/alt.db")
	t.Setenv("TODOKEEP_WEEK_START", "monday")
	t.Setenv("TODOKEEP_LOG", "debug")

	cfg := Load()
	assert.Equal(t, "/tmp/alt.db", cfg.DBPath)
	assert.Equal(t, time.Monday, cfg.WeekStart)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TODOKEEP_DB", "")
	t.Setenv("TODOKEEP_WEEK_START", "")
	t.Setenv("TODOKEEP_LOG", "")

	cfg := Load()
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, time.Sunday, cfg.WeekStart)
}
