package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/BruksfildServices01/agenda-atividades/internal/calendar"
)

func validConfig() *Config {
	return &Config{
		DBDriver:     DriverSQLite,
		DBUrl:        "file:test.db",
		JWTSecret:    "secret",
		TokenTTL:     time.Hour,
		ServerPort:   "8080",
		CacheTTL:     time.Minute,
		Timezone:     "America/Sao_Paulo",
		Locale:       "pt-BR",
		CalendarYear: 2025,
		LogLevel:     "debug",
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("CALENDAR_YEAR", "")
	t.Setenv("TOKEN_TTL", "")

	cfg := Load()
	if cfg.DBDriver != DriverPostgres || cfg.ServerPort != "8080" || cfg.CalendarYear != 2025 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("TokenTTL = %s", cfg.TokenTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("CALENDAR_YEAR", "2026")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CHECK_EMAIL_DOMAIN", "false")
	t.Setenv("APP_LOCALE", "en_US")

	cfg := Load()
	if cfg.DBDriver != DriverSQLite || cfg.CalendarYear != 2026 || cfg.CacheTTL != 30*time.Second {
		t.Errorf("env config = %+v", cfg)
	}
	if cfg.CheckEmailDomain {
		t.Error("CHECK_EMAIL_DOMAIN=false ignored")
	}
	if cfg.CalendarLocale() != calendar.LocaleEnUS {
		t.Errorf("locale = %s", cfg.CalendarLocale())
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"driver", func(c *Config) { c.DBDriver = "mysql" }, "DBDriver"},
		{"port", func(c *Config) { c.ServerPort = "99999" }, "ServerPort"},
		{"timezone", func(c *Config) { c.Timezone = "Mars/Base" }, "Timezone"},
		{"locale", func(c *Config) { c.Locale = "de-DE" }, "Locale"},
		{"year", func(c *Config) { c.CalendarYear = 1999 }, "CalendarYear"},
		{"log level", func(c *Config) { c.LogLevel = "loud" }, "LogLevel"},
		{"secret", func(c *Config) { c.JWTSecret = "" }, "JWTSecret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("error %q does not mention %s", err, tt.field)
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := validConfig()
	if cfg.SlogLevel() != slog.LevelDebug {
		t.Errorf("SlogLevel = %s", cfg.SlogLevel())
	}
	cfg.LogLevel = "nonsense"
	if cfg.SlogLevel() != slog.LevelInfo {
		t.Errorf("fallback SlogLevel = %s", cfg.SlogLevel())
	}
}
