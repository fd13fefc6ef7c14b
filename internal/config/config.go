package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr string

	DBDriver string // sqlite|postgres
	DBDSN    string

	StaticDir string // directory holding the exam document
	ExamFile  string // filename linked from the landing page

	LogLevel string
	LogFile  string // optional; rotated JSON log

	CORSOrigins []string

	EnableMetrics   bool
	ShutdownTimeout time.Duration
}

// FromEnv reads configuration from the process environment.
// A .env file, if any, must already be loaded by the caller.
func FromEnv() Config {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("STATIC_DIR", "static")
	v.SetDefault("EXAM_FILE", "prova.pdf")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("ENABLE_METRICS", true)
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)

	return Config{
		HTTPAddr:        v.GetString("HTTP_ADDR"),
		DBDriver:        strings.ToLower(v.GetString("DB_DRIVER")),
		DBDSN:           v.GetString("DB_DSN"),
		StaticDir:       v.GetString("STATIC_DIR"),
		ExamFile:        v.GetString("EXAM_FILE"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogFile:         v.GetString("LOG_FILE"),
		CORSOrigins:     csv(v.GetString("CORS_ORIGINS")),
		EnableMetrics:   v.GetBool("ENABLE_METRICS"),
		ShutdownTimeout: v.GetDuration("SHUTDOWN_TIMEOUT"),
	}
}

func csv(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
