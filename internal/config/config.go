package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config keeps runtime settings for the server.
type Config struct {
	Port             int
	DatabasePath     string
	UploadDir        string
	MaxUploadBytes   int64
	ReminderInterval time.Duration
	SummaryTime      string // HH:MM, empty disables the daily summary job
	AIAPIKey         string
	AIBaseURL        string
	AIModel          string
}

// Load reads configuration from environment variables with sane defaults.
// A .env file in the working directory is honored when present.
func Load() (Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := Config{
		Port:             3001,
		DatabasePath:     getEnvOrDefault("DATABASE_PATH", "taskdeck.db"),
		UploadDir:        getEnvOrDefault("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:   10 << 20,
		ReminderInterval: 15 * time.Minute,
		SummaryTime:      strings.TrimSpace(os.Getenv("SUMMARY_TIME")),
		AIAPIKey:         strings.TrimSpace(os.Getenv("AI_API_KEY")),
		AIBaseURL:        getEnvOrDefault("AI_BASE_URL", "https://api.openai.com/v1"),
		AIModel:          getEnvOrDefault("AI_MODEL", "gpt-4o-mini"),
	}

	if raw := strings.TrimSpace(os.Getenv("PORT")); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port <= 0 || port > 65535 {
			return cfg, fmt.Errorf("invalid PORT %q", raw)
		}
		cfg.Port = port
	}

	if raw := strings.TrimSpace(os.Getenv("MAX_UPLOAD_MB")); raw != "" {
		mb, err := strconv.Atoi(raw)
		if err != nil || mb <= 0 {
			return cfg, fmt.Errorf("invalid MAX_UPLOAD_MB %q", raw)
		}
		cfg.MaxUploadBytes = int64(mb) << 20
	}

	if raw := strings.TrimSpace(os.Getenv("REMINDER_INTERVAL_MINUTES")); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil || minutes < 0 {
			return cfg, fmt.Errorf("invalid REMINDER_INTERVAL_MINUTES %q", raw)
		}
		cfg.ReminderInterval = time.Duration(minutes) * time.Minute
	}

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
