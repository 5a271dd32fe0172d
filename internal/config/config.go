package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fsi-tue/rri/utils"
)

// Config carries everything main needs to wire the application
type Config struct {
	Port          string // ":8080" form
	PostgresConn  string // empty selects the in-memory ledger
	ImageDir      string
	SweepInterval time.Duration
	SMTPAddr      string // empty selects the log-only mailer
	SMTPFrom      string
	AdminEmail    string
}

// Load reads .env (if present) and the environment
func Load() Config {
	if err := godotenv.Load(); err != nil {
		utils.Info("no .env file loaded", map[string]any{"reason": err.Error()})
	}

	cfg := Config{
		Port:          ":8080",
		PostgresConn:  os.Getenv("POSTGRES_CONN"),
		ImageDir:      "uploaded_images",
		SweepInterval: time.Minute,
		SMTPAddr:      os.Getenv("SMTP_ADDR"),
		SMTPFrom:      os.Getenv("SMTP_FROM"),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
	}

	if p := os.Getenv("PORT"); p != "" {
		cfg.Port = fmt.Sprintf(":%s", p)
	}
	if dir := os.Getenv("IMAGE_DIR"); dir != "" {
		cfg.ImageDir = dir
	}
	if raw := os.Getenv("SWEEP_INTERVAL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.SweepInterval = d
		} else {
			utils.Warn("invalid SWEEP_INTERVAL, using default", map[string]any{"value": raw})
		}
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = "admin@localhost"
	}
	return cfg
}
