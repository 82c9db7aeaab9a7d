package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	JWTSecret   string
	LimitsFile  string
	Limits      Limits
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		LimitsFile:  getEnv("LIMITS_FILE", ""),
		Limits:      DefaultLimits(),
	}

	// Optional per-deployment tuning of the folder cap and name bounds
	if cfg.LimitsFile != "" {
		limits, err := LoadLimits(cfg.LimitsFile)
		if err != nil {
			log.Printf("warning: limits file ignored: %v", err)
		} else {
			cfg.Limits = limits
		}
	}

	return cfg
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
