// Package config loads runtime settings from the environment, with an
// optional .env file for local use. Flags override env, env overrides the
// defaults.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds the tool's settings.
type Config struct {
	DBPath    string
	LogLevel  string
	TopRivals int
}

// Load reads config from the environment. A missing .env file is fine.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		DBPath:    getEnv("TTSTATS_DB", defaultDBPath()),
		LogLevel:  getEnv("TTSTATS_LOG_LEVEL", "warn"),
		TopRivals: getEnvInt("TTSTATS_TOP_RIVALS", 5),
	}
}

// Logger builds the process logger at the configured level. Unparsable
// levels fall back to warn so a typo never silences hard failures.
func (c Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Logger().
		Level(level)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".ttstats", "history.db")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
