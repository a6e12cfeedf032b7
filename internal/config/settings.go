// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ytget/ytfetch/internal/platform"
)

// Default values
const (
	DefaultDownloadDir = "downloads"
	DefaultMaxParallel = 2
	DefaultLogLevel    = "info"

	MinParallel = 1
	MaxParallel = 10
)

// Settings holds everything the core consumes from the environment. Rate
// limits, secrets and web-transport settings belong to the deployment layer,
// not here.
type Settings struct {
	DownloadDir string
	MaxParallel int
	LogLevel    string
}

// Load reads settings from a .env file (if present) and the environment.
func Load() (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		// No .env file is the normal case for an installed binary.
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load .env: %w", err)
		}
	}

	s := &Settings{
		DownloadDir: getEnv("DOWNLOAD_FOLDER", ""),
		MaxParallel: getEnvInt("MAX_PARALLEL_DOWNLOADS", DefaultMaxParallel),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
	}

	if s.DownloadDir == "" {
		if dir, err := platform.DefaultDownloadsDir(); err == nil {
			s.DownloadDir = dir
		} else {
			s.DownloadDir = DefaultDownloadDir
		}
	}

	if s.MaxParallel < MinParallel {
		s.MaxParallel = MinParallel
	}
	if s.MaxParallel > MaxParallel {
		s.MaxParallel = MaxParallel
	}

	return s, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
