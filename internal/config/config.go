package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything storedash reads from config.toml.
type Config struct {
	APIBase        string
	StoreID        int64
	Years          []int
	RequestTimeout time.Duration
	RefreshEvery   time.Duration
	LogFile        string
	LogLevel       string
}

const (
	defaultConfigPath     = "~/.config/storedash/config.toml"
	defaultLogFile        = "~/.local/share/storedash/storedash.log"
	defaultAPIBase        = "http://localhost:8081"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 5 * time.Second
	defaultRefreshEvery   = 30 * time.Second
	defaultYearSpan       = 3
)

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		APIBase:        defaultAPIBase,
		Years:          recentYears(time.Now(), defaultYearSpan),
		RequestTimeout: defaultRequestTimeout,
		RefreshEvery:   defaultRefreshEvery,
		LogFile:        mustExpand(defaultLogFile),
		LogLevel:       defaultLogLevel,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBase               string `toml:"api_base"`
		StoreID               int64  `toml:"store_id"`
		Years                 []int  `toml:"years"`
		RequestTimeoutSeconds int    `toml:"request_timeout_seconds"`
		RefreshSeconds        int    `toml:"refresh_seconds"`
		LogFile               string `toml:"log_file"`
		LogLevel              string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.APIBase); base != "" {
		cfg.APIBase = base
	}
	if raw.StoreID < 0 {
		return Config{}, fmt.Errorf("parse config: store_id must not be negative, got %d", raw.StoreID)
	}
	cfg.StoreID = raw.StoreID
	if len(raw.Years) > 0 {
		cfg.Years = raw.Years
	}
	if raw.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(raw.RequestTimeoutSeconds) * time.Second
	}
	if raw.RefreshSeconds > 0 {
		cfg.RefreshEvery = time.Duration(raw.RefreshSeconds) * time.Second
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}
	if level := strings.ToLower(strings.TrimSpace(raw.LogLevel)); level != "" {
		if !validLevels[level] {
			return Config{}, fmt.Errorf("parse config: unknown log_level %q", raw.LogLevel)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// recentYears lists the span most recent calendar years, newest first.
func recentYears(now time.Time, span int) []int {
	years := make([]int, 0, span)
	for i := 0; i < span; i++ {
		years = append(years, now.Year()-i)
	}
	return years
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
