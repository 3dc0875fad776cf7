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
	"github.com/rs/zerolog"
)

// Config holds Scout's runtime settings.
type Config struct {
	APIURL    string
	Timeout   time.Duration
	RateLimit float64 // requests per second, 0 = unlimited
	LogFile   string
	LogLevel  zerolog.Level
}

const (
	defaultConfigPath = "~/.config/scout/config.toml"
	defaultAPIURL     = "http://127.0.0.1:8000"
	defaultTimeout    = 10 * time.Second
	defaultLogFile    = "~/.local/state/scout/scout.log"
	defaultLogLevel   = zerolog.InfoLevel
)

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return defaultConfigPath
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIURL:   defaultAPIURL,
		Timeout:  defaultTimeout,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
	}
}

// Load parses the config at path, falling back to defaults when it is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

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
		APIURL         string   `toml:"api_url"`
		TimeoutSeconds any    `toml:"timeout_seconds"`
		RateLimit      any    `toml:"rate_limit"`
		LogFile        string `toml:"log_file"`
		LogLevel       string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIURL); v != "" {
		cfg.APIURL = v
	}
	if raw.TimeoutSeconds != nil {
		secs, err := number("timeout_seconds", raw.TimeoutSeconds)
		if err != nil {
			return Config{}, err
		}
		if secs <= 0 {
			return Config{}, fmt.Errorf("parse config: timeout_seconds must be positive, got %v", secs)
		}
		cfg.Timeout = time.Duration(secs * float64(time.Second))
	}
	if raw.RateLimit != nil {
		rps, err := number("rate_limit", raw.RateLimit)
		if err != nil {
			return Config{}, err
		}
		if rps < 0 {
			return Config{}, fmt.Errorf("parse config: rate_limit must not be negative, got %v", rps)
		}
		cfg.RateLimit = rps
	}
	if v := strings.TrimSpace(raw.LogFile); v != "" {
		cfg.LogFile = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return Config{}, fmt.Errorf("parse config: log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// number accepts both TOML integers and floats.
func number(key string, v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	}
	return 0, fmt.Errorf("parse config: %s must be a number, got %T", key, v)
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
