package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings the partmart shell needs at boot.
type Config struct {
	APIBase     string
	StateDir    string
	DefaultPage string
	Locale      string
}

const (
	defaultConfigPath = "~/.config/partmart/config.toml"
	defaultStateDir   = "~/.local/share/partmart"
	defaultAPIBase    = "127.0.0.1:8799"
	defaultPage       = "home"
	defaultLocale     = "en"
)

// Load locates and parses the partmart config, falling back to defaults when
// the file is missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBase:     defaultAPIBase,
		DefaultPage: defaultPage,
		Locale:      defaultLocale,
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.StateDir = mustExpand(defaultStateDir)
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
		APIBase     string `toml:"api_base"`
		StateDir    string `toml:"state_dir"`
		DefaultPage string `toml:"default_page"`
		Locale      string `toml:"locale"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg.APIBase = strings.TrimSpace(raw.APIBase)
	if cfg.APIBase == "" {
		cfg.APIBase = defaultAPIBase
	}

	cfg.StateDir = strings.TrimSpace(raw.StateDir)
	if cfg.StateDir == "" {
		cfg.StateDir = defaultStateDir
	}
	cfg.StateDir = mustExpand(cfg.StateDir)

	cfg.DefaultPage = strings.TrimSpace(raw.DefaultPage)
	if cfg.DefaultPage == "" {
		cfg.DefaultPage = defaultPage
	}

	cfg.Locale = normalizeLocale(raw.Locale)

	return cfg, nil
}

// normalizeLocale restricts the locale preference to the supported pair.
func normalizeLocale(locale string) string {
	switch strings.TrimSpace(locale) {
	case "ar":
		return "ar"
	default:
		return defaultLocale
	}
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
