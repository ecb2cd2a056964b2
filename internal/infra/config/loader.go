// Package config loads pyweather.yaml and applies defaults.
package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/V3lvetStorm/pyweather/internal/domain"
	"github.com/V3lvetStorm/pyweather/internal/ports"
)

const fileName = "pyweather.yaml"

// EnvConfigPath overrides the config file search entirely.
const EnvConfigPath = "PYWEATHER_CONFIG"

type Loader struct {
	// searchPaths overrides the default search order. Used by tests.
	searchPaths []string
}

type Option func(*Loader)

// WithSearchPaths replaces the default config file search order.
func WithSearchPaths(paths ...string) Option {
	return func(l *Loader) { l.searchPaths = paths }
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load reads the first config file found and overlays it on defaults.
// No file at all is not an error: defaults apply.
func (l *Loader) Load() (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path, found := l.locate()
	if !found {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return overlay(cfg, y, path)
}

func (l *Loader) locate() (string, bool) {
	paths := l.searchPaths
	if paths == nil {
		paths = defaultSearchPaths()
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

func defaultSearchPaths() []string {
	var paths []string
	if p := os.Getenv(EnvConfigPath); p != "" {
		// Explicit override: only this path is consulted.
		return []string{p}
	}
	paths = append(paths, fileName)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "pyweather", fileName))
	}
	return paths
}

// overlay applies parsed values on top of defaults.
func overlay(cfg domain.Config, y yamlConfig, path string) (domain.Config, error) {
	if y.Defaults.Nation != "" {
		cfg.Defaults.Nation = y.Defaults.Nation
	}
	if y.Defaults.City != "" {
		cfg.Defaults.City = y.Defaults.City
	}
	if y.Defaults.Units != "" {
		units, err := domain.ParseUnitGroup(y.Defaults.Units)
		if err != nil {
			return cfg, &domain.OpError{
				Op:   "config.load",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  err,
			}
		}
		cfg.Defaults.Units = units
	}

	if y.Cache.Enabled != nil {
		cfg.Cache.Enabled = *y.Cache.Enabled
	}
	if y.Cache.Dir != "" {
		cfg.Cache.Dir = y.Cache.Dir
	}

	if y.HTTP.TimeoutSeconds > 0 {
		cfg.HTTP.Timeout = time.Duration(y.HTTP.TimeoutSeconds) * time.Second
	}

	cfg.APIKey = y.APIKey
	return cfg, nil
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
