package ports

import "github.com/V3lvetStorm/pyweather/internal/domain"

// ConfigLoader loads pyweather configuration from a source (e.g. filesystem).
type ConfigLoader interface {
	Load() (domain.Config, error)
}
