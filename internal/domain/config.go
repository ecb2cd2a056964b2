package domain

import "time"

// Config represents the pyweather configuration loaded from pyweather.yaml.
type Config struct {
	Defaults DefaultsConfig
	Cache    CacheConfig
	HTTP     HTTPConfig

	// APIKey from the config file. The VISUAL_CROSSING_API_KEY environment
	// variable takes precedence; the CLI applies that overlay.
	APIKey string
}

type DefaultsConfig struct {
	Nation string
	City   string
	Units  UnitGroup
}

type CacheConfig struct {
	Enabled bool
	// Dir overrides the cache location. Empty means the platform default
	// (os.UserCacheDir()/pyweather).
	Dir string
}

type HTTPConfig struct {
	Timeout time.Duration
}

// DefaultConfig provides sane defaults if pyweather.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Defaults: DefaultsConfig{
			Units: UnitsMetric,
		},
		Cache: CacheConfig{
			Enabled: true,
		},
		HTTP: HTTPConfig{
			Timeout: 15 * time.Second,
		},
	}
}
