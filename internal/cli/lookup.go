package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/V3lvetStorm/pyweather/internal/buildinfo"
	"github.com/V3lvetStorm/pyweather/internal/domain"
	"github.com/V3lvetStorm/pyweather/internal/infra/config"
	"github.com/V3lvetStorm/pyweather/internal/infra/forecastcache"
	"github.com/V3lvetStorm/pyweather/internal/infra/httpclient"
	"github.com/V3lvetStorm/pyweather/internal/infra/logger"
	"github.com/V3lvetStorm/pyweather/internal/infra/visualcrossing"
	"github.com/V3lvetStorm/pyweather/internal/ports"
	"github.com/V3lvetStorm/pyweather/internal/usecase"
)

// EnvAPIKey provides the Visual Crossing API key. It overrides any key in
// the config file.
const EnvAPIKey = "VISUAL_CROSSING_API_KEY"

// setupLogging initializes the file logger; failures degrade to a discard
// handler so a read-only home directory never blocks a lookup.
func setupLogging(debug bool) func() {
	cleanup, _ := logger.Setup(logger.Config{Debug: debug})
	return func() {
		if cleanup != nil {
			_ = cleanup()
		}
	}
}

func loadConfig() (domain.Config, error) {
	return config.NewLoader().Load()
}

// resolveParams merges flag values over config defaults into lookup params.
func resolveParams(cfg domain.Config, opts *lookupOptions, now time.Time) (usecase.Params, error) {
	loc, err := domain.NewLocation(
		firstNonEmpty(opts.nation, cfg.Defaults.Nation),
		firstNonEmpty(opts.city, cfg.Defaults.City),
	)
	if err != nil {
		return usecase.Params{}, err
	}

	r := domain.SingleDay(now)
	if opts.date != "" {
		r, err = domain.ParseDateRange(opts.date)
		if err != nil {
			return usecase.Params{}, err
		}
	}

	units, err := domain.ParseUnitGroup(firstNonEmpty(opts.units, string(cfg.Defaults.Units)))
	if err != nil {
		return usecase.Params{}, err
	}

	return usecase.Params{
		Location: loc,
		Range:    r,
		Units:    units,
		// --query needs the raw upstream body, which cache hits don't carry.
		BypassCache: opts.noCache || opts.query != "",
	}, nil
}

// resolveAPIKey prefers the environment variable over the config file.
func resolveAPIKey(cfg domain.Config) (string, error) {
	if key := os.Getenv(EnvAPIKey); key != "" {
		return key, nil
	}
	if cfg.APIKey != "" {
		return cfg.APIKey, nil
	}
	return "", &domain.OpError{
		Op:   "cli.apikey",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("set the %s environment variable with your API key: %w", EnvAPIKey, domain.ErrMissingAPIKey),
	}
}

// newUseCase wires the provider and cache for one lookup.
func newUseCase(cfg domain.Config, apiKey string, log *slog.Logger) (*usecase.GetForecast, error) {
	exec := httpclient.NewExecutor(
		httpclient.WithTimeout(cfg.HTTP.Timeout),
		httpclient.WithUserAgent("pyweather/"+buildinfo.Version),
	)
	provider := visualcrossing.New(apiKey, visualcrossing.WithExecutor(exec))

	cache, err := newCache(cfg)
	if err != nil {
		return nil, err
	}

	return usecase.NewGetForecast(provider, cache, usecase.WithLogger(log)), nil
}

// newCache returns nil when caching is disabled, which the use case treats
// as "always fetch".
func newCache(cfg domain.Config) (ports.ForecastCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	dir := cfg.Cache.Dir
	if dir == "" {
		var err error
		dir, err = forecastcache.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	return forecastcache.NewJSONStore(dir, forecastcache.WithIndex(true)), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
