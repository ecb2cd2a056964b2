package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/V3lvetStorm/pyweather/internal/domain"
	"github.com/V3lvetStorm/pyweather/internal/ports"
)

// Cache lifetimes. Ranges that touch today or the future hold live forecast
// data; fully past ranges are historical observations and never change.
const (
	liveTTL = 1 * time.Hour
	pastTTL = 24 * time.Hour
)

// GetForecast orchestrates one lookup: cache consult, provider fetch,
// best-effort cache write.
type GetForecast struct {
	provider ports.ForecastProvider
	cache    ports.ForecastCache
	log      *slog.Logger
	now      func() time.Time
}

type Option func(*GetForecast)

// WithLogger sets the logger used for cache diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(uc *GetForecast) { uc.log = l }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(uc *GetForecast) { uc.now = now }
}

// NewGetForecast builds the use case. cache may be nil to disable caching.
func NewGetForecast(p ports.ForecastProvider, cache ports.ForecastCache, opts ...Option) *GetForecast {
	uc := &GetForecast{
		provider: p,
		cache:    cache,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Result is the outcome of a lookup. Raw is empty on cache hits: the cache
// stores mapped forecasts, not upstream payloads.
type Result struct {
	Forecast  domain.Forecast
	Raw       []byte
	FromCache bool
}

type Params struct {
	Location domain.Location
	Range    domain.DateRange
	Units    domain.UnitGroup

	// BypassCache forces a provider fetch and skips the cache write-back read.
	// A fetched forecast is still stored for later invocations.
	BypassCache bool
}

func (uc *GetForecast) Execute(ctx context.Context, p Params) (Result, error) {
	key := CacheKey(p.Location, p.Range, p.Units)

	if uc.cache != nil && !p.BypassCache {
		fc, ok, err := uc.cache.Get(key)
		if err != nil {
			uc.log.Warn("cache.get_failed", "key", key, "err", err.Error())
		} else if ok {
			uc.log.Debug("cache.hit", "key", key)
			return Result{Forecast: fc, FromCache: true}, nil
		}
	}

	fc, raw, err := uc.provider.Fetch(ctx, p.Location, p.Range, p.Units)
	if err != nil {
		return Result{}, err
	}

	if uc.cache != nil {
		ttl := uc.ttlFor(p.Range)
		if putErr := uc.cache.Put(key, fc, ttl); putErr != nil {
			// Cache write failures degrade to a log line, never fail the lookup.
			uc.log.Warn("cache.put_failed", "key", key, "err", putErr.Error())
		}
	}

	return Result{Forecast: fc, Raw: raw}, nil
}

func (uc *GetForecast) ttlFor(r domain.DateRange) time.Duration {
	if r.EndsBefore(uc.now()) {
		return pastTTL
	}
	return liveTTL
}

// CacheKey builds a stable, filename-safe key for a lookup.
func CacheKey(loc domain.Location, r domain.DateRange, units domain.UnitGroup) string {
	city := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(loc.City)), " ", "-")
	nation := strings.ToLower(strings.TrimSpace(loc.Nation))
	return fmt.Sprintf("%s_%s_%s_%s", nation, city, r.Key(), units)
}
