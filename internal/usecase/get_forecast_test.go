package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

type fakeProvider struct {
	forecast domain.Forecast
	raw      []byte
	err      error
	calls    int
}

func (f *fakeProvider) Fetch(_ context.Context, _ domain.Location, _ domain.DateRange, _ domain.UnitGroup) (domain.Forecast, []byte, error) {
	f.calls++
	return f.forecast, f.raw, f.err
}

type fakeCache struct {
	entries map[string]domain.Forecast
	ttls    map[string]time.Duration
	getErr  error
	putErr  error
}

func newFakeCache() *fakeCache {
	return &fakeCache{
		entries: map[string]domain.Forecast{},
		ttls:    map[string]time.Duration{},
	}
}

func (c *fakeCache) Get(key string) (domain.Forecast, bool, error) {
	if c.getErr != nil {
		return domain.Forecast{}, false, c.getErr
	}
	fc, ok := c.entries[key]
	return fc, ok, nil
}

func (c *fakeCache) Put(key string, fc domain.Forecast, ttl time.Duration) error {
	if c.putErr != nil {
		return c.putErr
	}
	c.entries[key] = fc
	c.ttls[key] = ttl
	return nil
}

func (c *fakeCache) List() ([]domain.SnapshotRef, error) { return nil, nil }

func testParams(t *testing.T) Params {
	t.Helper()
	loc, err := domain.NewLocation("US", "Boston")
	if err != nil {
		t.Fatal(err)
	}
	r, err := domain.ParseDateRange("2026-03-01:2026-03-02")
	if err != nil {
		t.Fatal(err)
	}
	return Params{Location: loc, Range: r, Units: domain.UnitsMetric}
}

func TestGetForecastCacheMissFetchesAndStores(t *testing.T) {
	p := &fakeProvider{
		forecast: domain.Forecast{ResolvedAddress: "Boston, MA"},
		raw:      []byte(`{"days":[]}`),
	}
	cache := newFakeCache()
	uc := NewGetForecast(p, cache)

	params := testParams(t)
	res, err := uc.Execute(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FromCache {
		t.Error("expected FromCache=false on miss")
	}
	if string(res.Raw) != `{"days":[]}` {
		t.Errorf("expected raw body passthrough, got %q", res.Raw)
	}
	if p.calls != 1 {
		t.Errorf("expected 1 provider call, got %d", p.calls)
	}

	key := CacheKey(params.Location, params.Range, params.Units)
	if _, ok := cache.entries[key]; !ok {
		t.Errorf("expected forecast stored under %q", key)
	}
}

func TestGetForecastCacheHitSkipsProvider(t *testing.T) {
	p := &fakeProvider{}
	cache := newFakeCache()
	params := testParams(t)
	key := CacheKey(params.Location, params.Range, params.Units)
	cache.entries[key] = domain.Forecast{ResolvedAddress: "cached"}

	uc := NewGetForecast(p, cache)
	res, err := uc.Execute(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.FromCache {
		t.Error("expected FromCache=true")
	}
	if res.Forecast.ResolvedAddress != "cached" {
		t.Errorf("expected cached forecast, got %+v", res.Forecast)
	}
	if p.calls != 0 {
		t.Errorf("expected no provider calls, got %d", p.calls)
	}
}

func TestGetForecastBypassCache(t *testing.T) {
	p := &fakeProvider{forecast: domain.Forecast{ResolvedAddress: "fresh"}}
	cache := newFakeCache()
	params := testParams(t)
	key := CacheKey(params.Location, params.Range, params.Units)
	cache.entries[key] = domain.Forecast{ResolvedAddress: "stale"}

	params.BypassCache = true
	uc := NewGetForecast(p, cache)
	res, err := uc.Execute(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.FromCache || res.Forecast.ResolvedAddress != "fresh" {
		t.Errorf("expected fresh fetch, got %+v", res)
	}
	// Fetched result still written back.
	if cache.entries[key].ResolvedAddress != "fresh" {
		t.Error("expected write-back of fresh forecast")
	}
}

func TestGetForecastProviderError(t *testing.T) {
	wantErr := &domain.OpError{Op: "provider.fetch", Kind: domain.KindAuth}
	p := &fakeProvider{err: wantErr}
	uc := NewGetForecast(p, newFakeCache())

	_, err := uc.Execute(context.Background(), testParams(t))
	if !domain.IsKind(err, domain.KindAuth) {
		t.Fatalf("expected auth error passthrough, got %v", err)
	}
}

func TestGetForecastCachePutFailureTolerated(t *testing.T) {
	p := &fakeProvider{forecast: domain.Forecast{ResolvedAddress: "ok"}}
	cache := newFakeCache()
	cache.putErr = errors.New("disk full")
	uc := NewGetForecast(p, cache)

	res, err := uc.Execute(context.Background(), testParams(t))
	if err != nil {
		t.Fatalf("expected cache put failure to be tolerated, got %v", err)
	}
	if res.Forecast.ResolvedAddress != "ok" {
		t.Errorf("unexpected forecast: %+v", res.Forecast)
	}
}

func TestGetForecastCacheGetFailureFallsThrough(t *testing.T) {
	p := &fakeProvider{forecast: domain.Forecast{ResolvedAddress: "ok"}}
	cache := newFakeCache()
	cache.getErr = errors.New("corrupt entry")
	uc := NewGetForecast(p, cache)

	res, err := uc.Execute(context.Background(), testParams(t))
	if err != nil {
		t.Fatalf("expected cache get failure to fall through to fetch, got %v", err)
	}
	if p.calls != 1 {
		t.Errorf("expected provider fetch, got %d calls", p.calls)
	}
	if res.FromCache {
		t.Error("expected FromCache=false")
	}
}

func TestTTLSelection(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p := &fakeProvider{}
	cache := newFakeCache()
	uc := NewGetForecast(p, cache, WithNow(func() time.Time { return now }))

	past := testParams(t) // 2026-03-01:2026-03-02, fully before now
	if _, err := uc.Execute(context.Background(), past); err != nil {
		t.Fatal(err)
	}
	pastKey := CacheKey(past.Location, past.Range, past.Units)
	if got := cache.ttls[pastKey]; got != pastTTL {
		t.Errorf("expected past TTL %s, got %s", pastTTL, got)
	}

	live := past
	var err error
	live.Range, err = domain.ParseDateRange("2026-03-10:2026-03-12")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Execute(context.Background(), live); err != nil {
		t.Fatal(err)
	}
	liveKey := CacheKey(live.Location, live.Range, live.Units)
	if got := cache.ttls[liveKey]; got != liveTTL {
		t.Errorf("expected live TTL %s, got %s", liveTTL, got)
	}
}

func TestCacheKeyNormalization(t *testing.T) {
	loc, err := domain.NewLocation("GB", "Newcastle upon Tyne")
	if err != nil {
		t.Fatal(err)
	}
	r, err := domain.ParseDateRange("2026-01-01")
	if err != nil {
		t.Fatal(err)
	}
	got := CacheKey(loc, r, domain.UnitsUS)
	want := "gb_newcastle-upon-tyne_2026-01-01_2026-01-01_us"
	if got != want {
		t.Errorf("CacheKey = %q, want %q", got, want)
	}
}
