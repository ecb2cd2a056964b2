package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/V3lvetStorm/pyweather/internal/domain"
	"github.com/V3lvetStorm/pyweather/internal/usecase"
)

// --- resolveParams ---

func TestResolveParamsFlagsOverrideConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Defaults.Nation = "PE"
	cfg.Defaults.City = "Lima"

	opts := &lookupOptions{nation: "US", city: "Boston", date: "2026-03-01", units: "us"}
	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)

	p, err := resolveParams(cfg, opts, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Location.Query() != "Boston,US" {
		t.Errorf("expected flag location, got %s", p.Location.Query())
	}
	if p.Units != domain.UnitsUS {
		t.Errorf("expected us units, got %s", p.Units)
	}
	if p.Range.String() != "2026-03-01 to 2026-03-01" {
		t.Errorf("unexpected range: %s", p.Range)
	}
}

func TestResolveParamsConfigDefaults(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.Defaults.Nation = "PE"
	cfg.Defaults.City = "Lima"

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	p, err := resolveParams(cfg, &lookupOptions{}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Location.Query() != "Lima,PE" {
		t.Errorf("expected config location, got %s", p.Location.Query())
	}
	// No --date means today.
	if p.Range.String() != "2026-02-01 to 2026-02-01" {
		t.Errorf("expected today range, got %s", p.Range)
	}
	if p.Units != domain.UnitsMetric {
		t.Errorf("expected metric default, got %s", p.Units)
	}
}

func TestResolveParamsMissingLocation(t *testing.T) {
	_, err := resolveParams(domain.DefaultConfig(), &lookupOptions{}, time.Now())
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestResolveParamsQueryBypassesCache(t *testing.T) {
	cfg := domain.DefaultConfig()
	opts := &lookupOptions{nation: "US", city: "Boston", query: "$.days[0].tempmax"}

	p, err := resolveParams(cfg, opts, time.Now())
	if err != nil {
		t.Fatal(err)
	}
	if !p.BypassCache {
		t.Error("expected --query to bypass the cache")
	}
}

// --- resolveAPIKey ---

func TestResolveAPIKeyEnvWins(t *testing.T) {
	t.Setenv(EnvAPIKey, "env-key")
	cfg := domain.DefaultConfig()
	cfg.APIKey = "file-key"

	key, err := resolveAPIKey(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if key != "env-key" {
		t.Errorf("expected env key, got %q", key)
	}
}

func TestResolveAPIKeyFileFallback(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	cfg := domain.DefaultConfig()
	cfg.APIKey = "file-key"

	key, err := resolveAPIKey(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if key != "file-key" {
		t.Errorf("expected file key, got %q", key)
	}
}

func TestResolveAPIKeyMissing(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	_, err := resolveAPIKey(domain.DefaultConfig())
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), EnvAPIKey) {
		t.Errorf("expected message to name %s, got %v", EnvAPIKey, err)
	}
}

// --- printForecast ---

func sampleForecast(t *testing.T) domain.Forecast {
	t.Helper()
	loc, err := domain.NewLocation("US", "Boston")
	if err != nil {
		t.Fatal(err)
	}
	r, err := domain.ParseDateRange("2026-03-01")
	if err != nil {
		t.Fatal(err)
	}
	tmax, tmin, rain, wind := 8.3, -1.2, 40.0, 22.5
	return domain.Forecast{
		Location: loc,
		Range:    r,
		Units:    domain.UnitsMetric,
		Days: []domain.DayForecast{
			{
				Date:       r.Start,
				Conditions: "Partly cloudy",
				TempMax:    &tmax,
				TempMin:    &tmin,
				PrecipProb: &rain,
				WindSpeed:  &wind,
			},
		},
	}
}

func TestPrintForecastTable(t *testing.T) {
	var buf bytes.Buffer
	res := usecase.Result{Forecast: sampleForecast(t)}

	if err := printForecast(&buf, res, &lookupOptions{format: "table"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"📍 Boston (US)", "2026-03-01", "⛅ Partly cloudy", "8.3° / -1.2°", "40%", "22.5 km/h"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPrintForecastNoDays(t *testing.T) {
	fc := sampleForecast(t)
	fc.Days = nil

	var buf bytes.Buffer
	if err := printForecast(&buf, usecase.Result{Forecast: fc}, &lookupOptions{format: "table"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), noDataMessage) {
		t.Errorf("expected no-data message, got:\n%s", buf.String())
	}
}

func TestPrintForecastJSON(t *testing.T) {
	var buf bytes.Buffer
	res := usecase.Result{Forecast: sampleForecast(t)}

	if err := printForecast(&buf, res, &lookupOptions{format: "json"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded domain.Forecast
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("expected valid JSON output: %v", err)
	}
	if decoded.Days[0].Conditions != "Partly cloudy" {
		t.Errorf("unexpected decoded forecast: %+v", decoded)
	}
}

func TestPrintForecastBadFormat(t *testing.T) {
	var buf bytes.Buffer
	err := printForecast(&buf, usecase.Result{Forecast: sampleForecast(t)}, &lookupOptions{format: "xml"})
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
}

func TestPrintForecastQuery(t *testing.T) {
	var buf bytes.Buffer
	res := usecase.Result{
		Forecast: sampleForecast(t),
		Raw:      []byte(`{"resolvedAddress":"Boston, MA","days":[{"tempmax":8.3}]}`),
	}

	opts := &lookupOptions{query: "$.days[0].tempmax"}
	if err := printForecast(&buf, res, opts); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "8.3" {
		t.Errorf("expected query result 8.3, got %q", got)
	}
}

// --- evalQuery ---

func TestEvalQuery(t *testing.T) {
	raw := []byte(`{"s":"txt","n":12.5,"b":true,"z":null,"arr":[1,2]}`)
	cases := []struct {
		expr string
		want string
	}{
		{"$.s", "txt"},
		{"$.n", "12.5"},
		{"$.b", "true"},
		{"$.z", "null"},
	}
	for _, c := range cases {
		got, err := evalQuery(raw, c.expr)
		if err != nil {
			t.Errorf("evalQuery(%q) unexpected error: %v", c.expr, err)
			continue
		}
		if got != c.want {
			t.Errorf("evalQuery(%q) = %q, want %q", c.expr, got, c.want)
		}
	}

	arr, err := evalQuery(raw, "$.arr")
	if err != nil {
		t.Fatal(err)
	}
	var decoded []float64
	if err := json.Unmarshal([]byte(arr), &decoded); err != nil || len(decoded) != 2 {
		t.Errorf("expected JSON array output, got %q", arr)
	}
}

func TestEvalQueryErrors(t *testing.T) {
	if _, err := evalQuery([]byte("{not json"), "$.x"); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Errorf("expected invalid_config for bad body, got %v", err)
	}
	if _, err := evalQuery([]byte("{}"), "  "); !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Errorf("expected invalid_config for empty expr, got %v", err)
	}
}

// --- render helpers ---

func TestConditionCellPadding(t *testing.T) {
	got := conditionCell("Fog")
	// Emoji are double width; padding must compensate by display width.
	if !strings.HasPrefix(got, "🌫️ Fog") {
		t.Errorf("unexpected cell: %q", got)
	}
	if !strings.HasSuffix(got, " ") {
		t.Errorf("expected trailing padding, got %q", got)
	}
}

func TestConditionCellUnknown(t *testing.T) {
	got := conditionCell("")
	if !strings.Contains(got, "Unknown") || !strings.Contains(got, domain.FallbackEmoji) {
		t.Errorf("unexpected cell for empty conditions: %q", got)
	}
}

func TestFloatCell(t *testing.T) {
	cases := []struct {
		input *float64
		want  string
	}{
		{ptr(8.3), "8.3"},
		{ptr(40.0), "40"},
		{ptr(0.0), "0"},
		{ptr(-1.25), "-1.2"},
		{nil, missingValue},
	}
	for _, c := range cases {
		if got := floatCell(c.input); got != c.want {
			t.Errorf("floatCell(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := firstNonEmpty("", "b", "c"); got != "b" {
		t.Errorf("firstNonEmpty = %q, want b", got)
	}
	if got := firstNonEmpty("", ""); got != "" {
		t.Errorf("firstNonEmpty = %q, want empty", got)
	}
}

func ptr(f float64) *float64 { return &f }
