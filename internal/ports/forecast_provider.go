package ports

import (
	"context"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

// ForecastProvider fetches a forecast from a weather data source.
// The raw response body is returned alongside the mapped forecast so
// callers can run ad-hoc extractions against it.
type ForecastProvider interface {
	Fetch(ctx context.Context, loc domain.Location, r domain.DateRange, units domain.UnitGroup) (domain.Forecast, []byte, error)
}
