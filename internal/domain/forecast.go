package domain

import "time"

// DayForecast is one day of forecast data. Numeric fields are pointers:
// the API omits them for some locations/dates and a missing value must be
// distinguishable from zero.
type DayForecast struct {
	Date        time.Time `json:"date"`
	Conditions  string    `json:"conditions"`
	Description string    `json:"description,omitempty"`

	TempMax    *float64 `json:"temp_max,omitempty"`
	TempMin    *float64 `json:"temp_min,omitempty"`
	PrecipProb *float64 `json:"precip_prob,omitempty"`
	WindSpeed  *float64 `json:"wind_speed,omitempty"`
	Humidity   *float64 `json:"humidity,omitempty"`
}

// Forecast is a resolved lookup result for one location and date range.
type Forecast struct {
	Location        Location      `json:"location"`
	Range           DateRange     `json:"range"`
	Units           UnitGroup     `json:"units"`
	ResolvedAddress string        `json:"resolved_address,omitempty"`
	Days            []DayForecast `json:"days"`
	FetchedAt       time.Time     `json:"fetched_at"`
}

// SnapshotRef describes one cached forecast without loading its full payload.
type SnapshotRef struct {
	Key       string    `json:"key"`
	Location  string    `json:"location"`
	Range     string    `json:"range"`
	FetchedAt time.Time `json:"fetched_at"`
	ExpiresAt time.Time `json:"expires_at"`
	Path      string    `json:"path,omitempty"`
}

// Expired reports whether the snapshot is stale at the given time.
func (s SnapshotRef) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
