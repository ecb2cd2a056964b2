package ports

import (
	"time"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

// ForecastCache persists forecast snapshots between invocations.
type ForecastCache interface {
	// Get returns the cached forecast for key. ok is false when the entry
	// is absent or expired; neither case is an error.
	Get(key string) (fc domain.Forecast, ok bool, err error)

	// Put stores the forecast under key with the given time-to-live.
	Put(key string, fc domain.Forecast, ttl time.Duration) error

	// List enumerates stored snapshots, newest first.
	List() ([]domain.SnapshotRef, error)
}
