package domain

import (
	"fmt"
	"strings"
)

// UnitGroup selects the measurement system requested from the API.
type UnitGroup string

const (
	UnitsMetric UnitGroup = "metric"
	UnitsUS     UnitGroup = "us"
)

// ParseUnitGroup validates a units flag/config value.
func ParseUnitGroup(s string) (UnitGroup, error) {
	switch UnitGroup(strings.ToLower(strings.TrimSpace(s))) {
	case UnitsMetric:
		return UnitsMetric, nil
	case UnitsUS:
		return UnitsUS, nil
	default:
		return "", &OpError{
			Op:   "domain.units",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("unsupported unit group %q (expected metric|us): %w", s, ErrInvalidConfig),
		}
	}
}

// TempSuffix returns the temperature unit label for display.
func (u UnitGroup) TempSuffix() string {
	if u == UnitsUS {
		return "°F"
	}
	return "°C"
}

// SpeedSuffix returns the wind-speed unit label for display.
func (u UnitGroup) SpeedSuffix() string {
	if u == UnitsUS {
		return "mph"
	}
	return "km/h"
}
