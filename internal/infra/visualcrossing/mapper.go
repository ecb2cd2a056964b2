package visualcrossing

import (
	"fmt"
	"time"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

func mapForecast(loc domain.Location, r domain.DateRange, units domain.UnitGroup, dto timelineResponse, fetchedAt time.Time) (domain.Forecast, error) {
	fc := domain.Forecast{
		Location:        loc,
		Range:           r,
		Units:           units,
		ResolvedAddress: dto.ResolvedAddress,
		Days:            make([]domain.DayForecast, 0, len(dto.Days)),
		FetchedAt:       fetchedAt,
	}

	for i, d := range dto.Days {
		date, err := time.Parse(domain.DateLayout, d.Datetime)
		if err != nil {
			return domain.Forecast{}, &domain.OpError{
				Op:   "visualcrossing.map",
				Kind: domain.KindUpstream,
				Err:  fmt.Errorf("days[%d]: bad datetime %q: %w", i, d.Datetime, err),
			}
		}

		fc.Days = append(fc.Days, domain.DayForecast{
			Date:        date,
			Conditions:  d.Conditions,
			Description: d.Description,
			TempMax:     d.TempMax,
			TempMin:     d.TempMin,
			PrecipProb:  d.PrecipProb,
			WindSpeed:   d.WindSpeed,
			Humidity:    d.Humidity,
		})
	}

	return fc, nil
}
