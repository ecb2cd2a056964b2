package tui

import (
	"log/slog"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

// Deps carries everything the browser needs. The forecast is fetched before
// the program starts; the TUI itself never touches the network.
type Deps struct {
	Forecast domain.Forecast
	Logger   *slog.Logger
}
