package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

// Minimum visual width of the conditions column so short and long condition
// strings produce a stable layout across days.
const conditionColWidth = 20

const missingValue = "n/a"

func renderForecastTable(fc domain.Forecast) string {
	headerStyle := lipgloss.NewStyle().Bold(true)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("63"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		Headers(
			"Date",
			"Weather",
			fmt.Sprintf("🌡️ Max/Min (%s)", fc.Units.TempSuffix()),
			"💧 Rain %",
			fmt.Sprintf("💨 Wind (%s)", fc.Units.SpeedSuffix()),
		)

	for _, d := range fc.Days {
		t.Row(
			d.Date.Format(domain.DateLayout),
			conditionCell(d.Conditions),
			tempCell(d.TempMax, d.TempMin),
			percentCell(d.PrecipProb),
			windCell(d.WindSpeed, fc.Units),
		)
	}

	return t.Render()
}

// conditionCell prefixes the emoji and pads by display width: emoji are
// double-width in the terminal, so byte- or rune-based padding drifts.
func conditionCell(conditions string) string {
	if conditions == "" {
		conditions = "Unknown"
	}
	s := domain.ConditionEmoji(conditions) + " " + conditions
	if w := runewidth.StringWidth(s); w < conditionColWidth {
		return s + strings.Repeat(" ", conditionColWidth-w)
	}
	return s
}

func tempCell(max, min *float64) string {
	return fmt.Sprintf("%s° / %s°", floatCell(max), floatCell(min))
}

func percentCell(v *float64) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%s%%", floatCell(v))
}

func windCell(v *float64, units domain.UnitGroup) string {
	if v == nil {
		return missingValue
	}
	return fmt.Sprintf("%s %s", floatCell(v), units.SpeedSuffix())
}

func floatCell(v *float64) string {
	if v == nil {
		return missingValue
	}
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.1f", *v), "0"), ".")
}
