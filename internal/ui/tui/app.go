package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/V3lvetStorm/pyweather/internal/domain"
)

type screen int

const (
	screenDays screen = iota
	screenDetail
)

type dayItem struct {
	day   domain.DayForecast
	units domain.UnitGroup
}

func (d dayItem) Title() string {
	return fmt.Sprintf("%s  %s %s",
		d.day.Date.Format(domain.DateLayout),
		domain.ConditionEmoji(d.day.Conditions),
		d.day.Conditions,
	)
}

func (d dayItem) Description() string {
	return fmt.Sprintf("%s / %s  💨 %s",
		tempValue(d.day.TempMax, d.units),
		tempValue(d.day.TempMin, d.units),
		speedValue(d.day.WindSpeed, d.units),
	)
}

func (d dayItem) FilterValue() string { return d.day.Conditions }

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	days     list.Model
	selected dayItem
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := make([]list.Item, 0, len(deps.Forecast.Days))
	for _, d := range deps.Forecast.Days {
		items = append(items, dayItem{day: d, units: deps.Forecast.Units})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = deps.Forecast.Location.Display()
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return model{
		theme: t,
		deps:  deps,
		scr:   screenDays,
		days:  l,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w, h := msg.Width, msg.Height
		m.days.SetSize(w-4, h-8)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.scr == screenDays {
				return m, tea.Quit
			}
			m.scr = screenDays
			return m, nil

		case "enter":
			if m.scr == screenDays {
				it, ok := m.days.SelectedItem().(dayItem)
				if !ok {
					return m, nil
				}
				m.scr = screenDetail
				m.selected = it
				return m, nil
			}

		case "esc", "b":
			if m.scr != screenDays {
				m.scr = screenDays
				return m, nil
			}
		}
	}

	if m.scr == screenDays {
		var cmd tea.Cmd
		m.days, cmd = m.days.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	fc := m.deps.Forecast

	header := m.theme.Title.Render("📍 "+fc.Location.Display()) + "\n" +
		m.theme.Subtitle.Render(fc.Range.String()) + "\n"

	switch m.scr {
	case screenDays:
		if len(fc.Days) == 0 {
			card := m.theme.Card.Render("No weather data available for the specified period.")
			return wrap.Render(header + "\n" + card + "\n" + m.theme.Help.Render("q quit"))
		}
		help := m.theme.Help.Render("↑/↓ navigate • enter details • / search • q quit")
		return wrap.Render(header + "\n" + m.theme.Card.Render(m.days.View()) + "\n" + help)

	case screenDetail:
		return wrap.Render(header + "\n" + m.detailCard() + "\n" + m.theme.Help.Render("esc/b back • q list"))

	default:
		return wrap.Render(header + "\nunknown state")
	}
}

func (m model) detailCard() string {
	d := m.selected.day
	units := m.deps.Forecast.Units

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.theme.Title.Render(d.Date.Format(domain.DateLayout)))
	fmt.Fprintf(&b, "%s %s %s\n", m.theme.Label.Render("Conditions:"), domain.ConditionEmoji(d.Conditions), d.Conditions)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s %s\n", m.theme.Label.Render("Summary:   "), d.Description)
	}
	fmt.Fprintf(&b, "%s %s / %s\n", m.theme.Label.Render("Max / Min: "), tempValue(d.TempMax, units), tempValue(d.TempMin, units))
	fmt.Fprintf(&b, "%s %s\n", m.theme.Label.Render("Rain:      "), percentValue(d.PrecipProb))
	fmt.Fprintf(&b, "%s %s\n", m.theme.Label.Render("Wind:      "), speedValue(d.WindSpeed, units))
	fmt.Fprintf(&b, "%s %s", m.theme.Label.Render("Humidity:  "), percentValue(d.Humidity))

	return m.theme.Card.Render(b.String())
}

func tempValue(v *float64, units domain.UnitGroup) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%s", *v, units.TempSuffix())
}

func percentValue(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", *v)
}

func speedValue(v *float64, units domain.UnitGroup) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f %s", *v, units.SpeedSuffix())
}
