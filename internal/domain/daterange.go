package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the civil date format used on flags, API paths and output.
const DateLayout = "2006-01-02"

// DateRange is an inclusive interval of civil dates. Times are stored
// truncated to midnight UTC; only the calendar date is meaningful.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ParseDateRange accepts a single date ("2026-03-01") or a colon-separated
// range ("2026-03-01:2026-03-05"). A single date yields a one-day range.
func ParseDateRange(s string) (DateRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateRange{}, invalidRange("date is required")
	}

	startStr, endStr := s, s
	if i := strings.Index(s, ":"); i >= 0 {
		startStr, endStr = s[:i], s[i+1:]
	}

	start, err := parseDate(startStr)
	if err != nil {
		return DateRange{}, invalidRange(err.Error())
	}
	end, err := parseDate(endStr)
	if err != nil {
		return DateRange{}, invalidRange(err.Error())
	}

	if start.After(end) {
		return DateRange{}, invalidRange("start date must be before or equal to end date")
	}

	return DateRange{Start: start, End: end}, nil
}

// SingleDay builds a one-day range for the given time's calendar date.
func SingleDay(t time.Time) DateRange {
	d := truncateToDay(t)
	return DateRange{Start: d, End: d}
}

// Days enumerates every date in the range, start through end inclusive.
func (r DateRange) Days() []time.Time {
	var out []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// Contains reports whether the given time's calendar date falls in the range.
func (r DateRange) Contains(t time.Time) bool {
	d := truncateToDay(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// EndsBefore reports whether the whole range lies strictly before the given
// time's calendar date. Used to tell immutable past data from live forecasts.
func (r DateRange) EndsBefore(t time.Time) bool {
	return r.End.Before(truncateToDay(t))
}

func (r DateRange) String() string {
	return r.Start.Format(DateLayout) + " to " + r.End.Format(DateLayout)
}

// Key returns a compact, filename-safe form of the range.
func (r DateRange) Key() string {
	return r.Start.Format(DateLayout) + "_" + r.End.Format(DateLayout)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", strings.TrimSpace(s))
	}
	return t, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func invalidRange(msg string) error {
	return &OpError{
		Op:   "domain.daterange",
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, ErrInvalidConfig),
	}
}
