package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Location identifies a lookup target as the weather API expects it:
// a city name plus a nation/country code (e.g. "Boston", "US").
type Location struct {
	Nation string `json:"nation"`
	City   string `json:"city"`
}

// NewLocation validates and normalizes the raw flag/config values.
func NewLocation(nation, city string) (Location, error) {
	nation = strings.TrimSpace(nation)
	city = strings.TrimSpace(city)

	if nation == "" {
		return Location{}, &OpError{
			Op:   "domain.location",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("nation is required: %w", ErrInvalidConfig),
		}
	}
	if city == "" {
		return Location{}, &OpError{
			Op:   "domain.location",
			Kind: KindInvalidConfig,
			Err:  fmt.Errorf("city is required: %w", ErrInvalidConfig),
		}
	}

	return Location{Nation: nation, City: city}, nil
}

// Query returns the "City,Nation" segment used in API request paths.
func (l Location) Query() string {
	return l.City + "," + l.Nation
}

// Display returns the human-facing form, e.g. "Buenos Aires (AR)".
func (l Location) Display() string {
	return fmt.Sprintf("%s (%s)", titleCase(l.City), strings.ToUpper(l.Nation))
}

// titleCase upper-cases the first rune of each space-separated word and
// lower-cases the rest, so "new york" and "NEW YORK" both display the same.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
