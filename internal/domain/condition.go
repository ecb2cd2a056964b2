package domain

import "strings"

// conditionRules map condition keywords to an emoji. Order matters: the
// first matching rule wins, so "Partly cloudy with rain" is ⛅, not 🌧️.
var conditionRules = []struct {
	keywords []string
	emoji    string
}{
	{[]string{"clear", "sun"}, "☀️"},
	{[]string{"partly", "cloud"}, "⛅"},
	{[]string{"rain"}, "🌧️"},
	{[]string{"snow"}, "❄️"},
	{[]string{"storm", "thunder"}, "⛈️"},
	{[]string{"fog"}, "🌫️"},
}

// FallbackEmoji is used when no condition keyword matches.
const FallbackEmoji = "🌈"

// ConditionEmoji picks a weather emoji for a free-text conditions string.
func ConditionEmoji(conditions string) string {
	c := strings.ToLower(conditions)
	for _, rule := range conditionRules {
		for _, kw := range rule.keywords {
			if strings.Contains(c, kw) {
				return rule.emoji
			}
		}
	}
	return FallbackEmoji
}
