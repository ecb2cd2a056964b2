package domain

import "testing"

func TestConditionEmoji(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Clear", "☀️"},
		{"Sunny intervals", "☀️"},
		{"Partly cloudy", "⛅"},
		{"Overcast clouds", "⛅"},
		{"Rain showers", "🌧️"},
		{"Light snow", "❄️"},
		{"Thunderstorms", "⛈️"},
		{"Fog", "🌫️"},
		{"Haze", FallbackEmoji},
		{"", FallbackEmoji},
	}
	for _, c := range cases {
		if got := ConditionEmoji(c.input); got != c.want {
			t.Errorf("ConditionEmoji(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestConditionEmojiFirstRuleWins(t *testing.T) {
	// "partly" outranks "rain" because cloud rules come before rain rules.
	if got := ConditionEmoji("Partly cloudy with rain"); got != "⛅" {
		t.Fatalf("expected ⛅ for mixed conditions, got %q", got)
	}
	// "clear" outranks everything.
	if got := ConditionEmoji("Clearing storm"); got != "☀️" {
		t.Fatalf("expected ☀️ when clear matches first, got %q", got)
	}
}
