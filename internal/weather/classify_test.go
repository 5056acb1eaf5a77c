package weather

import (
	"testing"

	"github.com/hpungsan/skymemo/internal/errors"
)

func TestClassifyExactEnum(t *testing.T) {
	got, err := Classify("Partly Cloudy")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != PartlyCloudy {
		t.Errorf("got %q, want %q", got, PartlyCloudy)
	}
}

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		desc string
		want Condition
	}{
		{"clear sky", Sunny},
		{"bright morning", Sunny},
		{"scattered clouds", PartlyCloudy},
		{"few clouds", PartlyCloudy},
		{"overcast", Cloudy},
		{"broken clouds", Cloudy},
		{"light rain", Rainy},
		{"drizzle", Rainy},
		{"thunderstorm", Stormy},
		{"severe weather warning", Stormy},
		{"heavy snow", Snowy},
		{"sleet", Snowy},
		{"mist", Foggy},
		{"haze", Foggy},
		{"gusty", Windy},
		{"breezy afternoon", Windy},
	}
	for _, tt := range tests {
		got, err := Classify(tt.desc)
		if err != nil {
			t.Errorf("Classify(%q) failed: %v", tt.desc, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.desc, got, tt.want)
		}
	}
}

// Compound descriptions classify by the fixed scan order: precipitation
// categories win over sky-cover ones.
func TestClassifyCompound(t *testing.T) {
	got, err := Classify("partly cloudy with showers")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != Rainy {
		t.Errorf("got %q, want %q", got, Rainy)
	}

	got, err = Classify("snow and fog")
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	if got != Snowy {
		t.Errorf("got %q, want %q", got, Snowy)
	}
}

func TestClassifyUnknown(t *testing.T) {
	for _, desc := range []string{"", "   ", "apocalyptic"} {
		_, err := Classify(desc)
		if !errors.Is(err, errors.ErrInvalidWeatherKind) {
			t.Errorf("Classify(%q): expected INVALID_WEATHER_KIND, got %v", desc, err)
		}
	}
}
