package weather

import (
	"testing"
	"time"

	"github.com/hpungsan/skymemo/internal/errors"
)

func TestParseCondition(t *testing.T) {
	for _, c := range Conditions {
		got, err := ParseCondition(string(c))
		if err != nil {
			t.Errorf("ParseCondition(%q) failed: %v", c, err)
		}
		if got != c {
			t.Errorf("ParseCondition(%q) = %q", c, got)
		}
	}
}

func TestParseConditionNormalizes(t *testing.T) {
	got, err := ParseCondition("  Partly_Cloudy ")
	if err != nil {
		t.Fatalf("ParseCondition failed: %v", err)
	}
	if got != PartlyCloudy {
		t.Errorf("got %q, want %q", got, PartlyCloudy)
	}
}

func TestParseConditionUnknown(t *testing.T) {
	_, err := ParseCondition("volcanic")
	if !errors.Is(err, errors.ErrInvalidWeatherKind) {
		t.Fatalf("expected INVALID_WEATHER_KIND, got %v", err)
	}
}

func TestConditionLabel(t *testing.T) {
	if got := PartlyCloudy.Label(); got != "partly cloudy" {
		t.Errorf("Label = %q, want %q", got, "partly cloudy")
	}
	if got := Sunny.Label(); got != "sunny" {
		t.Errorf("Label = %q, want %q", got, "sunny")
	}
}

func TestObservationValidate(t *testing.T) {
	obs := Observation{TemperatureC: 10, Condition: Rainy, Timestamp: time.Now()}
	if err := obs.Validate(); err != nil {
		t.Errorf("valid observation rejected: %v", err)
	}

	obs.Condition = "hurricane"
	if err := obs.Validate(); !errors.Is(err, errors.ErrInvalidWeatherKind) {
		t.Errorf("expected INVALID_WEATHER_KIND, got %v", err)
	}
}

func TestTemperatureBand(t *testing.T) {
	tests := []struct {
		temp float64
		want Band
	}{
		{-5, BandVeryCold},
		{9.9, BandVeryCold},
		{10, BandCold},
		{15, BandCool},
		{20, BandMild},
		{24.9, BandMild},
		{25, BandWarm},
		{30, BandHot},
		{35, BandVeryHot},
		{42, BandVeryHot},
	}
	for _, tt := range tests {
		if got := TemperatureBand(tt.temp); got != tt.want {
			t.Errorf("TemperatureBand(%v) = %q, want %q", tt.temp, got, tt.want)
		}
	}
}

func TestFormatTemperature(t *testing.T) {
	if got := FormatTemperature(2, "celsius"); got != "2.0°C" {
		t.Errorf("celsius: got %q", got)
	}
	if got := FormatTemperature(0, "fahrenheit"); got != "32.0°F" {
		t.Errorf("fahrenheit: got %q", got)
	}
	// Unknown unit falls back to celsius.
	if got := FormatTemperature(2, "kelvin"); got != "2.0°C" {
		t.Errorf("fallback: got %q", got)
	}
}

func TestDescribe(t *testing.T) {
	obs := Observation{TemperatureC: 2, Condition: Rainy, Precipitation: true}
	want := "cold rainy (2.0°C) with precipitation"
	if got := Describe(obs, "celsius"); got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}

	obs = Observation{TemperatureC: 27, Condition: PartlyCloudy}
	want = "warm partly cloudy (27.0°C)"
	if got := Describe(obs, "celsius"); got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}
