package weather

import (
	"fmt"
	"strings"
	"time"

	"github.com/hpungsan/skymemo/internal/errors"
)

// Condition is a standardized weather condition. The set is closed: anything
// outside it fails ParseCondition with INVALID_WEATHER_KIND.
type Condition string

const (
	Sunny        Condition = "sunny"
	PartlyCloudy Condition = "partly_cloudy"
	Cloudy       Condition = "cloudy"
	Rainy        Condition = "rainy"
	Stormy       Condition = "stormy"
	Snowy        Condition = "snowy"
	Foggy        Condition = "foggy"
	Windy        Condition = "windy"
)

// Conditions lists all valid conditions in canonical order.
var Conditions = []Condition{
	Sunny, PartlyCloudy, Cloudy, Rainy, Stormy, Snowy, Foggy, Windy,
}

// descriptions gives each condition a short atmosphere description used by
// the prompt slot resolver.
var descriptions = map[Condition]string{
	Sunny:        "bright and uplifting",
	PartlyCloudy: "mixed and transitional",
	Cloudy:       "contemplative and soft",
	Rainy:        "introspective and cozy",
	Stormy:       "powerful and dramatic",
	Snowy:        "serene and hushed",
	Foggy:        "unclear and mysterious",
	Windy:        "dynamic and changeable",
}

// ParseCondition validates a condition string against the closed enum.
func ParseCondition(s string) (Condition, error) {
	c := Condition(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := descriptions[c]; !ok {
		return "", errors.NewInvalidWeatherKind(s)
	}
	return c, nil
}

// Valid reports whether c is one of the enumerated conditions.
func (c Condition) Valid() bool {
	_, ok := descriptions[c]
	return ok
}

// Label returns the human-readable condition name ("partly cloudy").
func (c Condition) Label() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// Description returns the atmosphere description for the condition.
// Empty for unknown conditions; callers validate first.
func (c Condition) Description() string {
	return descriptions[c]
}

// Observation is a single weather observation. Immutable once created;
// produced by manual entry or the fetch collaborator.
type Observation struct {
	TemperatureC  float64   `json:"temperature"`
	Condition     Condition `json:"condition"`
	Precipitation bool      `json:"precipitation"`
	Timestamp     time.Time `json:"timestamp"`
}

// Validate checks that the observation carries a recognized condition.
func (o Observation) Validate() error {
	if !o.Condition.Valid() {
		return errors.NewInvalidWeatherKind(string(o.Condition))
	}
	return nil
}

// Band is a descriptive temperature category used for display.
type Band string

const (
	BandVeryCold Band = "very_cold"
	BandCold     Band = "cold"
	BandCool     Band = "cool"
	BandMild     Band = "mild"
	BandWarm     Band = "warm"
	BandHot      Band = "hot"
	BandVeryHot  Band = "very_hot"
)

// TemperatureBand classifies a Celsius temperature into a band.
// Thresholds are lower bounds: a band applies from its threshold up to the next.
func TemperatureBand(c float64) Band {
	switch {
	case c >= 35:
		return BandVeryHot
	case c >= 30:
		return BandHot
	case c >= 25:
		return BandWarm
	case c >= 20:
		return BandMild
	case c >= 15:
		return BandCool
	case c >= 10:
		return BandCold
	default:
		return BandVeryCold
	}
}

// FormatTemperature renders a Celsius temperature in the requested unit.
// Unit is "celsius" or "fahrenheit"; anything else falls back to celsius.
func FormatTemperature(c float64, unit string) string {
	if strings.EqualFold(unit, "fahrenheit") {
		return fmt.Sprintf("%.1f°F", c*9/5+32)
	}
	return fmt.Sprintf("%.1f°C", c)
}

// Describe builds a one-line natural description of an observation,
// e.g. "cold rainy (2.0°C) with precipitation".
func Describe(o Observation, unit string) string {
	var tempDesc string
	switch {
	case o.TemperatureC < 0:
		tempDesc = "freezing"
	case o.TemperatureC < 10:
		tempDesc = "cold"
	case o.TemperatureC < 20:
		tempDesc = "cool"
	case o.TemperatureC < 25:
		tempDesc = "pleasant"
	case o.TemperatureC < 30:
		tempDesc = "warm"
	default:
		tempDesc = "hot"
	}

	desc := fmt.Sprintf("%s %s (%s)", tempDesc, o.Condition.Label(), FormatTemperature(o.TemperatureC, unit))
	if o.Precipitation {
		desc += " with precipitation"
	}
	return desc
}
