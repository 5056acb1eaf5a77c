package weather

import (
	"strings"

	"github.com/hpungsan/skymemo/internal/errors"
)

// classificationOrder fixes the keyword scan order so that compound
// descriptions ("partly cloudy with showers") classify deterministically.
// More specific categories are checked before broader ones.
var classificationOrder = []Condition{
	Stormy, Snowy, Rainy, Foggy, PartlyCloudy, Cloudy, Windy, Sunny,
}

// keywords maps each condition to the description keywords that select it.
var keywords = map[Condition][]string{
	Sunny:        {"sun", "sunny", "clear", "bright"},
	PartlyCloudy: {"partly cloudy", "partly sunny", "scattered clouds", "few clouds"},
	Cloudy:       {"cloudy", "overcast", "grey", "gray", "clouds"},
	Rainy:        {"rain", "rainy", "drizzle", "shower", "precipitation"},
	Stormy:       {"storm", "thunder", "lightning", "severe"},
	Snowy:        {"snow", "snowy", "flurries", "blizzard", "sleet"},
	Foggy:        {"fog", "foggy", "mist", "misty", "haze"},
	Windy:        {"wind", "windy", "breezy", "gusty"},
}

// Classify maps a free-text weather description (manual input or a remote
// provider's condition string) onto the closed condition enum. Descriptions
// matching no keyword fail with INVALID_WEATHER_KIND rather than defaulting.
func Classify(description string) (Condition, error) {
	desc := strings.ToLower(strings.TrimSpace(description))
	if desc == "" {
		return "", errors.NewInvalidWeatherKind(description)
	}

	// An exact enum value always wins.
	if c := Condition(strings.ReplaceAll(desc, " ", "_")); c.Valid() {
		return c, nil
	}

	for _, cond := range classificationOrder {
		for _, kw := range keywords[cond] {
			if strings.Contains(desc, kw) {
				return cond, nil
			}
		}
	}

	return "", errors.NewInvalidWeatherKind(description)
}
