package mood

import (
	"fmt"
	"sort"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/weather"
)

// Temperature thresholds for the mood modifier, in Celsius. Below
// ColdThresholdC the ranking leans toward comfort moods; at or above
// WarmThresholdC it leans toward vibrant ones. The exact values are a
// project decision aligned with the display temperature bands.
const (
	ColdThresholdC = 10.0
	WarmThresholdC = 25.0
)

// PrecipitationBoost is the fixed weight increment applied to introspective
// moods when precipitation is observed.
const PrecipitationBoost = 0.75

// Base weights for condition-derived moods, in table order.
var baseWeights = []float64{3.0, 2.0, 1.5}

// conditionMoods is the static base ranking keyed by condition. Every
// condition maps to at least two candidate moods; the first is the base
// primary before modifiers apply.
var conditionMoods = map[weather.Condition][]Mood{
	weather.Sunny:        {Energetic, Hopeful, Calm},
	weather.PartlyCloudy: {Calm, Reflective, Balanced},
	weather.Cloudy:       {Reflective, Calm, Introspective},
	weather.Rainy:        {Reflective, Melancholic, Cozy},
	weather.Stormy:       {Intense, Energetic, Dynamic},
	weather.Snowy:        {Calm, Peaceful, Cozy},
	weather.Foggy:        {Mysterious, Reflective, Introspective},
	weather.Windy:        {Energetic, Dynamic, Balanced},
}

// RankedMood pairs a mood with its computed weight.
type RankedMood struct {
	Mood   Mood    `json:"mood"`
	Weight float64 `json:"weight"`
}

// Ranking is a non-empty ordered sequence of (mood, weight) pairs, heaviest
// first. The first element is the primary mood.
type Ranking []RankedMood

// Primary returns the designated primary mood.
func (r Ranking) Primary() Mood {
	return r[0].Mood
}

// Moods returns the moods in ranking order.
func (r Ranking) Moods() []Mood {
	out := make([]Mood, len(r))
	for i, rm := range r {
		out[i] = rm.Mood
	}
	return out
}

// Contains reports whether m appears anywhere in the ranking.
func (r Ranking) Contains(m Mood) bool {
	for _, rm := range r {
		if rm.Mood == m {
			return true
		}
	}
	return false
}

// Rank computes the mood ranking for a weather observation.
//
// The base ranking comes from the condition table. Temperature then acts as
// a modifier: cold boosts/adds cozy and introspective, warm boosts/adds
// energetic and hopeful. Precipitation boosts/adds reflective and
// melancholic by a fixed increment. Modifiers change weights but never
// remove a condition-derived mood. The result is fully deterministic: equal
// weights are broken by the fixed priority order over the mood enum.
func Rank(obs weather.Observation) (Ranking, error) {
	base, ok := conditionMoods[obs.Condition]
	if !ok {
		return nil, errors.NewInvalidWeatherKind(string(obs.Condition))
	}

	weights := make(map[Mood]float64, len(base)+4)
	for i, m := range base {
		w := baseWeights[len(baseWeights)-1]
		if i < len(baseWeights) {
			w = baseWeights[i]
		}
		weights[m] = w
	}

	boost := func(m Mood, inc float64) {
		weights[m] += inc
	}

	switch {
	case obs.TemperatureC < ColdThresholdC:
		boost(Cozy, 1.0)
		boost(Introspective, 0.5)
	case obs.TemperatureC >= WarmThresholdC:
		boost(Energetic, 1.0)
		boost(Hopeful, 0.5)
	}

	if obs.Precipitation {
		boost(Reflective, PrecipitationBoost)
		boost(Melancholic, PrecipitationBoost)
	}

	ranking := make(Ranking, 0, len(weights))
	for m, w := range weights {
		ranking = append(ranking, RankedMood{Mood: m, Weight: w})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Weight != ranking[j].Weight {
			return ranking[i].Weight > ranking[j].Weight
		}
		return ranking[i].Mood.Priority() < ranking[j].Mood.Priority()
	})

	return ranking, nil
}

// ValidateTable checks the condition table for completeness: every
// enumerated condition must map to at least two valid moods. Called once at
// startup so malformed configuration fails fast.
func ValidateTable() error {
	for _, cond := range weather.Conditions {
		moods, ok := conditionMoods[cond]
		if !ok {
			return fmt.Errorf("mood table: condition %q has no mapping", cond)
		}
		if len(moods) < 2 {
			return fmt.Errorf("mood table: condition %q maps to fewer than 2 moods", cond)
		}
		for _, m := range moods {
			if !m.Valid() {
				return fmt.Errorf("mood table: condition %q maps to unknown mood %q", cond, m)
			}
		}
	}
	return nil
}
