package prompt

import (
	"regexp"
	"strings"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// Slot names resolvable from a weather observation. Templates may reference
// no other slots; the startup bank check enforces this.
const (
	SlotWeatherDesc = "weather_desc" // atmosphere description, e.g. "introspective and cozy"
	SlotCondition   = "condition"    // human-readable condition name, e.g. "partly cloudy"
	SlotTemperature = "temperature"  // formatted temperature with unit, e.g. "2.0°C"
)

// Template is a static prompt template for a mood. Text contains {slot}
// placeholders. Templates are configuration: never mutated at runtime.
type Template struct {
	Mood mood.Mood
	Text string
}

// slotPattern matches {slot_name} placeholders.
var slotPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

// Slots returns the set of slot names referenced by the template text.
func (t Template) Slots() []string {
	matches := slotPattern.FindAllStringSubmatch(t.Text, -1)
	seen := make(map[string]bool, len(matches))
	slots := make([]string, 0, len(matches))
	for _, m := range matches {
		if !seen[m[1]] {
			seen[m[1]] = true
			slots = append(slots, m[1])
		}
	}
	return slots
}

// GeneratedPrompt is a fully substituted prompt tagged with its source mood.
// Produced fresh per generation call; never persisted independently of an
// entry.
type GeneratedPrompt struct {
	Text         string    `json:"text"`
	Mood         mood.Mood `json:"mood"`
	IsPrimary    bool      `json:"is_primary"`
	MoodNote     string    `json:"mood_note"`
	WritingStyle string    `json:"writing_style"`
}

// slotValues builds the slot resolution map from an observation. All values
// derive from the observation alone; there is no hidden state.
func slotValues(obs weather.Observation, unit string) map[string]string {
	return map[string]string{
		SlotWeatherDesc: obs.Condition.Description(),
		SlotCondition:   obs.Condition.Label(),
		SlotTemperature: weather.FormatTemperature(obs.TemperatureC, unit),
	}
}

// substitute resolves every slot in the template from the observation.
// A slot outside the resolvable set fails with UNRESOLVABLE_SLOT.
func substitute(t Template, values map[string]string) (string, error) {
	var failed *errors.SkyError
	text := slotPattern.ReplaceAllStringFunc(t.Text, func(match string) string {
		name := strings.Trim(match, "{}")
		v, ok := values[name]
		if !ok {
			if failed == nil {
				failed = errors.NewUnresolvableSlot(string(t.Mood), name)
			}
			return match
		}
		return v
	})
	if failed != nil {
		return "", failed
	}
	return text, nil
}
