package prompt

import (
	"fmt"
	"strings"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// resolvableSlots is the full set of slots derivable from an observation.
var resolvableSlots = map[string]bool{
	SlotWeatherDesc: true,
	SlotCondition:   true,
	SlotTemperature: true,
}

// CheckBank validates the template bank. It is the offline consistency check
// that keeps UNRESOLVABLE_SLOT away from live prompt generation: every
// template must belong to a known mood, carry non-empty text, and reference
// only slots resolvable from a weather observation. It also verifies that
// every condition's ranking can yield at least MinPrompts prompts, so
// generation never comes up short at runtime.
func CheckBank() error {
	for m, templates := range bank {
		if !m.Valid() {
			return fmt.Errorf("prompt bank: unknown mood %q", m)
		}
		if len(templates) == 0 {
			return fmt.Errorf("prompt bank: mood %q has no templates", m)
		}
		for i, t := range templates {
			if t.Mood != m {
				return fmt.Errorf("prompt bank: template %d under mood %q is tagged %q", i, m, t.Mood)
			}
			if strings.TrimSpace(t.Text) == "" {
				return fmt.Errorf("prompt bank: mood %q template %d has empty text", m, i)
			}
			for _, slot := range t.Slots() {
				if !resolvableSlots[slot] {
					return errors.NewUnresolvableSlot(string(m), slot)
				}
			}
		}
	}

	// Every condition, under any modifier combination, must still produce a
	// full prompt set. A dry mild observation is the worst case: modifiers
	// only ever add prompt-bearing moods.
	for _, cond := range weather.Conditions {
		obs := weather.Observation{TemperatureC: 18, Condition: cond}
		ranking, err := mood.Rank(obs)
		if err != nil {
			return err
		}
		available := 0
		for _, m := range ranking.Moods() {
			available += len(templatesFor(m))
		}
		if len(templatesFor(ranking.Primary())) == 0 {
			return fmt.Errorf("prompt bank: condition %q primary mood %q has no templates", cond, ranking.Primary())
		}
		if available < MinPrompts {
			return fmt.Errorf("prompt bank: condition %q can only yield %d prompts, need %d", cond, available, MinPrompts)
		}
	}

	return nil
}
