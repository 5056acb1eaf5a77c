package prompt

import (
	"fmt"

	"github.com/hpungsan/skymemo/internal/errors"
	"github.com/hpungsan/skymemo/internal/mood"
	"github.com/hpungsan/skymemo/internal/weather"
)

// Prompt count bounds per generation call.
const (
	MinPrompts = 3
	MaxPrompts = 5
)

// Generator produces concrete journaling prompts from a weather observation
// and a mood ranking. Template selection uses a per-mood rotation cursor
// rather than randomness, so repeated generation is reproducible: a fresh
// generator given identical input always yields identical prompts, and
// successive calls rotate through the bank deterministically.
type Generator struct {
	unit    string // temperature unit for the temperature slot
	cursors map[mood.Mood]int
}

// NewGenerator creates a Generator rendering temperatures in the given unit
// ("celsius" or "fahrenheit").
func NewGenerator(unit string) *Generator {
	return &Generator{
		unit:    unit,
		cursors: make(map[mood.Mood]int),
	}
}

// Generate produces between MinPrompts and MaxPrompts prompts for the
// observation. Each of the top ranked moods that has templates contributes
// one prompt; when those run short the primary mood tops the list up. The
// first prompt drawn from the primary mood, and only that prompt, carries
// IsPrimary. No template repeats within a call, and no prompt text contains
// a residual slot marker.
func (g *Generator) Generate(obs weather.Observation, ranking mood.Ranking) ([]GeneratedPrompt, error) {
	if err := obs.Validate(); err != nil {
		return nil, err
	}
	if len(ranking) == 0 {
		return nil, errors.NewInvalidRequest("mood ranking must not be empty")
	}

	values := slotValues(obs, g.unit)
	primary := ranking.Primary()

	prompts := make([]GeneratedPrompt, 0, MaxPrompts)
	used := make(map[string]bool, MaxPrompts)
	primaryMarked := false

	appendPrompt := func(m mood.Mood) (bool, error) {
		t, ok := g.nextTemplate(m, used)
		if !ok {
			return false, nil
		}
		text, err := substitute(t, values)
		if err != nil {
			return false, err
		}
		used[t.Text] = true

		isPrimary := m == primary && !primaryMarked
		if isPrimary {
			primaryMarked = true
		}
		prompts = append(prompts, GeneratedPrompt{
			Text:         text,
			Mood:         m,
			IsPrimary:    isPrimary,
			MoodNote:     m.Description(),
			WritingStyle: m.WritingStyle(),
		})
		return true, nil
	}

	// One prompt per ranked mood, ranking order, until the cap.
	for _, m := range ranking.Moods() {
		if len(prompts) >= MaxPrompts {
			break
		}
		if _, err := appendPrompt(m); err != nil {
			return nil, err
		}
	}

	// Top up from the primary mood when other moods were scarce.
	for len(prompts) < MinPrompts {
		added, err := appendPrompt(primary)
		if err != nil {
			return nil, err
		}
		if !added {
			break
		}
	}

	if len(prompts) < MinPrompts {
		// Only possible with a pathological ranking of template-less moods;
		// the bank check guarantees the shipped tables cannot reach this.
		return nil, errors.NewInternal(fmt.Errorf("generated only %d prompts, need at least %d", len(prompts), MinPrompts))
	}

	return prompts, nil
}

// nextTemplate picks the next unused template for a mood, advancing the
// mood's rotation cursor past every template it inspects.
func (g *Generator) nextTemplate(m mood.Mood, used map[string]bool) (Template, bool) {
	templates := templatesFor(m)
	if len(templates) == 0 {
		return Template{}, false
	}

	for range templates {
		t := templates[g.cursors[m]%len(templates)]
		g.cursors[m]++
		if !used[t.Text] {
			return t, true
		}
	}
	return Template{}, false
}
