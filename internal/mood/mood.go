package mood

// Mood is one tag from a fixed closed enumeration representing an emotional
// category assignable to a prompt or journal entry. The set is not
// user-extensible.
type Mood string

const (
	Reflective    Mood = "reflective"
	Energetic     Mood = "energetic"
	Calm          Mood = "calm"
	Melancholic   Mood = "melancholic"
	Hopeful       Mood = "hopeful"
	Intense       Mood = "intense"
	Cozy          Mood = "cozy"
	Balanced      Mood = "balanced"
	Peaceful      Mood = "peaceful"
	Mysterious    Mood = "mysterious"
	Introspective Mood = "introspective"
	Dynamic       Mood = "dynamic"
)

// priorityOrder is the fixed total order over the mood enum used to break
// weight ties. Lower index wins. The order is a project decision (the
// original source never documented one) and must stay stable: changing it
// changes which mood becomes primary on ties.
var priorityOrder = []Mood{
	Reflective, Energetic, Calm, Melancholic, Hopeful, Intense,
	Cozy, Balanced, Peaceful, Mysterious, Introspective, Dynamic,
}

var priorityIndex = buildPriorityIndex()

func buildPriorityIndex() map[Mood]int {
	idx := make(map[Mood]int, len(priorityOrder))
	for i, m := range priorityOrder {
		idx[m] = i
	}
	return idx
}

// All returns every mood in priority order.
func All() []Mood {
	out := make([]Mood, len(priorityOrder))
	copy(out, priorityOrder)
	return out
}

// Valid reports whether m is a member of the closed mood set.
func (m Mood) Valid() bool {
	_, ok := priorityIndex[m]
	return ok
}

// Priority returns the tie-break rank of m (lower wins). Unknown moods rank
// after all known ones.
func (m Mood) Priority() int {
	if i, ok := priorityIndex[m]; ok {
		return i
	}
	return len(priorityOrder)
}

// descriptions explains what each mood represents, shown next to prompts.
var descriptions = map[Mood]string{
	Reflective:    "Deep thinking, contemplation, looking inward",
	Energetic:     "Active, motivated, full of possibilities",
	Calm:          "Peaceful, centered, tranquil",
	Melancholic:   "Processing sadness, gentle grief, introspection",
	Hopeful:       "Optimistic, forward-looking, expecting positive change",
	Intense:       "Strong emotions, passion, powerful feelings",
	Cozy:          "Comfortable, warm, seeking comfort and safety",
	Balanced:      "Harmonious, stable, equilibrium",
	Peaceful:      "Serene, quiet, undisturbed",
	Mysterious:    "Unclear, questioning, exploring the unknown",
	Introspective: "Self-examining, thoughtful, analytical",
	Dynamic:       "Changing, active, in motion",
}

// Description returns a short explanation of the mood.
func (m Mood) Description() string {
	if d, ok := descriptions[m]; ok {
		return d
	}
	return "A unique emotional state"
}

// writingStyles suggests how to approach writing in each mood.
var writingStyles = map[Mood]string{
	Reflective:  "Take your time. Write slowly and thoughtfully.",
	Energetic:   "Let your thoughts flow freely. Write with excitement!",
	Calm:        "Breathe and write gently. No rush.",
	Melancholic: "Be kind to yourself. Write without judgment.",
	Hopeful:     "Dream on paper. Write about possibilities.",
	Intense:     "Don't hold back. Express what you truly feel.",
	Cozy:        "Get comfortable. Write as if talking to a friend.",
	Balanced:    "Find your rhythm. Write with steady awareness.",
}

// WritingStyle returns a writing-style suggestion for the mood.
func (m Mood) WritingStyle() string {
	if s, ok := writingStyles[m]; ok {
		return s
	}
	return "Write authentically from your current state."
}
