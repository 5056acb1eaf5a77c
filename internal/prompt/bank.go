package prompt

import "github.com/hpungsan/skymemo/internal/mood"

// bank is the static prompt template bank, keyed by mood. Moods outside this
// map (peaceful, introspective, dynamic) can appear in rankings but
// contribute no prompts; the generator skips them.
var bank = map[mood.Mood][]Template{
	mood.Reflective: {
		{mood.Reflective, "Today's {weather_desc} weather invites reflection. What emotions are sitting with you right now?"},
		{mood.Reflective, "The {condition} outside mirrors inner contemplation. What thoughts have been recurring lately?"},
		{mood.Reflective, "In this {weather_desc} moment, what aspects of your life deserve deeper attention?"},
		{mood.Reflective, "How does today's {condition} weather influence your perspective on recent events?"},
		{mood.Reflective, "What would you tell your past self about handling days like this {weather_desc} one?"},
	},
	mood.Energetic: {
		{mood.Energetic, "The {weather_desc} weather sparks energy! What goals are you excited to pursue?"},
		{mood.Energetic, "This {condition} day feels full of possibility. What would you do if you couldn't fail?"},
		{mood.Energetic, "With {weather_desc} conditions outside, what adventure or project calls to you?"},
		{mood.Energetic, "At {temperature} under a {condition} sky, what's one thing you'll accomplish today?"},
		{mood.Energetic, "This {weather_desc} energy is contagious. What brings you alive right now?"},
	},
	mood.Calm: {
		{mood.Calm, "The {weather_desc} atmosphere invites peace. What are you grateful for today?"},
		{mood.Calm, "In this {condition} stillness, what simple pleasures brought you joy?"},
		{mood.Calm, "Today's {weather_desc} weather suggests rest. How can you be kinder to yourself?"},
		{mood.Calm, "The gentle {condition} conditions create space for calm. What does your body need right now?"},
		{mood.Calm, "This {weather_desc} moment is perfect for appreciation. What went well today?"},
	},
	mood.Melancholic: {
		{mood.Melancholic, "The {weather_desc} weather holds space for sadness. What loss or change are you processing?"},
		{mood.Melancholic, "This {condition} day allows for gentle grief. What do you need to let go of?"},
		{mood.Melancholic, "In {weather_desc} weather like this, what memories surface for you?"},
		{mood.Melancholic, "The {condition} atmosphere validates difficult feelings. What hurts right now?"},
		{mood.Melancholic, "This {weather_desc} backdrop supports healing. What wisdom has pain taught you?"},
	},
	mood.Hopeful: {
		{mood.Hopeful, "Today's {weather_desc} weather whispers possibility. What new beginning excites you?"},
		{mood.Hopeful, "The {condition} conditions feel like a fresh start. What are you hopeful about?"},
		{mood.Hopeful, "This {weather_desc} day suggests transformation. What positive change do you sense coming?"},
		{mood.Hopeful, "With {condition} weather like this, what dream feels closer to reality?"},
		{mood.Hopeful, "The {weather_desc} atmosphere nurtures hope. What future version of yourself can you envision?"},
	},
	mood.Intense: {
		{mood.Intense, "Today's {weather_desc} weather matches inner intensity. What strong emotions need expression?"},
		{mood.Intense, "The {condition} conditions mirror passion. What are you fired up about?"},
		{mood.Intense, "This {weather_desc} energy demands attention. What truth needs to be spoken?"},
		{mood.Intense, "The powerful {condition} weather reflects big feelings. What's demanding to be felt?"},
		{mood.Intense, "In this {weather_desc} intensity, what bold action is calling you?"},
	},
	mood.Cozy: {
		{mood.Cozy, "The {weather_desc} weather invites coziness. What comforts are you savoring today?"},
		{mood.Cozy, "This {condition} day is perfect for nesting. What makes you feel safe and warm?"},
		{mood.Cozy, "It's {temperature} out there. What small pleasures warmed your heart today?"},
		{mood.Cozy, "The {condition} weather creates a cocoon. What are you protecting or nurturing?"},
		{mood.Cozy, "This {weather_desc} atmosphere invites softness. How can you pamper yourself today?"},
	},
	mood.Mysterious: {
		{mood.Mysterious, "The {weather_desc} weather blurs the edges of things. What question are you sitting with?"},
		{mood.Mysterious, "This {condition} day hides as much as it reveals. What in your life feels unclear right now?"},
		{mood.Mysterious, "In {weather_desc} conditions like these, what unknown are you ready to explore?"},
		{mood.Mysterious, "The {condition} outside invites wondering. What would you ask if you knew you'd get an answer?"},
		{mood.Mysterious, "This {weather_desc} atmosphere keeps its secrets. What are you not yet ready to say out loud?"},
	},
	mood.Balanced: {
		{mood.Balanced, "Today's {weather_desc} weather suggests equilibrium. What feels in harmony right now?"},
		{mood.Balanced, "The {condition} conditions mirror balance. Where are you finding your center?"},
		{mood.Balanced, "This {weather_desc} day invites moderation. What needs right-sizing in your life?"},
		{mood.Balanced, "The steady {condition} weather reflects stability. What foundations are you building?"},
		{mood.Balanced, "In this {weather_desc} balance, what opposing forces are you integrating?"},
	},
}

// BankMoods returns the moods that have templates, in priority order.
func BankMoods() []mood.Mood {
	moods := make([]mood.Mood, 0, len(bank))
	for _, m := range mood.All() {
		if _, ok := bank[m]; ok {
			moods = append(moods, m)
		}
	}
	return moods
}

// templatesFor returns the template list for a mood, or nil.
func templatesFor(m mood.Mood) []Template {
	return bank[m]
}
