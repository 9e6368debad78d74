package config

import "strings"

// Vocabulary is the static emotion vocabulary: descriptor tags used for
// catalog ranking and search keywords used for playlist lookups. Loaded once
// at startup and read-only afterwards.
type Vocabulary struct {
	Emotions map[string][]string `yaml:"emotions" json:"emotions" jsonschema:"description=Emotion label to descriptor tags for product ranking"`
	Moods    map[string][]string `yaml:"moods" json:"moods" jsonschema:"description=Mood label to search keywords for playlist lookups"`
}

// genericMoodTerms is the fallback keyword set for unknown moods
var genericMoodTerms = []string{"music", "playlist", "songs"}

// DescriptorTags returns the descriptor tags for an emotion label,
// normalized for lookup. The second value reports whether the label is known.
func (v Vocabulary) DescriptorTags(emotion string) ([]string, bool) {
	tags, ok := v.Emotions[normalize(emotion)]
	return tags, ok
}

// SearchTerms returns the ordered search keywords for a mood label,
// falling back to generic music terms for unknown labels
func (v Vocabulary) SearchTerms(mood string) []string {
	if terms, ok := v.Moods[normalize(mood)]; ok {
		return terms
	}
	return genericMoodTerms
}

func normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// defaultEmotionTags maps each supported emotion to product descriptor tags
func defaultEmotionTags() map[string][]string {
	return map[string][]string{
		"happy":    {"entertainment", "social", "celebration", "joy", "fun", "colorful"},
		"sad":      {"comfort", "cozy", "self-care", "healing", "soft", "warm"},
		"angry":    {"stress-relief", "physical", "intense", "powerful", "bold"},
		"surprise": {"unique", "innovative", "exciting", "novel", "creative"},
		"fear":     {"safety", "security", "protective", "calming", "reassuring"},
		"disgust":  {"cleansing", "fresh", "pure", "minimal", "detox"},
		"neutral":  {"practical", "everyday", "basic", "functional", "versatile"},
	}
}

// defaultMoodKeywords maps each supported mood to playlist search keywords
func defaultMoodKeywords() map[string][]string {
	return map[string][]string{
		"happy":     {"happy", "upbeat", "positive", "cheerful", "joyful"},
		"sad":       {"sad", "melancholy", "emotional", "heartbreak", "blue"},
		"angry":     {"angry", "rage", "metal", "punk", "aggressive"},
		"surprised": {"energetic", "exciting", "surprise", "uplifting", "dynamic"},
		"fear":      {"calm", "relaxing", "soothing", "peaceful", "meditation"},
		"disgust":   {"alternative", "indie", "experimental", "unique", "different"},
		"neutral":   {"chill", "ambient", "focus", "study", "background"},
		"energetic": {"workout", "pump up", "energetic", "motivation", "power"},
		"relaxed":   {"chill", "lounge", "ambient", "relaxing", "calm"},
		"romantic":  {"love", "romantic", "valentine", "date night", "intimate"},
	}
}
