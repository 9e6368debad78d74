package domain

// Detection is the result of the emotion classifier boundary.
// Success=false means no recommendation may be produced for this input.
type Detection struct {
	Success     bool               `json:"success"`
	Emotion     string             `json:"emotion,omitempty"`
	Confidence  float64            `json:"confidence"`
	AllEmotions map[string]float64 `json:"all_emotions,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// ConfidenceLevel maps a confidence value to a human-readable band
func ConfidenceLevel(confidence float64) string {
	switch {
	case confidence >= 0.9:
		return "Very High"
	case confidence >= 0.7:
		return "High"
	case confidence >= 0.5:
		return "Medium"
	case confidence >= 0.3:
		return "Low"
	default:
		return "Very Low"
	}
}

// EmotionEmoji returns a display emoji for a detected emotion
func EmotionEmoji(emotion string) string {
	emojis := map[string]string{
		"happy":    "😊",
		"sad":      "😢",
		"angry":    "😠",
		"surprise": "😲",
		"fear":     "😨",
		"disgust":  "🤢",
		"neutral":  "😐",
	}
	if e, ok := emojis[normalizeLabel(emotion)]; ok {
		return e
	}
	return "🤔"
}
