package domain

import "strings"

// Record is a single user feedback event, append-only once written
type Record struct {
	Timestamp          string  `json:"timestamp"`
	DetectedEmotion    string  `json:"detected_emotion"`
	Confidence         float64 `json:"confidence"`
	Rating             int     `json:"rating"`
	FeedbackText       string  `json:"feedback_text"`
	NumRecommendations int     `json:"num_recommendations"`
}

// ConfidenceStats aggregates confidence values over feedback records
type ConfidenceStats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Summary aggregates the feedback log
type Summary struct {
	TotalFeedback       int             `json:"total_feedback"`
	AverageRating       float64         `json:"average_rating"`
	EmotionDistribution map[string]int  `json:"emotion_distribution"`
	ConfidenceStats     ConfidenceStats `json:"confidence_stats"`
}

// normalizeLabel lower-cases and trims an emotion label for matching
func normalizeLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// NormalizeEmotion lower-cases and trims an emotion label for matching
func NormalizeEmotion(label string) string { return normalizeLabel(label) }
