// Package detector implements the emotion classifier boundary. The primary
// path sends the face image to an OpenAI-compatible vision model; without a
// configured endpoint a brightness/contrast heuristic stands in. Either way
// Detect never fails: errors come back inside the Detection result.
package detector

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/moodshop/moodshop/pkg/config"
	"github.com/moodshop/moodshop/pkg/domain"
)

// Detector classifies facial emotion from an image
type Detector struct {
	client *openai.Client // nil means heuristic mode
	cfg    config.DetectorConfig
}

// New creates a detector. Endpoint empty selects the built-in heuristic.
func New(cfg config.DetectorConfig) *Detector {
	if cfg.Endpoint == "" {
		log.Printf("[INFO] no detector endpoint configured, using heuristic emotion detection")
		return &Detector{cfg: cfg}
	}

	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.Endpoint
	return &Detector{client: openai.NewClientWithConfig(clientConfig), cfg: cfg}
}

const systemPrompt = `You are a facial emotion classifier. Analyze the face in the image and respond with a single JSON object:
{"emotion": "<label>", "confidence": <0..1>, "all_emotions": {"<label>": <0..1>, ...}}

Labels must come from: happy, sad, angry, surprise, fear, disgust, neutral.
"emotion" is the dominant label, "confidence" its probability, "all_emotions" the full distribution. Respond with JSON only, no prose.`

// Detect classifies the image. The result is never an error: failures are
// reported through Detection.Success=false with a reason, and a failed or
// low-confidence detection means no recommendations may be produced.
func (d *Detector) Detect(ctx context.Context, imageData []byte) domain.Detection {
	if len(imageData) == 0 {
		return domain.Detection{Error: "empty image"}
	}

	if d.client == nil {
		return d.heuristic(imageData)
	}

	det, err := d.detectVision(ctx, imageData)
	if err != nil {
		log.Printf("[WARN] vision detection failed: %v", err)
		return domain.Detection{Error: fmt.Sprintf("vision detection failed: %v", err)}
	}
	return det
}

// Meets reports whether a detection clears the configured confidence
// threshold. Below it the caller must not invoke the recommenders.
func (d *Detector) Meets(det domain.Detection) bool {
	return det.Success && det.Confidence >= d.cfg.ConfidenceThreshold
}

// Threshold returns the configured confidence threshold
func (d *Detector) Threshold() float64 {
	return d.cfg.ConfidenceThreshold
}

// detectVision sends the image to the vision model and parses its JSON reply
func (d *Detector) detectVision(ctx context.Context, imageData []byte) (domain.Detection, error) {
	mime := http.DetectContentType(imageData)
	dataURL := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(imageData))

	req := openai.ChatCompletionRequest{
		Model: d.cfg.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt,
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: "Classify the emotion of the face in this image.",
					},
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: dataURL, Detail: openai.ImageURLDetailLow},
					},
				},
			},
		},
	}

	// retry up to 3 times if the model returns invalid JSON
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		resp, err := d.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return domain.Detection{}, fmt.Errorf("vision request failed: %w", err)
		}
		if len(resp.Choices) == 0 {
			return domain.Detection{}, fmt.Errorf("no response from vision model")
		}

		det, err := parseResponse(resp.Choices[0].Message.Content)
		if err == nil {
			return det, nil
		}
		lastErr = err
	}
	return domain.Detection{}, fmt.Errorf("failed after 3 attempts: %w", lastErr)
}

// parseResponse extracts the detection JSON from the model reply
func parseResponse(content string) (domain.Detection, error) {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start == -1 || end <= start {
		return domain.Detection{}, fmt.Errorf("no json object found in response")
	}

	var parsed struct {
		Emotion     string             `json:"emotion"`
		Confidence  float64            `json:"confidence"`
		AllEmotions map[string]float64 `json:"all_emotions"`
	}
	if err := json.Unmarshal([]byte(content[start:end+1]), &parsed); err != nil {
		return domain.Detection{}, fmt.Errorf("failed to parse json: %w", err)
	}
	if parsed.Emotion == "" {
		return domain.Detection{}, fmt.Errorf("response has no emotion label")
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		return domain.Detection{}, fmt.Errorf("confidence %v out of range", parsed.Confidence)
	}

	return domain.Detection{
		Success:     true,
		Emotion:     domain.NormalizeEmotion(parsed.Emotion),
		Confidence:  parsed.Confidence,
		AllEmotions: parsed.AllEmotions,
	}, nil
}
