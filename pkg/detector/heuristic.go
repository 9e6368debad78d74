package detector

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"math"

	"github.com/moodshop/moodshop/pkg/domain"
)

var knownEmotions = []string{"happy", "sad", "angry", "surprise", "fear", "disgust", "neutral"}

// heuristic is the stand-in classifier used when no vision model is
// configured. It maps grayscale brightness and contrast to a coarse emotion,
// good enough for demos and for keeping the pipeline testable offline.
func (d *Detector) heuristic(imageData []byte) domain.Detection {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return domain.Detection{Error: fmt.Sprintf("decode image: %v", err)}
	}

	brightness, contrast := grayStats(img)

	var emotion string
	var confidence float64
	switch {
	case brightness > 150:
		emotion, confidence = "happy", 0.7
	case brightness < 80:
		emotion, confidence = "sad", 0.6
	case contrast > 50:
		emotion, confidence = "surprise", 0.5
	default:
		emotion, confidence = "neutral", 0.8
	}

	// mock distribution with a flat baseline and the dominant label raised
	all := make(map[string]float64, len(knownEmotions))
	for _, e := range knownEmotions {
		all[e] = 0.1
	}
	all[emotion] = confidence

	return domain.Detection{
		Success:     true,
		Emotion:     emotion,
		Confidence:  confidence,
		AllEmotions: all,
	}
}

// grayStats returns mean and standard deviation of the image luminance on
// the 0..255 scale
func grayStats(img image.Image) (mean, stddev float64) {
	bounds := img.Bounds()
	n := 0
	sum := 0.0
	sumSq := 0.0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// standard luma weights, 16-bit channels scaled down to 8-bit
			luma := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
			sum += luma
			sumSq += luma * luma
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}

	mean = sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance > 0 {
		stddev = math.Sqrt(variance)
	}
	return mean, stddev
}
