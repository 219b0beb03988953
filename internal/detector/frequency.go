package detector

import (
	"math"
	"strings"
	"time"

	"github.com/etkecc/lid/internal/model"
)

const (
	minFrequencySample = 100
	minSharedLetters   = 4
	// frequency fingerprints are noisy, so this method must never outrank
	// script or strong word evidence
	maxFrequencyConfidence = 0.7
)

// matchFrequency compares the observed a-z letter distribution of the sample
// against each language fingerprint. Abstains on short samples, where the
// statistics are unstable.
func (d *Detector) matchFrequency(sample string, now time.Time) *model.DetectionResult {
	runes := []rune(sample)
	if len(runes) < minFrequencySample {
		return nil
	}

	observed := make(map[rune]float64, 26)
	total := 0
	for _, r := range strings.ToLower(sample) {
		if r >= 'a' && r <= 'z' {
			observed[r]++
			total++
		}
	}
	if total == 0 {
		return nil
	}
	for r := range observed {
		observed[r] /= float64(total)
	}

	var bestLang string
	var bestScore float64
	for lang, expected := range expectedFrequencies {
		var sum float64
		shared := 0
		for letter, exp := range expected {
			obs, ok := observed[letter]
			if !ok {
				continue
			}
			shared++
			sum += 1 - math.Abs(obs-exp)/exp
		}
		if shared < minSharedLetters {
			continue
		}
		if avg := sum / float64(shared); avg > bestScore {
			bestLang = lang
			bestScore = avg
		}
	}

	if bestLang == "" || bestScore <= d.opts.FrequencyFloor {
		return nil
	}
	return &model.DetectionResult{
		Language:   bestLang,
		Confidence: clamp(min(maxFrequencyConfidence, bestScore)),
		Method:     model.MethodFrequency,
		Details:    map[string]any{"score": bestScore, "letters": total},
		Timestamp:  now,
	}
}
