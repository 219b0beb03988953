package detector

import (
	"time"

	"github.com/etkecc/lid/internal/model"
)

// matchScripts evaluates every script pattern against the sample and returns
// a candidate for each language whose range matched often enough. Conflicts
// (e.g. kanji matching both zh and ja) are left for the combiner.
func matchScripts(sample string, now time.Time) []*model.DetectionResult {
	runes := []rune(sample)
	if len(runes) == 0 {
		return nil
	}

	var results []*model.DetectionResult
	for _, pattern := range scriptPatterns {
		matches := 0
		for _, r := range runes {
			for _, rr := range pattern.Ranges {
				if r >= rr.Lo && r <= rr.Hi {
					matches++
					break
				}
			}
		}
		if matches < pattern.MinMatches {
			continue
		}
		confidence := clamp(min(pattern.BaseConfidence, float64(matches)/float64(len(runes))*10))
		results = append(results, &model.DetectionResult{
			Language:   pattern.Language,
			Confidence: confidence,
			Method:     model.MethodScript,
			Details:    map[string]any{"matches": matches, "sample_length": len(runes)},
			Timestamp:  now,
		})
	}
	return results
}
