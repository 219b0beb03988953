package detector

import (
	"strings"
	"time"
	"unicode"

	"github.com/etkecc/lid/internal/model"
)

const minWordTokens = 5

// tokenize splits the sample into lower-cased word tokens
func tokenize(sample string) []string {
	return strings.FieldsFunc(strings.ToLower(sample), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
}

// matchWords scores the sample against each language word list and returns
// the best-scoring language, or nil when below the noise floor.
func (d *Detector) matchWords(sample string, now time.Time) *model.DetectionResult {
	tokens := tokenize(sample)
	if len(tokens) < minWordTokens {
		return nil
	}

	var bestLang string
	var bestScore float64
	var bestBase float64
	var bestCommon, bestDistinctive int
	for _, pattern := range wordPatterns {
		common, distinctive := 0, 0
		for _, token := range tokens {
			if _, ok := pattern.Distinctive[token]; ok {
				distinctive++
				continue
			}
			if _, ok := pattern.Common[token]; ok {
				common++
			}
		}
		score := float64(common+2*distinctive) / float64(len(tokens))
		if score > bestScore {
			bestLang = pattern.Language
			bestScore = score
			bestBase = pattern.BaseConfidence
			bestCommon, bestDistinctive = common, distinctive
		}
	}

	if bestScore <= d.opts.WordNoiseFloor {
		return nil
	}
	return &model.DetectionResult{
		Language:   bestLang,
		Confidence: clamp(min(bestBase, bestScore*3)),
		Method:     model.MethodWords,
		Details: map[string]any{
			"score":       bestScore,
			"common":      bestCommon,
			"distinctive": bestDistinctive,
			"tokens":      len(tokens),
		},
		Timestamp: now,
	}
}
