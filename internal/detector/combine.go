package detector

import (
	"sort"
	"time"

	"github.com/etkecc/lid/internal/model"
)

// methodWeight is one row of the trust table
type methodWeight struct {
	Method string
	Weight float64
}

// methodWeights is the fixed trust table, ordered by trust. The order doubles
// as the last tie-break between equally corroborated languages.
var methodWeights = []methodWeight{
	{model.MethodScript, 1.0},
	{model.MethodHTMLLang, 0.9},
	{model.MethodWords, 0.8},
	{model.MethodFrequency, 0.7},
	{model.MethodMetaLanguage, 0.6},
	{model.MethodOGLocale, 0.5},
	{model.MethodConsistency, 0.4},
	{model.MethodDomain, 0.3},
	{model.MethodGeographic, 0.2},
	{model.MethodBrowserLocale, 0.1},
}

func weightOf(method string) float64 {
	for _, mw := range methodWeights {
		if mw.Method == method {
			return mw.Weight
		}
	}
	return 0
}

// weightRank returns the position of the method in the trust table,
// lower is more trusted
func weightRank(method string) int {
	for i, mw := range methodWeights {
		if mw.Method == method {
			return i
		}
	}
	return len(methodWeights)
}

func clamp(confidence float64) float64 {
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}
	return confidence
}

type languageScore struct {
	language   string
	confidence float64
	methods    []string
	bestRank   int
}

// combine aggregates all strategy candidates into one verdict using the
// trust table. Ties are resolved by corroboration count first, then by the
// trust table position of the best contributing method. Evaluation order of
// the strategies never influences the outcome.
func combine(candidates []*model.DetectionResult, now time.Time) *model.DetectionResult {
	if len(candidates) == 0 {
		return &model.DetectionResult{
			Language:   model.LanguageAuto,
			Confidence: 0.1,
			Method:     model.MethodNone,
			Timestamp:  now,
		}
	}
	if len(candidates) == 1 {
		// weighted mean of a single value is the value itself,
		// keep the strategy's own method for provenance
		c := candidates[0]
		return &model.DetectionResult{
			Language:   c.Language,
			Confidence: clamp(c.Confidence),
			Method:     c.Method,
			Details:    c.Details,
			Timestamp:  now,
		}
	}

	grouped := map[string]*languageScore{}
	for _, c := range candidates {
		score, ok := grouped[c.Language]
		if !ok {
			score = &languageScore{language: c.Language, bestRank: len(methodWeights)}
			grouped[c.Language] = score
		}
		score.methods = append(score.methods, c.Method)
		if rank := weightRank(c.Method); rank < score.bestRank {
			score.bestRank = rank
		}
	}
	for lang, score := range grouped {
		var weighted, weights float64
		for _, c := range candidates {
			if c.Language != lang {
				continue
			}
			w := weightOf(c.Method)
			weighted += c.Confidence * w
			weights += w
		}
		if weights > 0 {
			score.confidence = clamp(weighted / weights)
		}
	}

	ranked := make([]*languageScore, 0, len(grouped))
	for _, score := range grouped {
		ranked = append(ranked, score)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].confidence != ranked[j].confidence {
			return ranked[i].confidence > ranked[j].confidence
		}
		if len(ranked[i].methods) != len(ranked[j].methods) {
			return len(ranked[i].methods) > len(ranked[j].methods)
		}
		if ranked[i].bestRank != ranked[j].bestRank {
			return ranked[i].bestRank < ranked[j].bestRank
		}
		return ranked[i].language < ranked[j].language
	})

	winner := ranked[0]
	details := map[string]any{"methods": winner.methods}
	if len(ranked) > 1 {
		alternatives := make([]*model.Alternative, 0, 3)
		for _, alt := range ranked[1:] {
			alternatives = append(alternatives, &model.Alternative{Language: alt.language, Confidence: alt.confidence})
			if len(alternatives) == 3 {
				break
			}
		}
		details["alternatives"] = alternatives
	}
	return &model.DetectionResult{
		Language:   winner.language,
		Confidence: winner.confidence,
		Method:     model.MethodCombined,
		Details:    details,
		Timestamp:  now,
	}
}
