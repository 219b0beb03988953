package detector

import (
	"strings"
	"time"

	"github.com/etkecc/lid/internal/model"
)

const (
	domainConfidence     = 0.3
	geographicConfidence = 0.2
	historyConfidence    = 0.4
	historyShare         = 0.6
	historyMinConfidence = 0.5
)

// matchDomain maps the page domain's TLD to a language
func matchDomain(domain string, now time.Time) *model.DetectionResult {
	if domain == "" {
		return nil
	}
	domain = strings.ToLower(strings.TrimSuffix(domain, "."))
	tld := domain
	if idx := strings.LastIndex(domain, "."); idx >= 0 {
		tld = domain[idx+1:]
	}
	lang, ok := domainHints[tld]
	if !ok || lang == "multi" {
		return nil
	}
	return &model.DetectionResult{
		Language:   lang,
		Confidence: domainConfidence,
		Method:     model.MethodDomain,
		Details:    map[string]any{"domain": domain, "tld": tld},
		Timestamp:  now,
	}
}

// matchTimezone maps an IANA timezone to its first candidate language,
// falling back from the exact zone name to the region prefix.
func matchTimezone(timezone string, now time.Time) *model.DetectionResult {
	if timezone == "" {
		return nil
	}
	candidates, ok := timezoneHints[timezone]
	if !ok {
		region, _, found := strings.Cut(timezone, "/")
		if !found {
			return nil
		}
		if candidates, ok = timezoneHints[region]; !ok {
			return nil
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return &model.DetectionResult{
		Language:   candidates[0],
		Confidence: geographicConfidence,
		Method:     model.MethodGeographic,
		Details:    map[string]any{"timezone": timezone, "candidates": candidates},
		Timestamp:  now,
	}
}

// matchHistory emits a consistency hint when one language dominates the
// caller-supplied previous verdicts. The slice is read-only here - the ring
// buffer is owned by the caller.
func matchHistory(previous []*model.DetectionResult, now time.Time) *model.DetectionResult {
	if len(previous) == 0 {
		return nil
	}
	counts := map[string]int{}
	confident := 0
	for _, prev := range previous {
		if prev == nil || prev.Language == "" || prev.Language == model.LanguageAuto {
			continue
		}
		if prev.Confidence <= historyMinConfidence {
			continue
		}
		counts[prev.Language]++
		confident++
	}
	if confident == 0 {
		return nil
	}
	for lang, count := range counts {
		if float64(count)/float64(confident) >= historyShare {
			return &model.DetectionResult{
				Language:   lang,
				Confidence: historyConfidence,
				Method:     model.MethodConsistency,
				Details:    map[string]any{"count": count, "considered": confident},
				Timestamp:  now,
			}
		}
	}
	return nil
}
