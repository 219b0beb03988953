package model

import "time"

// LanguageAuto is returned when no language could be determined
const LanguageAuto = "auto"

// Detection methods
const (
	MethodScript        = "script_analysis"
	MethodWords         = "word_analysis"
	MethodFrequency     = "frequency_analysis"
	MethodHTMLLang      = "html_lang"
	MethodMetaLanguage  = "meta_language"
	MethodOGLocale      = "og_locale"
	MethodConsistency   = "consistency_hint"
	MethodDomain        = "domain_hint"
	MethodGeographic    = "geographic_hint"
	MethodBrowserLocale = "browser_locale"
	MethodCombined      = "combined"
	MethodNone          = "no_detection_methods"
	MethodInvalidInput  = "invalid_input"
)

// DetectionResult is a single language verdict, either from one strategy or combined.
// Immutable once produced.
type DetectionResult struct {
	Language   string         `json:"language"`
	Confidence float64        `json:"confidence"`
	Method     string         `json:"method"`
	Details    map[string]any `json:"details,omitempty"`
	Timestamp  time.Time      `json:"timestamp"`
}

// Alternative is a lower-ranked candidate language of a combined verdict
type Alternative struct {
	Language   string  `json:"language"`
	Confidence float64 `json:"confidence"`
}

// DetectionContext carries optional non-textual signals.
// The DOM-derived fields (HTMLLang, MetaLanguage, OGLocale, BrowserLocale) are
// extracted by the caller - the engine only validates and scores them.
type DetectionContext struct {
	Domain             string             `json:"domain,omitempty"`
	Timezone           string             `json:"timezone,omitempty"`
	PreviousDetections []*DetectionResult `json:"previous_detections,omitempty"`
	HTMLLang           string             `json:"html_lang,omitempty"`
	MetaLanguage       string             `json:"meta_language,omitempty"`
	OGLocale           string             `json:"og_locale,omitempty"`
	BrowserLocale      string             `json:"browser_locale,omitempty"`
}

// IsEmpty returns true if the context carries no signal at all
func (c *DetectionContext) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.Domain == "" && c.Timezone == "" && len(c.PreviousDetections) == 0 &&
		c.HTMLLang == "" && c.MetaLanguage == "" && c.OGLocale == "" && c.BrowserLocale == ""
}

// DetectionRequest is the POST /detect payload
type DetectionRequest struct {
	Text    string            `json:"text"`
	Context *DetectionContext `json:"context,omitempty"`
}

// TrendEntry is one recorded verdict within the trend window
type TrendEntry struct {
	Timestamp  time.Time        `json:"timestamp"`
	Result     *DetectionResult `json:"result"`
	SampleSize int              `json:"sample_size"`
}

// TrendItem is one language of a trend snapshot, ranked by frequency
type TrendItem struct {
	Language      string  `json:"language"`
	Count         int     `json:"count"`
	Frequency     float64 `json:"frequency"`
	AvgConfidence float64 `json:"avg_confidence"`
}

// TrendSnapshot is the aggregate over the live trend window
type TrendSnapshot struct {
	Dominant   string       `json:"dominant"`
	Confidence float64      `json:"confidence"`
	Frequency  float64      `json:"frequency"`
	WindowSize int          `json:"window_size"`
	Trends     []*TrendItem `json:"trends"`
}
