package detector

import (
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/etkecc/lid/internal/model"
)

// hint confidence per source, mirroring how much each DOM attribute can be
// trusted in the wild
const (
	htmlLangConfidence      = 0.8
	metaLanguageConfidence  = 0.7
	ogLocaleConfidence      = 0.6
	browserLocaleConfidence = 0.2
)

// normalizeLangCode parses a caller-supplied language tag ("en", "en-US",
// "zh_CN") and returns its base ISO 639-1 code if it is on the whitelist
func normalizeLangCode(code string) string {
	code = strings.TrimSpace(strings.ReplaceAll(code, "_", "-"))
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return ""
	}
	base, conf := tag.Base()
	if conf == language.No {
		return ""
	}
	lang := base.String()
	if _, ok := knownLanguages[lang]; !ok {
		return ""
	}
	return lang
}

// matchHints converts caller-supplied DOM and browser signals into pre-scored
// candidates. The engine never reads a DOM itself - it only validates strings
// handed over by the scanner.
func matchHints(dctx *model.DetectionContext, now time.Time) []*model.DetectionResult {
	if dctx == nil {
		return nil
	}
	sources := []struct {
		value      string
		method     string
		confidence float64
	}{
		{dctx.HTMLLang, model.MethodHTMLLang, htmlLangConfidence},
		{dctx.MetaLanguage, model.MethodMetaLanguage, metaLanguageConfidence},
		{dctx.OGLocale, model.MethodOGLocale, ogLocaleConfidence},
		{dctx.BrowserLocale, model.MethodBrowserLocale, browserLocaleConfidence},
	}

	var results []*model.DetectionResult
	for _, src := range sources {
		lang := normalizeLangCode(src.value)
		if lang == "" {
			continue
		}
		results = append(results, &model.DetectionResult{
			Language:   lang,
			Confidence: src.confidence,
			Method:     src.method,
			Details:    map[string]any{"raw": src.value},
			Timestamp:  now,
		})
	}
	return results
}
