package detector

import (
	"testing"
	"time"

	"github.com/etkecc/lid/internal/model"
)

func TestNormalizeLangCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"plain", "en", "en"},
		{"with region", "en-US", "en"},
		{"underscore locale", "zh_CN", "zh"},
		{"uppercase", "DE", "de"},
		{"padded", "  fr  ", "fr"},
		{"unknown language", "xx", ""},
		{"garbage", "not a lang tag at all", ""},
		{"empty", "", ""},
		{"off the whitelist", "sw", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeLangCode(tt.code); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatchHints(t *testing.T) {
	now := time.Now()
	dctx := &model.DetectionContext{
		HTMLLang:      "de-DE",
		MetaLanguage:  "de",
		OGLocale:      "de_DE",
		BrowserLocale: "en-US",
	}
	results := matchHints(dctx, now)
	if len(results) != 4 {
		t.Fatalf("results: got %d, want 4", len(results))
	}
	byMethod := map[string]*model.DetectionResult{}
	for _, r := range results {
		byMethod[r.Method] = r
	}
	if r := byMethod[model.MethodHTMLLang]; r == nil || r.Language != "de" || r.Confidence != htmlLangConfidence {
		t.Errorf("html-lang hint: got %+v", r)
	}
	if r := byMethod[model.MethodBrowserLocale]; r == nil || r.Language != "en" || r.Confidence != browserLocaleConfidence {
		t.Errorf("browser-locale hint: got %+v", r)
	}
}

func TestMatchHints_InvalidDropped(t *testing.T) {
	results := matchHints(&model.DetectionContext{HTMLLang: "klingon", MetaLanguage: "zz-ZZ"}, time.Now())
	if len(results) != 0 {
		t.Errorf("invalid hints must be dropped, got %d results", len(results))
	}
}

func TestMatchHints_NilContext(t *testing.T) {
	if results := matchHints(nil, time.Now()); results != nil {
		t.Errorf("nil context must produce no hints, got %d", len(results))
	}
}
