package detector

import (
	"testing"
	"time"

	"github.com/etkecc/lid/internal/model"
)

func candidate(lang, method string, confidence float64) *model.DetectionResult {
	return &model.DetectionResult{Language: lang, Confidence: confidence, Method: method}
}

func TestCombine_NoCandidates(t *testing.T) {
	result := combine(nil, time.Now())
	if result.Language != model.LanguageAuto {
		t.Errorf("language: got %q, want %q", result.Language, model.LanguageAuto)
	}
	if result.Confidence != 0.1 {
		t.Errorf("confidence: got %f, want 0.1", result.Confidence)
	}
	if result.Method != model.MethodNone {
		t.Errorf("method: got %q, want %q", result.Method, model.MethodNone)
	}
}

func TestCombine_SingleCandidate(t *testing.T) {
	result := combine([]*model.DetectionResult{candidate("fi", model.MethodWords, 0.6)}, time.Now())
	if result.Language != "fi" {
		t.Errorf("language: got %q, want fi", result.Language)
	}
	if result.Confidence != 0.6 {
		t.Errorf("confidence: got %f, want 0.6", result.Confidence)
	}
	if result.Method != model.MethodWords {
		t.Errorf("method: got %q, want %q", result.Method, model.MethodWords)
	}
}

func TestCombine_WeightedAverage(t *testing.T) {
	candidates := []*model.DetectionResult{
		candidate("en", model.MethodScript, 0.9),
		candidate("en", model.MethodWords, 0.6),
		candidate("de", model.MethodDomain, 0.3),
	}
	result := combine(candidates, time.Now())
	if result.Language != "en" {
		t.Fatalf("language: got %q, want en", result.Language)
	}
	// (0.9*1.0 + 0.6*0.8) / 1.8 = 0.7(6)
	want := (0.9*1.0 + 0.6*0.8) / 1.8
	if diff := result.Confidence - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("confidence: got %f, want %f", result.Confidence, want)
	}
	if result.Method != model.MethodCombined {
		t.Errorf("method: got %q, want %q", result.Method, model.MethodCombined)
	}
}

func TestCombine_TieBreakByCorroboration(t *testing.T) {
	// equal weighted confidence, "sv" has two contributing methods
	candidates := []*model.DetectionResult{
		candidate("fi", model.MethodWords, 0.6),
		candidate("sv", model.MethodFrequency, 0.6),
		candidate("sv", model.MethodMetaLanguage, 0.6),
	}
	result := combine(candidates, time.Now())
	if result.Language != "sv" {
		t.Errorf("language: got %q, want sv (more corroboration)", result.Language)
	}
}

func TestCombine_TieBreakByMethodWeight(t *testing.T) {
	// equal confidence, equal method count: the script contribution wins
	candidates := []*model.DetectionResult{
		candidate("th", model.MethodScript, 0.5),
		candidate("fi", model.MethodWords, 0.5),
	}
	result := combine(candidates, time.Now())
	if result.Language != "th" {
		t.Errorf("language: got %q, want th (higher table weight)", result.Language)
	}
}

func TestCombine_Alternatives(t *testing.T) {
	candidates := []*model.DetectionResult{
		candidate("en", model.MethodScript, 0.9),
		candidate("de", model.MethodWords, 0.7),
		candidate("fr", model.MethodFrequency, 0.6),
		candidate("es", model.MethodDomain, 0.3),
		candidate("it", model.MethodGeographic, 0.2),
	}
	result := combine(candidates, time.Now())
	alternatives, ok := result.Details["alternatives"].([]*model.Alternative)
	if !ok {
		t.Fatal("details.alternatives missing")
	}
	if len(alternatives) != 3 {
		t.Fatalf("alternatives: got %d, want 3", len(alternatives))
	}
	if alternatives[0].Language != "de" {
		t.Errorf("first alternative: got %q, want de", alternatives[0].Language)
	}
}

func TestCombine_OrderIndependent(t *testing.T) {
	a := []*model.DetectionResult{
		candidate("en", model.MethodWords, 0.6),
		candidate("de", model.MethodFrequency, 0.6),
	}
	b := []*model.DetectionResult{
		candidate("de", model.MethodFrequency, 0.6),
		candidate("en", model.MethodWords, 0.6),
	}
	if combine(a, time.Now()).Language != combine(b, time.Now()).Language {
		t.Error("combination must not depend on evaluation order")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{1.7, 1},
	}
	for _, tt := range tests {
		if got := clamp(tt.in); got != tt.want {
			t.Errorf("clamp(%f): got %f, want %f", tt.in, got, tt.want)
		}
	}
}
