package detector

import (
	"testing"
	"time"

	"github.com/etkecc/lid/internal/model"
)

func TestMatchWords(t *testing.T) {
	d := newTestDetector(t, Options{})
	now := time.Now()

	tests := []struct {
		name     string
		text     string
		wantLang string
	}{
		{"english", "the quick brown fox jumps over the lazy dog and runs through the forest", "en"},
		{"german", "der schnelle braune fuchs springt über den faulen hund und läuft durch den wald", "de"},
		{"french", "le chat est dans la maison et il dort sur le lit avec les enfants", "fr"},
		{"spanish", "el perro está en la casa y no quiere salir por la puerta con nosotros", "es"},
		{"finnish", "se on hyvä päivä ja aurinko paistaa mutta tuuli on kylmä kun kävelen", "fi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := d.matchWords(tt.text, now)
			if result == nil {
				t.Fatal("expected a match")
			}
			if result.Language != tt.wantLang {
				t.Errorf("language: got %q, want %q", result.Language, tt.wantLang)
			}
			if result.Method != model.MethodWords {
				t.Errorf("method: got %q, want %q", result.Method, model.MethodWords)
			}
		})
	}
}

func TestMatchWords_Abstains(t *testing.T) {
	d := newTestDetector(t, Options{})
	now := time.Now()

	tests := []struct {
		name string
		text string
	}{
		{"too few tokens", "the quick fox"},
		{"no known words", "zzzz qqqq xxxx yyyy wwww kkkk"},
		{"numbers only", "123 456 789 012 345 678"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := d.matchWords(tt.text, now); result != nil {
				t.Errorf("expected abstain, got %+v", result)
			}
		})
	}
}

func TestMatchWords_DistinctiveWeighted(t *testing.T) {
	d := newTestDetector(t, Options{})
	now := time.Now()

	// "through" is distinctive and counts twice
	result := d.matchWords("birds fly through open valleys every morning", now)
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Language != "en" {
		t.Fatalf("language: got %q, want en", result.Language)
	}
	score, ok := result.Details["score"].(float64)
	if !ok {
		t.Fatal("details.score missing")
	}
	// 0 common + 2*1 distinctive over 7 tokens
	want := 2.0 / 7.0
	if diff := score - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("score: got %f, want %f", score, want)
	}
}
