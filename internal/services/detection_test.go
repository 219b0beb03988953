package services

import (
	"testing"

	"github.com/etkecc/lid/internal/detector"
	"github.com/etkecc/lid/internal/model"
)

type staticConfig struct {
	cfg *model.Config
}

func (s *staticConfig) Get() *model.Config { return s.cfg }

func newTestDetection(t *testing.T, cfg *model.Config) *Detection {
	t.Helper()
	engine, err := detector.New(detector.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return NewDetection(&staticConfig{cfg: cfg}, engine)
}

func TestDetectionStripsMarkup(t *testing.T) {
	svc := newTestDetection(t, nil)
	text := "<div><p>The quick brown fox jumps over the lazy dog and all is well</p><script>alert(1)</script></div>"
	result := svc.Detect(t.Context(), text, nil, "")
	if result == nil {
		t.Fatal("expected a result")
	}
	if result.Language != "en" {
		t.Errorf("language: got %q, want en", result.Language)
	}
}

func TestDetectionOriginHistory(t *testing.T) {
	svc := newTestDetection(t, nil)
	// seed the origin with confident verdicts
	for i := 0; i < 5; i++ {
		svc.remember("example.org", &model.DetectionResult{Language: "de", Confidence: 0.8})
	}

	// gibberish long enough to pass the length gate, short enough that no
	// text strategy fires - only the consistency hint is left
	result := svc.Detect(t.Context(), "zzzz qqqq xxxx wwww kkkk", nil, "example.org")
	if result.Language != "de" {
		t.Errorf("language: got %q, want de", result.Language)
	}
	if result.Method != model.MethodConsistency {
		t.Errorf("method: got %q, want %q", result.Method, model.MethodConsistency)
	}
}

func TestDetectionCallerHintsWin(t *testing.T) {
	svc := newTestDetection(t, nil)
	svc.remember("example.org", &model.DetectionResult{Language: "de", Confidence: 0.8})

	dctx := &model.DetectionContext{
		PreviousDetections: []*model.DetectionResult{
			{Language: "fi", Confidence: 0.8},
			{Language: "fi", Confidence: 0.8},
		},
	}
	result := svc.Detect(t.Context(), "zzzz qqqq xxxx wwww kkkk", dctx, "example.org")
	if result.Language != "fi" {
		t.Errorf("language: got %q, want fi", result.Language)
	}
}

func TestHistoryRingBounded(t *testing.T) {
	size := 3
	svc := newTestDetection(t, &model.Config{History: &model.ConfigHistory{Size: size}})
	for i := 0; i < size*3; i++ {
		svc.remember("example.org", &model.DetectionResult{Language: "en", Confidence: 0.8})
	}

	recent := svc.recentFor("example.org")
	if len(recent) != size {
		t.Errorf("ring size: got %d, want %d", len(recent), size)
	}
}

func TestDetectionReset(t *testing.T) {
	svc := newTestDetection(t, nil)
	svc.Detect(t.Context(), "The quick brown fox jumps over the lazy dog and all is well", nil, "example.org")
	svc.Reset()

	if recent := svc.recentFor("example.org"); recent != nil {
		t.Errorf("expected empty history after reset, got %d entries", len(recent))
	}
	if stats := svc.Stats(); stats.Detections != 0 {
		t.Errorf("expected zero detections after reset, got %d", stats.Detections)
	}
}
