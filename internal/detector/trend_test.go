package detector

import (
	"testing"
	"time"

	"github.com/etkecc/lid/internal/model"
)

func TestTrendWindow_Dominant(t *testing.T) {
	window := newTrendWindow(10 * time.Minute)
	now := time.Now()

	for i := 0; i < 6; i++ {
		window.Record(&model.DetectionResult{Language: "fi", Confidence: 0.8}, 50, now)
	}
	for i := 0; i < 4; i++ {
		window.Record(&model.DetectionResult{Language: "sv", Confidence: 0.6}, 50, now)
	}

	snapshot := window.Snapshot(now)
	if snapshot.Dominant != "fi" {
		t.Errorf("dominant: got %q, want fi", snapshot.Dominant)
	}
	if snapshot.Frequency != 0.6 {
		t.Errorf("frequency: got %f, want 0.6", snapshot.Frequency)
	}
	if snapshot.WindowSize != 10 {
		t.Errorf("window size: got %d, want 10", snapshot.WindowSize)
	}
	if len(snapshot.Trends) != 2 {
		t.Fatalf("trends: got %d entries, want 2", len(snapshot.Trends))
	}
	if snapshot.Trends[1].Language != "sv" || snapshot.Trends[1].Frequency != 0.4 {
		t.Errorf("second trend: got %+v, want sv with frequency 0.4", snapshot.Trends[1])
	}
}

func TestTrendWindow_Purge(t *testing.T) {
	window := newTrendWindow(10 * time.Minute)
	now := time.Now()

	window.Record(&model.DetectionResult{Language: "de", Confidence: 0.9}, 50, now.Add(-15*time.Minute))
	window.Record(&model.DetectionResult{Language: "fr", Confidence: 0.7}, 50, now)

	snapshot := window.Snapshot(now)
	if snapshot.WindowSize != 1 {
		t.Fatalf("window size: got %d, want 1 (stale entry must be purged)", snapshot.WindowSize)
	}
	if snapshot.Dominant != "fr" {
		t.Errorf("dominant: got %q, want fr", snapshot.Dominant)
	}
}

func TestTrendWindow_Empty(t *testing.T) {
	window := newTrendWindow(10 * time.Minute)
	snapshot := window.Snapshot(time.Now())
	if snapshot.Dominant != model.LanguageAuto {
		t.Errorf("dominant: got %q, want %q", snapshot.Dominant, model.LanguageAuto)
	}
	if len(snapshot.Trends) != 0 {
		t.Errorf("trends: got %d entries, want 0", len(snapshot.Trends))
	}
}

func TestTrendWindow_AvgConfidence(t *testing.T) {
	window := newTrendWindow(10 * time.Minute)
	now := time.Now()

	window.Record(&model.DetectionResult{Language: "en", Confidence: 0.6}, 50, now)
	window.Record(&model.DetectionResult{Language: "en", Confidence: 0.8}, 50, now)

	snapshot := window.Snapshot(now)
	if diff := snapshot.Confidence - 0.7; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("avg confidence: got %f, want 0.7", snapshot.Confidence)
	}
}
