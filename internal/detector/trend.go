package detector

import (
	"sort"
	"sync"
	"time"

	"github.com/etkecc/lid/internal/model"
)

// trendWindow keeps verdicts of the last horizon and aggregates the dominant
// language over them. Aggregation always recomputes from the live window, no
// state survives a purge.
type trendWindow struct {
	mu      sync.Mutex
	horizon time.Duration
	entries []*model.TrendEntry
}

func newTrendWindow(horizon time.Duration) *trendWindow {
	return &trendWindow{horizon: horizon}
}

// Record adds a verdict to the window and discards entries older than the horizon
func (t *trendWindow) Record(result *model.DetectionResult, sampleSize int, at time.Time) {
	if result == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = append(t.entries, &model.TrendEntry{Timestamp: at, Result: result, SampleSize: sampleSize})
	t.purge(at)
}

// purge drops entries older than the horizon, caller must hold the lock
func (t *trendWindow) purge(now time.Time) {
	cutoff := now.Add(-t.horizon)
	kept := t.entries[:0]
	for _, entry := range t.entries {
		if entry.Timestamp.After(cutoff) {
			kept = append(kept, entry)
		}
	}
	t.entries = kept
}

// Snapshot aggregates the live window into a dominant language plus the full
// ranked list
func (t *trendWindow) Snapshot(now time.Time) *model.TrendSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.purge(now)

	snapshot := &model.TrendSnapshot{Dominant: model.LanguageAuto, WindowSize: len(t.entries), Trends: []*model.TrendItem{}}
	if len(t.entries) == 0 {
		return snapshot
	}

	counts := map[string]int{}
	confidence := map[string]float64{}
	for _, entry := range t.entries {
		counts[entry.Result.Language]++
		confidence[entry.Result.Language] += entry.Result.Confidence
	}
	for lang, count := range counts {
		snapshot.Trends = append(snapshot.Trends, &model.TrendItem{
			Language:      lang,
			Count:         count,
			Frequency:     float64(count) / float64(len(t.entries)),
			AvgConfidence: confidence[lang] / float64(count),
		})
	}
	sort.Slice(snapshot.Trends, func(i, j int) bool {
		if snapshot.Trends[i].Count != snapshot.Trends[j].Count {
			return snapshot.Trends[i].Count > snapshot.Trends[j].Count
		}
		if snapshot.Trends[i].AvgConfidence != snapshot.Trends[j].AvgConfidence {
			return snapshot.Trends[i].AvgConfidence > snapshot.Trends[j].AvgConfidence
		}
		return snapshot.Trends[i].Language < snapshot.Trends[j].Language
	})

	dominant := snapshot.Trends[0]
	snapshot.Dominant = dominant.Language
	snapshot.Confidence = dominant.AvgConfidence
	snapshot.Frequency = dominant.Frequency
	return snapshot
}

// Reset drops the whole window
func (t *trendWindow) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = nil
}
