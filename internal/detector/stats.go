package detector

import (
	"sync"

	"github.com/etkecc/lid/internal/model"
)

// statistics keeps running counters, updated exactly once per completed
// detection. Cache hits count toward the hit rate but never toward the
// method histogram.
type statistics struct {
	mu            sync.Mutex
	detections    int
	cacheHits     int
	confidenceSum float64
	languages     map[string]int
	methods       map[string]int
}

func newStatistics() *statistics {
	return &statistics{
		languages: map[string]int{},
		methods:   map[string]int{},
	}
}

// RecordDetection counts one full (non-cached) detection
func (s *statistics) RecordDetection(result *model.DetectionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detections++
	s.confidenceSum += clamp(result.Confidence)
	s.languages[result.Language]++
	s.methods[result.Method]++
}

// RecordCacheHit counts one cache-served detection
func (s *statistics) RecordCacheHit(result *model.DetectionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detections++
	s.cacheHits++
	s.confidenceSum += clamp(result.Confidence)
	s.languages[result.Language]++
}

// Snapshot returns a copy of the counters
func (s *statistics) Snapshot() *model.DetectionStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := &model.DetectionStats{
		Detections: s.detections,
		CacheHits:  s.cacheHits,
		Languages:  make(map[string]int, len(s.languages)),
		Methods:    make(map[string]int, len(s.methods)),
	}
	if s.detections > 0 {
		stats.CacheHitRate = float64(s.cacheHits) / float64(s.detections)
		stats.AverageConfidence = clamp(s.confidenceSum / float64(s.detections))
	}
	for lang, count := range s.languages {
		stats.Languages[lang] = count
	}
	for method, count := range s.methods {
		stats.Methods[method] = count
	}
	return stats
}

// Reset zeroes all counters
func (s *statistics) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detections = 0
	s.cacheHits = 0
	s.confidenceSum = 0
	s.languages = map[string]int{}
	s.methods = map[string]int{}
}
