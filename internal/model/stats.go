package model

// DetectionStats is a snapshot of the engine counters
type DetectionStats struct {
	Detections        int            `json:"detections"`
	CacheHits         int            `json:"cache_hits"`
	CacheHitRate      float64        `json:"cache_hit_rate"`
	AverageConfidence float64        `json:"average_confidence"`
	Languages         map[string]int `json:"languages"`
	Methods           map[string]int `json:"methods"`
}
