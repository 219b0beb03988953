package metrics

import (
	"fmt"
	"net/http"

	"github.com/VictoriaMetrics/metrics"
)

// DetectRequests - the total number of detection requests served over HTTP
var DetectRequests = metrics.NewCounter("lid_detect_requests_total")

// IncDetection increments the per-language/per-method detections counter
func IncDetection(language, method string) {
	metrics.GetOrCreateCounter(fmt.Sprintf("lid_detections_total{language=%q,method=%q}", language, method)).Inc()
}

// RegisterEngine exports engine counters as gauges
func RegisterEngine(detections, cacheHits, cacheEntries func() float64) {
	metrics.NewGauge("lid_engine_detections", detections)
	metrics.NewGauge("lid_engine_cache_hits", cacheHits)
	metrics.NewGauge("lid_engine_cache_entries", cacheEntries)
}

// Handler for metrics
type Handler struct{}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	metrics.WritePrometheus(w, false)
}
