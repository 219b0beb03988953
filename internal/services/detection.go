package services

import (
	"context"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/etkecc/lid/internal/detector"
	"github.com/etkecc/lid/internal/metrics"
	"github.com/etkecc/lid/internal/model"
	"github.com/etkecc/lid/internal/utils"
)

const defaultHistorySize = 10

// Detection service wraps the engine with input sanitizing, per-origin
// history and metrics
type Detection struct {
	cfg       ConfigService
	engine    *detector.Detector
	sanitizer *bluemonday.Policy

	hmu     sync.Mutex
	history map[string]*historyRing
}

// historyRing is a bounded ring of recent verdicts for one origin. The ring
// is owned here and only ever passed to the engine read-only.
type historyRing struct {
	entries []*model.DetectionResult
	next    int
}

func (r *historyRing) add(result *model.DetectionResult, size int) {
	if len(r.entries) < size {
		r.entries = append(r.entries, result)
		return
	}
	r.entries[r.next%len(r.entries)] = result
	r.next++
}

// NewDetection creates new detection service
func NewDetection(cfg ConfigService, engine *detector.Detector) *Detection {
	return &Detection{
		cfg:       cfg,
		engine:    engine,
		sanitizer: bluemonday.StrictPolicy(),
		history:   map[string]*historyRing{},
	}
}

// Detect identifies the language of a text sample. DOM fragments may carry
// markup, so the sample is stripped to plain text first. Previous verdicts of
// the same origin are attached as the consistency hint unless the caller
// supplied their own.
func (d *Detection) Detect(ctx context.Context, text string, dctx *model.DetectionContext, origin string) *model.DetectionResult {
	sample := d.sanitizer.Sanitize(text)
	if dctx == nil {
		dctx = &model.DetectionContext{}
	}
	if len(dctx.PreviousDetections) == 0 && origin != "" {
		dctx.PreviousDetections = d.recentFor(origin)
	}

	result := d.engine.Detect(ctx, sample, dctx)
	metrics.IncDetection(result.Language, result.Method)
	zerolog.Ctx(ctx).Debug().
		Str("language", result.Language).
		Str("method", result.Method).
		Float64("confidence", result.Confidence).
		Str("sample", utils.Truncate(sample, 32)).
		Msg("detection finished")

	if origin != "" {
		d.remember(origin, result)
	}
	d.engine.RecordForTrend(result, len(sample), result.Timestamp)
	return result
}

// recentFor returns a copy of the origin's recent verdicts
func (d *Detection) recentFor(origin string) []*model.DetectionResult {
	d.hmu.Lock()
	defer d.hmu.Unlock()
	ring, ok := d.history[origin]
	if !ok {
		return nil
	}
	recent := make([]*model.DetectionResult, len(ring.entries))
	copy(recent, ring.entries)
	return recent
}

func (d *Detection) remember(origin string, result *model.DetectionResult) {
	size := defaultHistorySize
	if cfg := d.cfg.Get(); cfg != nil && cfg.History != nil && cfg.History.Size > 0 {
		size = cfg.History.Size
	}

	d.hmu.Lock()
	defer d.hmu.Unlock()
	ring, ok := d.history[origin]
	if !ok {
		ring = &historyRing{}
		d.history[origin] = ring
	}
	ring.add(result, size)
}

// Trend returns the dominant language over the trend window
func (d *Detection) Trend() *model.TrendSnapshot {
	return d.engine.Trend()
}

// Stats returns a snapshot of the engine counters
func (d *Detection) Stats() *model.DetectionStats {
	return d.engine.Statistics()
}

// SweepCache removes expired cache entries, used by the cron job
func (d *Detection) SweepCache(ctx context.Context) {
	log := zerolog.Ctx(ctx)
	purged := d.engine.SweepCache()
	if purged > 0 {
		log.Info().Int("purged", purged).Int("left", d.engine.CacheLen()).Msg("cache sweep finished")
	}
}

// ClearCache drops all memoized verdicts
func (d *Detection) ClearCache() {
	d.engine.ClearCache()
}

// Reset clears the cache, statistics, trend window and origin history
func (d *Detection) Reset() {
	d.engine.Reset()
	d.hmu.Lock()
	defer d.hmu.Unlock()
	d.history = map[string]*historyRing{}
}
