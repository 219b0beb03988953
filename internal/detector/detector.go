package detector

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/etkecc/go-apm"

	"github.com/etkecc/lid/internal/model"
)

// engine defaults, empirically chosen and overridable via Options
const (
	DefaultMinSampleLength = 10
	DefaultMaxSampleLength = 1000
	DefaultCacheTTL        = 5 * time.Minute
	DefaultCacheMaxEntries = 10000
	DefaultTrendHorizon    = 10 * time.Minute
	DefaultWordNoiseFloor  = 0.05
	DefaultFrequencyFloor  = 0.5
)

// Options configure a Detector instance. Zero fields fall back to defaults.
type Options struct {
	MinSampleLength int
	MaxSampleLength int
	CacheTTL        time.Duration
	CacheMaxEntries int
	TrendHorizon    time.Duration
	WordNoiseFloor  float64
	FrequencyFloor  float64
}

func (o Options) withDefaults() Options {
	if o.MinSampleLength <= 0 {
		o.MinSampleLength = DefaultMinSampleLength
	}
	if o.MaxSampleLength <= 0 {
		o.MaxSampleLength = DefaultMaxSampleLength
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.CacheMaxEntries <= 0 {
		o.CacheMaxEntries = DefaultCacheMaxEntries
	}
	if o.TrendHorizon <= 0 {
		o.TrendHorizon = DefaultTrendHorizon
	}
	if o.WordNoiseFloor <= 0 {
		o.WordNoiseFloor = DefaultWordNoiseFloor
	}
	if o.FrequencyFloor <= 0 {
		o.FrequencyFloor = DefaultFrequencyFloor
	}
	return o
}

// Detector is a multi-signal language detection engine. Each instance owns
// its cache, statistics and trend window, so independent instances can
// coexist without shared state. Safe for concurrent use.
type Detector struct {
	opts  Options
	cache *resultCache
	stats *statistics
	trend *trendWindow

	now          func() time.Time // overridable in tests
	strategyRuns atomic.Int64
}

// New creates a detection engine
func New(opts Options) (*Detector, error) {
	opts = opts.withDefaults()
	cache, err := newResultCache(opts.CacheTTL, opts.CacheMaxEntries)
	if err != nil {
		return nil, err
	}
	return &Detector{
		opts:  opts,
		cache: cache,
		stats: newStatistics(),
		trend: newTrendWindow(opts.TrendHorizon),
		now:   time.Now,
	}, nil
}

// Detect identifies the language of the text sample. It never fails: invalid
// or too-short input yields an "auto" verdict with low confidence, and a
// broken strategy only abstains. Cache lookup happens before any strategy
// runs; on hit the memoized verdict is returned as-is.
func (d *Detector) Detect(ctx context.Context, text string, dctx *model.DetectionContext) *model.DetectionResult {
	now := d.now()
	sample := normalize(text, d.opts.MaxSampleLength)
	if len([]rune(sample)) < d.opts.MinSampleLength {
		result := &model.DetectionResult{
			Language:   model.LanguageAuto,
			Confidence: 0.05,
			Method:     model.MethodInvalidInput,
			Details:    map[string]any{"sample_length": len([]rune(sample))},
			Timestamp:  now,
		}
		d.stats.RecordDetection(result)
		return result
	}

	key := cacheKey(sample, dctx)
	if cached := d.cache.Get(key, now); cached != nil {
		d.stats.RecordCacheHit(cached)
		return cached
	}

	result := combine(d.runStrategies(ctx, sample, dctx, now), now)
	d.stats.RecordDetection(result)
	d.cache.Set(key, result, now)
	return result
}

// runStrategies executes every strategy over the same preprocessed sample.
// Strategies are independent and side-effect-free; a panicking one is logged
// and treated as abstained.
func (d *Detector) runStrategies(ctx context.Context, sample string, dctx *model.DetectionContext, now time.Time) []*model.DetectionResult {
	d.strategyRuns.Add(1)
	var candidates []*model.DetectionResult
	collect := func(name string, run func() []*model.DetectionResult) {
		defer func() {
			if r := recover(); r != nil {
				apm.Log(ctx).Warn().Any("panic", r).Str("strategy", name).Msg("detection strategy failed")
			}
		}()
		candidates = append(candidates, run()...)
	}

	collect("script", func() []*model.DetectionResult { return matchScripts(sample, now) })
	collect("words", func() []*model.DetectionResult { return one(d.matchWords(sample, now)) })
	collect("frequency", func() []*model.DetectionResult { return one(d.matchFrequency(sample, now)) })
	if !dctx.IsEmpty() {
		collect("domain", func() []*model.DetectionResult { return one(matchDomain(dctx.Domain, now)) })
		collect("geographic", func() []*model.DetectionResult { return one(matchTimezone(dctx.Timezone, now)) })
		collect("history", func() []*model.DetectionResult { return one(matchHistory(dctx.PreviousDetections, now)) })
		collect("hints", func() []*model.DetectionResult { return matchHints(dctx, now) })
	}
	return candidates
}

func one(result *model.DetectionResult) []*model.DetectionResult {
	if result == nil {
		return nil
	}
	return []*model.DetectionResult{result}
}

// RecordForTrend adds a verdict to the sliding trend window
func (d *Detector) RecordForTrend(result *model.DetectionResult, sampleSize int, at time.Time) {
	d.trend.Record(result, sampleSize, at)
}

// Trend returns the dominant language over the live trend window
func (d *Detector) Trend() *model.TrendSnapshot {
	return d.trend.Snapshot(d.now())
}

// Statistics returns a snapshot of the engine counters
func (d *Detector) Statistics() *model.DetectionStats {
	return d.stats.Snapshot()
}

// SweepCache removes expired cache entries and returns how many were purged
func (d *Detector) SweepCache() int {
	return d.cache.Sweep(d.now())
}

// CacheLen returns the current number of cache entries
func (d *Detector) CacheLen() int {
	return d.cache.Len()
}

// ClearCache drops all memoized verdicts
func (d *Detector) ClearCache() {
	d.cache.Clear()
}

// Reset clears the cache, the statistics and the trend window
func (d *Detector) Reset() {
	d.cache.Clear()
	d.stats.Reset()
	d.trend.Reset()
}
