package detector

import (
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/etkecc/lid/internal/model"
)

const cacheKeySampleLen = 100

// cacheEntry is one memoized verdict
type cacheEntry struct {
	result    *model.DetectionResult
	expiresAt time.Time
}

// resultCache memoizes verdicts by (sample prefix, context) with lazy TTL
// expiry on read. The LRU cap bounds memory under pressure; a periodic Sweep
// removes expired entries the reads never touch.
type resultCache struct {
	ttl     time.Duration
	entries *lru.Cache[string, *cacheEntry]
}

func newResultCache(ttl time.Duration, maxEntries int) (*resultCache, error) {
	entries, err := lru.New[string, *cacheEntry](maxEntries)
	if err != nil {
		return nil, err
	}
	return &resultCache{ttl: ttl, entries: entries}, nil
}

// cacheKey builds the memoization key from the first 100 runes of the
// normalized sample and the serialized context hints
func cacheKey(sample string, dctx *model.DetectionContext) string {
	runes := []rune(sample)
	if len(runes) > cacheKeySampleLen {
		runes = runes[:cacheKeySampleLen]
	}
	h := sha1.New()
	h.Write([]byte(string(runes)))
	// previous detections are volatile and excluded from the key
	if dctx != nil && (dctx.Domain != "" || dctx.Timezone != "" || dctx.HTMLLang != "" ||
		dctx.MetaLanguage != "" || dctx.OGLocale != "" || dctx.BrowserLocale != "") {
		ctxb, err := json.Marshal(map[string]string{
			"domain":   dctx.Domain,
			"timezone": dctx.Timezone,
			"html":     dctx.HTMLLang,
			"meta":     dctx.MetaLanguage,
			"og":       dctx.OGLocale,
			"browser":  dctx.BrowserLocale,
		})
		if err == nil {
			h.Write(ctxb)
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the memoized verdict, evicting it first if expired
func (c *resultCache) Get(key string, now time.Time) *model.DetectionResult {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil
	}
	if now.After(entry.expiresAt) {
		c.entries.Remove(key)
		return nil
	}
	return entry.result
}

// Set memoizes the verdict for the configured TTL
func (c *resultCache) Set(key string, result *model.DetectionResult, now time.Time) {
	c.entries.Add(key, &cacheEntry{result: result, expiresAt: now.Add(c.ttl)})
}

// Sweep removes all expired entries and returns how many were purged
func (c *resultCache) Sweep(now time.Time) int {
	purged := 0
	for _, key := range c.entries.Keys() {
		entry, ok := c.entries.Peek(key)
		if !ok {
			continue
		}
		if now.After(entry.expiresAt) {
			c.entries.Remove(key)
			purged++
		}
	}
	return purged
}

// Len returns the number of entries, expired included
func (c *resultCache) Len() int {
	return c.entries.Len()
}

// Clear drops all entries
func (c *resultCache) Clear() {
	c.entries.Purge()
}
