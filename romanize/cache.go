package romanize

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"zhongwenanki/tokenize"
)

// Cached memoizes a base oracle per sentence and notation. Batches of
// flashcards repeat the same headwords in several fields.
type Cached struct {
	base  tokenize.RomanizationOracle
	cache *gocache.Cache
}

// NewCached wraps base; entries expire after ttl.
func NewCached(base tokenize.RomanizationOracle, ttl time.Duration) *Cached {
	return &Cached{
		base:  base,
		cache: gocache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Romanize(sentence string, notation tokenize.Notation) []string {
	key := notation.String() + "\x00" + sentence
	if v, found := c.cache.Get(key); found {
		if readings, ok := v.([]string); ok {
			tracer().Debugf("cache hit for %q", sentence)
			return append([]string(nil), readings...)
		}
	}
	readings := c.base.Romanize(sentence, notation)
	c.cache.Set(key, append([]string(nil), readings...), gocache.DefaultExpiration)
	return readings
}

// ItemCount reports the number of cached entries.
func (c *Cached) ItemCount() int {
	return c.cache.ItemCount()
}
