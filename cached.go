package keyrand

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/seiflotfy/keyrand/keyenc"
	"github.com/seiflotfy/keyrand/mix"
)

const defaultCacheSize = 1024

// Config holds configuration for a CachedGenerator.
type Config struct {
	CacheSize int // Maximum number of memoized keys (0 = default 1024)
}

// Option is a functional option for configuring a CachedGenerator.
type Option func(*Config)

// WithCacheSize bounds the number of memoized keys.
func WithCacheSize(n int) Option {
	return func(c *Config) {
		c.CacheSize = n
	}
}

// CachedGenerator memoizes output words for hot keys behind a bounded LRU.
// Games often re-derive the same keys every frame; the cache skips the
// encode-hash-mix pipeline on repeats. Memoization is invisible in results:
// outputs are bit-identical to the equivalent Generator, evictions included.
// Safe for concurrent use.
type CachedGenerator struct {
	gen   Generator
	cache *lru.Cache[string, uint64]
}

// NewCached constructs a memoizing generator from a seed value.
func NewCached(seed uint64, opts ...Option) (*CachedGenerator, error) {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	size := cfg.CacheSize
	if size == 0 {
		size = defaultCacheSize
	}
	cache, err := lru.New[string, uint64](size)
	if err != nil {
		return nil, fmt.Errorf("cache size %d: %w", size, err)
	}
	return &CachedGenerator{gen: New(seed), cache: cache}, nil
}

// Generator returns the equivalent uncached generator.
func (c *CachedGenerator) Generator() Generator {
	return c.gen
}

// Seed returns the immutable seed.
func (c *CachedGenerator) Seed() uint64 {
	return c.gen.seed
}

// Uint64 returns the full-width output word for key, from cache if present.
func (c *CachedGenerator) Uint64(key Key) (uint64, error) {
	enc, err := keyenc.Append(nil, key...)
	if err != nil {
		return 0, err
	}
	ck := string(enc)
	if word, ok := c.cache.Get(ck); ok {
		return word, nil
	}
	word := mix.SplitMix64(mix.Combine(c.gen.seed, mix.Hash(enc)))
	c.cache.Add(ck, word)
	return word, nil
}

// Gen returns a uniform float64 in [0, 1) for key.
func (c *CachedGenerator) Gen(key Key) (float64, error) {
	word, err := c.Uint64(key)
	if err != nil {
		return 0, err
	}
	return mix.Unit(word), nil
}

// GenRange returns a uniform integer in the inclusive range [lo, hi], with
// the same rounding policy as Generator.GenRange.
func (c *CachedGenerator) GenRange(key Key, lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("range [%d, %d]: %w", lo, hi, ErrInvalidRange)
	}
	u, err := c.Gen(key)
	if err != nil {
		return 0, err
	}
	return scaleToRange(u, lo, hi), nil
}

// GenFloatRange returns a uniform float64 in [lo, hi).
func (c *CachedGenerator) GenFloatRange(key Key, lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, fmt.Errorf("range [%g, %g): %w", lo, hi, ErrInvalidRange)
	}
	u, err := c.Gen(key)
	if err != nil {
		return 0, err
	}
	return lo + u*(hi-lo), nil
}

// Len returns the number of memoized keys.
func (c *CachedGenerator) Len() int {
	return c.cache.Len()
}

// Purge drops all memoized keys. Generated values are unaffected.
func (c *CachedGenerator) Purge() {
	c.cache.Purge()
}
