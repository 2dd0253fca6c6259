// Package repository caches simulation results keyed by arc distance.
package repository

// Option applies a configuration option to the LRU cache.
type Option func(*lruCache)

// WithMaxEntries bounds the number of cached arc distances.
func WithMaxEntries(n int) Option {
	return func(c *lruCache) {
		if n > 0 {
			c.maxEntries = n
		}
	}
}
