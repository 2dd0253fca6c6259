// Package repository caches simulation results keyed by arc distance.
//
// The driving parameter is continuous and most values are visited once as
// a user drags a slider, so the cache is a small bounded LRU: recently
// requested arc distances stay warm, everything else is recomputed.
package repository

import (
	"context"
	"math"
	"sync"

	"github.com/YellowCow9/nba-sim/internal/domain/types"
	"github.com/YellowCow9/nba-sim/pkg/metrics"
)

const defaultMaxEntries = 64

// keyScale quantizes arc distances to a stable integer key. The UI slider
// moves in 0.25 ft steps; millifeet resolution is far finer than any
// caller distinguishes while avoiding float map keys.
const keyScale = 1000

// Result bundles the two independently consumable outputs computed for one
// arc distance.
type Result struct {
	Report types.Report
	Shots  []types.LabeledShot
}

// Cache provides read/write access to memoized simulation results.
type Cache interface {
	// Get returns the cached result for arcFt, if present.
	Get(ctx context.Context, arcFt float64) (Result, bool)

	// Put stores the result for arcFt, evicting the least recently used
	// entry when full.
	Put(ctx context.Context, arcFt float64, res Result)

	// Len returns the current number of cached entries.
	Len(ctx context.Context) int
}

// entry is a node in the LRU list.
type entry struct {
	key        int64
	res        Result
	prev, next *entry
}

// lruCache implements Cache with a map plus doubly linked list, most
// recently used at the head.
type lruCache struct {
	mu         sync.Mutex
	entries    map[int64]*entry
	head, tail *entry
	maxEntries int
}

// NewLRUCache creates a bounded LRU cache with configuration options.
func NewLRUCache(opts ...Option) Cache {
	c := &lruCache{
		entries:    make(map[int64]*entry),
		maxEntries: defaultMaxEntries,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func keyFor(arcFt float64) int64 {
	return int64(math.Round(arcFt * keyScale))
}

// Get returns the cached result for arcFt and marks it most recently used.
func (c *lruCache) Get(_ context.Context, arcFt float64) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[keyFor(arcFt)]
	if !ok {
		metrics.RecordCacheMiss()
		return Result{}, false
	}
	c.moveToFront(e)
	metrics.RecordCacheHit()
	return e.res, true
}

// Put stores the result for arcFt, evicting the least recently used entry
// when the cache is full.
func (c *lruCache) Put(_ context.Context, arcFt float64, res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := keyFor(arcFt)
	if e, ok := c.entries[key]; ok {
		e.res = res
		c.moveToFront(e)
		return
	}

	if len(c.entries) >= c.maxEntries {
		c.evictOldest()
	}

	e := &entry{key: key, res: res}
	c.pushFront(e)
	c.entries[key] = e
	metrics.UpdateCacheEntries(len(c.entries))
}

// Len returns the current number of cached entries.
func (c *lruCache) Len(_ context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *lruCache) pushFront(e *entry) {
	e.prev = nil
	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e
	if c.tail == nil {
		c.tail = e
	}
}

func (c *lruCache) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}
	e.prev, e.next = nil, nil
}

func (c *lruCache) moveToFront(e *entry) {
	if c.head == e {
		return
	}
	c.unlink(e)
	c.pushFront(e)
}

func (c *lruCache) evictOldest() {
	if c.tail == nil {
		return
	}
	oldest := c.tail
	c.unlink(oldest)
	delete(c.entries, oldest.key)
}
