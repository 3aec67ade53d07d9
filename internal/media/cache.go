package media

import (
	"container/list"
	"sync"

	"photo-catalog/internal/metrics"
)

// DefaultThumbnailCacheSize bounds the in-memory thumbnail cache when
// no capacity is configured.
const DefaultThumbnailCacheSize = 256

// ThumbnailCache is a bounded least-recently-used cache mapping photo id
// to rendered thumbnail bytes. One thumbnail generation task runs per
// visible grid cell, so all operations serialize through a single lock.
type ThumbnailCache struct {
	mu       sync.Mutex
	capacity int
	order    *list.List // front = most recently used
	entries  map[string]*list.Element
}

type cacheEntry struct {
	id   string
	data []byte
}

// NewThumbnailCache creates a cache holding at most capacity entries.
func NewThumbnailCache(capacity int) *ThumbnailCache {
	if capacity <= 0 {
		capacity = DefaultThumbnailCacheSize
	}
	return &ThumbnailCache{
		capacity: capacity,
		order:    list.New(),
		entries:  make(map[string]*list.Element),
	}
}

// Get returns the cached thumbnail for id and marks it recently used.
func (c *ThumbnailCache) Get(id string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[id]
	if !ok {
		metrics.ThumbnailCacheMisses.Inc()
		return nil, false
	}
	c.order.MoveToFront(el)
	metrics.ThumbnailCacheHits.Inc()
	return el.Value.(*cacheEntry).data, true
}

// Put stores a thumbnail, evicting the least recently used entry when
// the cache is full.
func (c *ThumbnailCache) Put(id string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[id]; ok {
		el.Value.(*cacheEntry).data = data
		c.order.MoveToFront(el)
		return
	}

	c.entries[id] = c.order.PushFront(&cacheEntry{id: id, data: data})

	for c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).id)
		metrics.ThumbnailCacheEvictions.Inc()
	}
}

// Remove drops the entry for id if present.
func (c *ThumbnailCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[id]; ok {
		c.order.Remove(el)
		delete(c.entries, id)
	}
}

// Clear drops every entry.
func (c *ThumbnailCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.entries = make(map[string]*list.Element)
}

// Len returns the number of cached thumbnails.
func (c *ThumbnailCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
