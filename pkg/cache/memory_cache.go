package cache

import (
	"sync"
	"time"
)

// MemoryCache implements an in-memory cost cache with LRU eviction bounded
// by entry count. Zero maxEntries means unbounded, which is the usual mode
// for a single solve: the working set is the distinct candidates of one run.
type MemoryCache struct {
	mu         sync.Mutex
	entries    map[string]*memoryCacheEntry
	lruList    *lruList
	maxEntries int
	stats      Stats
}

type memoryCacheEntry struct {
	key     string
	cost    float64
	element *lruElement
}

// LRU list implementation.
type lruElement struct {
	key  string
	prev *lruElement
	next *lruElement
}

type lruList struct {
	head *lruElement
	tail *lruElement
	size int
}

func newLRUList() *lruList {
	head := &lruElement{}
	tail := &lruElement{}
	head.next = tail
	tail.prev = head
	return &lruList{head: head, tail: tail}
}

func (l *lruList) moveToFront(elem *lruElement) {
	if elem.prev == l.head {
		return // Already at front
	}
	// Remove from current position
	elem.prev.next = elem.next
	elem.next.prev = elem.prev
	// Insert at front
	elem.prev = l.head
	elem.next = l.head.next
	l.head.next.prev = elem
	l.head.next = elem
}

func (l *lruList) pushFront(key string) *lruElement {
	elem := &lruElement{key: key}
	elem.prev = l.head
	elem.next = l.head.next
	l.head.next.prev = elem
	l.head.next = elem
	l.size++
	return elem
}

func (l *lruList) removeElement(elem *lruElement) {
	elem.prev.next = elem.next
	elem.next.prev = elem.prev
	l.size--
}

func (l *lruList) back() *lruElement {
	if l.tail.prev == l.head {
		return nil
	}
	return l.tail.prev
}

// NewMemoryCache creates a new in-memory cost cache. maxEntries bounds the
// number of retained fingerprints; pass 0 for no bound.
func NewMemoryCache(maxEntries int) *MemoryCache {
	return &MemoryCache{
		entries:    make(map[string]*memoryCacheEntry),
		lruList:    newLRUList(),
		maxEntries: maxEntries,
		stats: Stats{
			MaxEntries: maxEntries,
		},
	}
}

func (c *MemoryCache) Get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		c.stats.Misses++
		return 0, false
	}

	c.lruList.moveToFront(entry.element)
	c.stats.Hits++
	c.stats.LastAccess = time.Now()
	return entry.cost, true
}

func (c *MemoryCache) Set(key string, cost float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, exists := c.entries[key]; exists {
		entry.cost = cost
		c.lruList.moveToFront(entry.element)
		c.stats.Sets++
		return
	}

	c.entries[key] = &memoryCacheEntry{
		key:     key,
		cost:    cost,
		element: c.lruList.pushFront(key),
	}
	c.stats.Sets++

	// Evict least recently used entries beyond the bound.
	for c.maxEntries > 0 && len(c.entries) > c.maxEntries {
		oldest := c.lruList.back()
		if oldest == nil {
			break
		}
		c.lruList.removeElement(oldest)
		delete(c.entries, oldest.key)
		c.stats.Evictions++
	}
}

func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*memoryCacheEntry)
	c.lruList = newLRUList()
}

func (c *MemoryCache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := c.stats
	stats.Size = len(c.entries)
	return stats
}
