package cache

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheGetSet(t *testing.T) {
	c := NewMemoryCache(0)

	_, ok := c.Get("fp1")
	assert.False(t, ok)

	c.Set("fp1", 42.5)
	cost, ok := c.Get("fp1")
	require.True(t, ok)
	assert.Equal(t, 42.5, cost)

	// Overwrite keeps a single entry.
	c.Set("fp1", 40.0)
	cost, ok = c.Get("fp1")
	require.True(t, ok)
	assert.Equal(t, 40.0, cost)
	assert.Equal(t, 1, c.Stats().Size)
}

func TestMemoryCacheLRUEviction(t *testing.T) {
	c := NewMemoryCache(2)

	c.Set("a", 1)
	c.Set("b", 2)

	// Touch "a" so "b" becomes the eviction victim.
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Set("c", 3)

	_, ok = c.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Evictions)
	assert.Equal(t, 2, stats.Size)
}

func TestMemoryCacheStats(t *testing.T) {
	c := NewMemoryCache(0)

	c.Set("a", 1)
	c.Get("a")
	c.Get("missing")

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(1), stats.Sets)
	assert.False(t, stats.LastAccess.IsZero())
}

func TestMemoryCacheClear(t *testing.T) {
	c := NewMemoryCache(0)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()

	assert.Equal(t, 0, c.Stats().Size)
	_, ok := c.Get("a")
	assert.False(t, ok)
}

func TestMemoryCacheConcurrentAccess(t *testing.T) {
	c := NewMemoryCache(0)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("fp%d", i%10)
				c.Set(key, float64(i))
				c.Get(key)
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 10, c.Stats().Size)
}
