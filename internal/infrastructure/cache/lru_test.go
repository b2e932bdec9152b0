package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type evicted struct {
	key   string
	value int
}

func recorder() (*[]evicted, EvictFunc[string, int]) {
	var mu sync.Mutex
	var got []evicted
	return &got, func(k string, v int) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, evicted{k, v})
	}
}

func TestLRU_BasicOperations(t *testing.T) {
	cache := NewLRU[string, int](3, nil)

	cache.Set("a", 1)
	cache.Set("b", 2)

	val, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, val)

	val, ok = cache.Get("missing")
	assert.False(t, ok)
	assert.Zero(t, val)

	assert.Equal(t, 2, cache.Len())
	assert.Equal(t, []string{"a", "b"}, cache.Keys())
}

func TestLRU_CapacityEvictionCallsHook(t *testing.T) {
	got, hook := recorder()
	cache := NewLRU[string, int](2, hook)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Get("a")
	cache.Set("c", 3)

	_, ok := cache.Get("b")
	assert.False(t, ok, "b should have been evicted")
	assert.Equal(t, []evicted{{"b", 2}}, *got)
}

func TestLRU_ReplaceCallsHookWithOldValue(t *testing.T) {
	got, hook := recorder()
	cache := NewLRU[string, int](2, hook)

	cache.Set("a", 1)
	cache.Set("a", 10)

	val, _ := cache.Get("a")
	assert.Equal(t, 10, val)
	assert.Equal(t, []evicted{{"a", 1}}, *got)
	assert.Equal(t, 1, cache.Len())
}

func TestLRU_RemoveAndClear(t *testing.T) {
	got, hook := recorder()
	cache := NewLRU[string, int](4, hook)

	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Set("c", 3)

	assert.True(t, cache.Remove("a"))
	assert.False(t, cache.Remove("a"))

	cache.Clear()
	assert.Zero(t, cache.Len())
	assert.ElementsMatch(t, []evicted{{"a", 1}, {"b", 2}, {"c", 3}}, *got)

	cache.Clear()
	assert.Len(t, *got, 3)
}

func TestLRU_NonPositiveCapacity(t *testing.T) {
	cache := NewLRU[string, int](0, nil)
	cache.Set("a", 1)
	cache.Set("b", 2)
	assert.Equal(t, 1, cache.Len())
}

func TestLRU_HookMayReenterCache(t *testing.T) {
	var cache *LRU[string, int]
	cache = NewLRU[string, int](1, func(string, int) {
		_ = cache.Len()
	})
	cache.Set("a", 1)
	cache.Set("b", 2)
	cache.Clear()
	assert.Zero(t, cache.Len())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	cache := NewLRU[int, int](50, nil)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				cache.Set(g*1000+i, i)
				cache.Get(g*1000 + i)
			}
		}(g)
	}
	wg.Wait()
	require.LessOrEqual(t, cache.Len(), 50)
}
