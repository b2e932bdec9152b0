// Package cache provides bounded caches for font assets.
package cache

import (
	"container/list"
	"sync"
)

// EvictFunc is called with every entry that leaves the cache through capacity
// eviction, Remove, or Clear. It runs after the cache lock is released.
type EvictFunc[K comparable, V any] func(key K, value V)

// LRU is a thread-safe least-recently-used cache with a fixed capacity.
// Get and Set both mark an entry as recently used.
type LRU[K comparable, V any] struct {
	capacity int
	onEvict  EvictFunc[K, V]

	mu    sync.Mutex
	items map[K]*list.Element
	order *list.List // front = most recent
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRU creates a cache holding at most capacity entries.
// A non-positive capacity is treated as 1. onEvict may be nil.
func NewLRU[K comparable, V any](capacity int, onEvict EvictFunc[K, V]) *LRU[K, V] {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRU[K, V]{
		capacity: capacity,
		onEvict:  onEvict,
		items:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get retrieves a value and marks it as recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.order.MoveToFront(elem)
		return elem.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set adds or replaces a value. The replaced value is passed to the evict hook.
func (c *LRU[K, V]) Set(key K, value V) {
	var evicted []*entry[K, V]

	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		e := elem.Value.(*entry[K, V])
		evicted = append(evicted, &entry[K, V]{key: key, value: e.value})
		e.value = value
		c.order.MoveToFront(elem)
	} else {
		if c.order.Len() >= c.capacity {
			if oldest := c.order.Back(); oldest != nil {
				e := oldest.Value.(*entry[K, V])
				c.order.Remove(oldest)
				delete(c.items, e.key)
				evicted = append(evicted, e)
			}
		}
		c.items[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
	}
	c.mu.Unlock()

	c.notify(evicted)
}

// Remove deletes a key. Missing keys are a no-op.
func (c *LRU[K, V]) Remove(key K) bool {
	c.mu.Lock()
	elem, ok := c.items[key]
	if ok {
		c.order.Remove(elem)
		delete(c.items, key)
	}
	c.mu.Unlock()

	if ok {
		c.notify([]*entry[K, V]{elem.Value.(*entry[K, V])})
	}
	return ok
}

// Len returns the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// Keys returns cached keys from most to least recently used.
func (c *LRU[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]K, 0, c.order.Len())
	for e := c.order.Front(); e != nil; e = e.Next() {
		keys = append(keys, e.Value.(*entry[K, V]).key)
	}
	return keys
}

// Clear removes every entry.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	evicted := make([]*entry[K, V], 0, c.order.Len())
	for e := c.order.Front(); e != nil; e = e.Next() {
		evicted = append(evicted, e.Value.(*entry[K, V]))
	}
	c.items = make(map[K]*list.Element)
	c.order.Init()
	c.mu.Unlock()

	c.notify(evicted)
}

func (c *LRU[K, V]) notify(evicted []*entry[K, V]) {
	if c.onEvict == nil {
		return
	}
	for _, e := range evicted {
		c.onEvict(e.key, e.value)
	}
}
