// Package cache holds the parsed-link cache shared by every window.
package cache

import "sync"

// node is an entry in the recency ring. The ring's sentinel has no key.
type node[K comparable, V any] struct {
	key        K
	value      V
	prev, next *node[K, V]
}

// LRU is a bounded least-recently-used cache implementing port.Cache.
// Safe for concurrent use.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	index    map[K]*node[K, V]
	ring     node[K, V] // ring.next is the most recent entry

	hits, misses uint64
}

// NewLRU returns a cache holding at most capacity entries; values below one
// are raised to one.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	c := &LRU[K, V]{capacity: max(capacity, 1)}
	c.reset()
	return c
}

func (c *LRU[K, V]) reset() {
	c.index = make(map[K]*node[K, V], c.capacity)
	c.ring.prev, c.ring.next = &c.ring, &c.ring
}

func (c *LRU[K, V]) unlink(n *node[K, V]) {
	n.prev.next, n.next.prev = n.next, n.prev
}

func (c *LRU[K, V]) pushFront(n *node[K, V]) {
	n.prev, n.next = &c.ring, c.ring.next
	c.ring.next.prev = n
	c.ring.next = n
}

func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.index[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}
	c.hits++
	c.unlink(n)
	c.pushFront(n)
	return n.value, true
}

func (c *LRU[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if n, ok := c.index[key]; ok {
		n.value = value
		c.unlink(n)
		c.pushFront(n)
		return
	}
	if len(c.index) >= c.capacity {
		oldest := c.ring.prev
		c.unlink(oldest)
		delete(c.index, oldest.key)
	}
	n := &node[K, V]{key: key, value: value}
	c.index[key] = n
	c.pushFront(n)
}

func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if n, ok := c.index[key]; ok {
		c.unlink(n)
		delete(c.index, key)
	}
}

func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.index)
}

// Stats returns the hit and miss counters since creation.
func (c *LRU[K, V]) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}

// Clear drops every entry and keeps the counters.
func (c *LRU[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}
