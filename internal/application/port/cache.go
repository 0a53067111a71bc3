package port

// Cache is a generic bounded cache. Implementations must be safe for
// concurrent use; the link locator shares one across windows.
type Cache[K comparable, V any] interface {
	// Get returns the cached value and whether it was present.
	Get(key K) (V, bool)

	// Set stores value under key, evicting the least recently used entry
	// when the cache is full.
	Set(key K, value V)

	// Remove deletes key.
	Remove(key K)

	// Len returns the number of cached entries.
	Len() int
}
