package store

// EvictCallback is called when a page is evicted from the store.
// Not all providers support eviction callbacks (e.g., Redis expires keys server-side).
type EvictCallback func(key string, value []byte)

// Store keeps serialized page state between requests, keyed by page id.
// Implementations may keep pages in memory or in an external backend like Redis/Valkey.
type Store interface {
	// Get retrieves a page and refreshes its idle TTL. Returns nil and false on a miss.
	Get(key string) ([]byte, bool)

	// Set stores a page, overwriting any previous value. The last writer wins.
	Set(key string, value []byte)

	// Delete removes a page. Deleting a missing key is a no-op.
	Delete(key string)

	// Len returns the number of pages currently held.
	Len() int

	// Close releases any resources held by the store (e.g., network connections).
	Close() error
}

// Logger receives error reports from store operations that cannot return an error.
type Logger interface {
	Error(msg string, err error)
}
