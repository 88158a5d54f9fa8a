package store

import (
	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

func init() {
	Register("memory", newMemoryStore)
}

// memoryStore keeps pages in a bounded, expiring LRU. The least recently used
// page is dropped once Size is exceeded.
type memoryStore struct {
	inner *lru.LRU[string, []byte]
}

func newMemoryStore(cfg ProviderConfig) (Store, error) {
	var onEvict lru.EvictCallback[string, []byte]
	if cfg.OnEvict != nil {
		onEvict = func(key string, value []byte) {
			cfg.OnEvict(key, value)
		}
	}
	return &memoryStore{
		inner: lru.NewLRU[string, []byte](cfg.Size, onEvict, cfg.TTL),
	}, nil
}

func (m *memoryStore) Get(key string) ([]byte, bool) {
	value, ok := m.inner.Get(key)
	if !ok {
		return nil, false
	}
	// Re-adding resets the expiry so that TTL measures idle time
	m.inner.Add(key, value)
	return value, true
}

func (m *memoryStore) Set(key string, value []byte) {
	m.inner.Add(key, value)
}

func (m *memoryStore) Delete(key string) {
	m.inner.Remove(key)
}

func (m *memoryStore) Len() int {
	return m.inner.Len()
}

func (m *memoryStore) Close() error {
	m.inner.Purge()
	return nil
}
