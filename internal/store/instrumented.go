package store

// instrumentedStore wraps a Store and records hit, miss and size metrics
// under the given group label.
type instrumentedStore struct {
	inner Store
	group string
}

// newInstrumentedStore wraps inner with metric instrumentation for the given group.
// The size gauge is computed at scrape time, which stays correct when a backend
// like Redis expires pages on its own.
func newInstrumentedStore(inner Store, group string) *instrumentedStore {
	registerPagesCollector(group, inner.Len)
	return &instrumentedStore{inner: inner, group: group}
}

func (s *instrumentedStore) Get(key string) ([]byte, bool) {
	val, ok := s.inner.Get(key)
	if ok {
		HitsTotal.WithLabelValues(s.group).Inc()
	} else {
		MissesTotal.WithLabelValues(s.group).Inc()
	}
	return val, ok
}

func (s *instrumentedStore) Set(key string, value []byte) {
	s.inner.Set(key, value)
}

func (s *instrumentedStore) Delete(key string) {
	s.inner.Delete(key)
}

func (s *instrumentedStore) Len() int {
	return s.inner.Len()
}

// Close unregisters the size collector and closes the underlying store.
func (s *instrumentedStore) Close() error {
	unregisterPagesCollector(s.group)
	return s.inner.Close()
}
