package store

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
)

// newInstrumentedTestStore creates an instrumented memory store for group that is closed with the test
func newInstrumentedTestStore(t *testing.T, cfg ProviderConfig) Store {
	t.Helper()
	if cfg.TTL == 0 {
		cfg.TTL = time.Hour
	}
	s, err := New("memory", cfg)
	if err != nil {
		t.Fatalf("New instrumented store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// isolatePagesRegistry points the size collectors at a fresh registry for the duration of the test
func isolatePagesRegistry(t *testing.T) *prometheus.Registry {
	t.Helper()
	reg := prometheus.NewRegistry()
	orig := pagesReg
	pagesReg = reg
	t.Cleanup(func() { pagesReg = orig })
	return reg
}

func TestInstrumentedStore_HitsAndMisses(t *testing.T) {
	s := newInstrumentedTestStore(t, ProviderConfig{Size: 10, Group: "test-lookups"})

	hits := HitsTotal.WithLabelValues("test-lookups")
	misses := MissesTotal.WithLabelValues("test-lookups")
	hitsBefore := promtest.ToFloat64(hits)
	missesBefore := promtest.ToFloat64(misses)

	_, _ = s.Get("absent")
	s.Set("page", []byte("v"))
	_, _ = s.Get("page")
	_, _ = s.Get("page")

	if got := promtest.ToFloat64(hits) - hitsBefore; got != 2 {
		t.Errorf("Expected 2 hits, got %.0f", got)
	}
	if got := promtest.ToFloat64(misses) - missesBefore; got != 1 {
		t.Errorf("Expected 1 miss, got %.0f", got)
	}
}

func TestInstrumentedStore_Evictions(t *testing.T) {
	var evicted []string
	s := newInstrumentedTestStore(t, ProviderConfig{
		Size:  2,
		Group: "test-evict",
		OnEvict: func(key string, _ []byte) {
			evicted = append(evicted, key)
		},
	})

	counter := EvictionsTotal.WithLabelValues("test-evict")
	before := promtest.ToFloat64(counter)

	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))
	s.Set("c", []byte("3"))

	if got := promtest.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected evictions to increment by 1, got %.0f", got)
	}
	if len(evicted) != 1 || evicted[0] != "a" {
		t.Errorf("Expected caller's OnEvict to still fire for 'a', got %v", evicted)
	}
}

func TestInstrumentedStore_PagesGauge(t *testing.T) {
	reg := isolatePagesRegistry(t)
	s := newInstrumentedTestStore(t, ProviderConfig{Size: 10, Group: "test-pages"})

	expected := func(n string) string {
		return `
# HELP page_store_pages Current number of pages in the store.
# TYPE page_store_pages gauge
page_store_pages{store="test-pages"} ` + n + "\n"
	}

	if err := promtest.GatherAndCompare(reg, strings.NewReader(expected("0")), "page_store_pages"); err != nil {
		t.Fatalf("Unexpected gauge before Set: %v", err)
	}

	s.Set("x", []byte("1"))
	s.Set("y", []byte("2"))

	if err := promtest.GatherAndCompare(reg, strings.NewReader(expected("2")), "page_store_pages"); err != nil {
		t.Errorf("Unexpected gauge after two Sets: %v", err)
	}
}

func TestInstrumentedStore_CloseUnregistersGauge(t *testing.T) {
	reg := isolatePagesRegistry(t)

	s, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour, Group: "test-close"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if n, _ := promtest.GatherAndCount(reg, "page_store_pages"); n != 1 {
		t.Fatalf("Expected gauge to be registered after New, got %d series", n)
	}

	_ = s.Close()

	if n, _ := promtest.GatherAndCount(reg, "page_store_pages"); n != 0 {
		t.Fatalf("Expected gauge to be gone after Close, got %d series", n)
	}
}

func TestInstrumentedStore_Delete(t *testing.T) {
	s := newInstrumentedTestStore(t, ProviderConfig{Size: 10, Group: "test-delete"})

	s.Set("page", []byte("v"))
	s.Delete("page")
	if s.Len() != 0 {
		t.Errorf("Expected Delete to reach the inner store, Len is %d", s.Len())
	}
}
