package store

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Page store metrics. Every series carries a "store" label holding the Group
// from ProviderConfig.
var (
	// HitsTotal counts page lookups that found saved state.
	HitsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_store_hits_total",
			Help: "Total number of page lookups that found saved state.",
		},
		[]string{"store"},
	)

	// MissesTotal counts page lookups that started from a fresh page.
	MissesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_store_misses_total",
			Help: "Total number of page lookups without saved state.",
		},
		[]string{"store"},
	)

	// EvictionsTotal counts pages dropped for capacity or idleness.
	EvictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_store_evictions_total",
			Help: "Total number of pages evicted from the store.",
		},
		[]string{"store"},
	)
)

func init() {
	prometheus.MustRegister(
		HitsTotal,
		MissesTotal,
		EvictionsTotal,
	)
}

// pagesCollector reports the number of stored pages by calling lenFunc at scrape time.
type pagesCollector struct {
	desc    *prometheus.Desc
	lenFunc func() int
}

func (c *pagesCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *pagesCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, float64(c.lenFunc()))
}

var (
	pagesCollectorMu sync.Mutex
	pagesCollectors  = make(map[string]*pagesCollector)
	// pagesReg is swapped for an isolated registry in tests.
	pagesReg prometheus.Registerer = prometheus.DefaultRegisterer
)

// registerPagesCollector registers the size collector for group, replacing any
// previous collector registered under the same group.
func registerPagesCollector(group string, lenFunc func() int) *pagesCollector {
	desc := prometheus.NewDesc(
		"page_store_pages",
		"Current number of pages in the store.",
		nil,
		prometheus.Labels{"store": group},
	)
	c := &pagesCollector{desc: desc, lenFunc: lenFunc}

	pagesCollectorMu.Lock()
	defer pagesCollectorMu.Unlock()

	if old, ok := pagesCollectors[group]; ok {
		pagesReg.Unregister(old)
	}
	pagesCollectors[group] = c
	_ = pagesReg.Register(c)
	return c
}

func unregisterPagesCollector(group string) {
	pagesCollectorMu.Lock()
	defer pagesCollectorMu.Unlock()

	if c, ok := pagesCollectors[group]; ok {
		pagesReg.Unregister(c)
		delete(pagesCollectors, group)
	}
}
