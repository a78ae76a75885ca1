// Package lrumetrics exports cache counters as Prometheus metrics.
package lrumetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"go.expect.digital/lrucache/lru"
)

// Source is the part of a cache the collector reads. *lru.Synced satisfies it.
type Source interface {
	Len() int
	Limit() int
	Stats() lru.Stats
}

// Collector is a prometheus.Collector reading from one cache on every scrape.
type Collector struct {
	src       Source
	entries   *prometheus.Desc
	limit     *prometheus.Desc
	hits      *prometheus.Desc
	misses    *prometheus.Desc
	inserts   *prometheus.Desc
	updates   *prometheus.Desc
	evictions *prometheus.Desc
}

// NewCollector returns a collector for src. Every series carries the label cache=name.
func NewCollector(name string, src Source) *Collector {
	labels := prometheus.Labels{"cache": name}

	desc := func(metric, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName("lru", "cache", metric), help, nil, labels)
	}

	return &Collector{
		src:       src,
		entries:   desc("entries", "Number of entries currently held by the cache."),
		limit:     desc("limit", "Max number of entries, 0 if unbounded."),
		hits:      desc("hits_total", "Cumulative number of lookups that found a value."),
		misses:    desc("misses_total", "Cumulative number of lookups that found nothing."),
		inserts:   desc("inserts_total", "Cumulative number of new keys stored."),
		updates:   desc("updates_total", "Cumulative number of sets on an existing key."),
		evictions: desc("evictions_total", "Cumulative number of entries evicted by the limit."),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.limit
	ch <- c.hits
	ch <- c.misses
	ch <- c.inserts
	ch <- c.updates
	ch <- c.evictions
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	stats := c.src.Stats()

	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.src.Len()))
	ch <- prometheus.MustNewConstMetric(c.limit, prometheus.GaugeValue, float64(c.src.Limit()))
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(stats.Inserts))
	ch <- prometheus.MustNewConstMetric(c.updates, prometheus.CounterValue, float64(stats.Updates))
	ch <- prometheus.MustNewConstMetric(c.evictions, prometheus.CounterValue, float64(stats.Evictions))
}
