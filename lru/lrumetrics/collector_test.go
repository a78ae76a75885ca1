package lrumetrics

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.expect.digital/lrucache/lru"
)

func TestCollector(t *testing.T) {
	t.Parallel()

	c := lru.NewSynced(lru.WithLimit[string, int](2))

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 3)
	c.Set("c", 4)

	_, _ = c.Get("a")
	_, _ = c.Get("b")

	collector := NewCollector("users", c)

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(collector))

	assert.Equal(t, 7, testutil.CollectAndCount(collector))

	expected := `
# HELP lru_cache_entries Number of entries currently held by the cache.
# TYPE lru_cache_entries gauge
lru_cache_entries{cache="users"} 2
# HELP lru_cache_evictions_total Cumulative number of entries evicted by the limit.
# TYPE lru_cache_evictions_total counter
lru_cache_evictions_total{cache="users"} 1
# HELP lru_cache_hits_total Cumulative number of lookups that found a value.
# TYPE lru_cache_hits_total counter
lru_cache_hits_total{cache="users"} 1
# HELP lru_cache_inserts_total Cumulative number of new keys stored.
# TYPE lru_cache_inserts_total counter
lru_cache_inserts_total{cache="users"} 3
# HELP lru_cache_limit Max number of entries, 0 if unbounded.
# TYPE lru_cache_limit gauge
lru_cache_limit{cache="users"} 2
# HELP lru_cache_misses_total Cumulative number of lookups that found nothing.
# TYPE lru_cache_misses_total counter
lru_cache_misses_total{cache="users"} 1
# HELP lru_cache_updates_total Cumulative number of sets on an existing key.
# TYPE lru_cache_updates_total counter
lru_cache_updates_total{cache="users"} 1
`

	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected)))
}
