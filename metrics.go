// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package robdd

import "github.com/prometheus/client_golang/prometheus"

// Collector exposes a Manager's Stats() as Prometheus gauges/counters,
// so a process embedding this package can register it alongside its
// other collectors without hand-rolling the usual node-count/GC-count
// dashboards.
type Collector struct {
	m *Manager

	nodeCount    *prometheus.Desc
	garbageCount *prometheus.Desc
	freeCount    *prometheus.Desc
	usedMemory   *prometheus.Desc
	gcCount      *prometheus.Desc
}

// NewCollector returns a prometheus.Collector reporting m's live stats.
func NewCollector(m *Manager) *Collector {
	labels := prometheus.Labels{"manager": m.name, "kind": m.kind}
	return &Collector{
		m: m,
		nodeCount: prometheus.NewDesc("robdd_node_count",
			"Number of allocated internal nodes, including unswept garbage.", nil, labels),
		garbageCount: prometheus.NewDesc("robdd_garbage_count",
			"Estimated number of unreachable nodes awaiting GC.", nil, labels),
		freeCount: prometheus.NewDesc("robdd_free_count",
			"Number of unallocated node-table slots.", nil, labels),
		usedMemory: prometheus.NewDesc("robdd_used_memory_bytes",
			"Approximate memory used by the node table.", nil, labels),
		gcCount: prometheus.NewDesc("robdd_gc_count_total",
			"Number of garbage-collection passes run so far.", nil, labels),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodeCount
	ch <- c.garbageCount
	ch <- c.freeCount
	ch <- c.usedMemory
	ch <- c.gcCount
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.m.Stats()
	ch <- prometheus.MustNewConstMetric(c.nodeCount, prometheus.GaugeValue, float64(s.NodeCount))
	ch <- prometheus.MustNewConstMetric(c.garbageCount, prometheus.GaugeValue, float64(s.GarbageCount))
	ch <- prometheus.MustNewConstMetric(c.freeCount, prometheus.GaugeValue, float64(s.FreeCount))
	ch <- prometheus.MustNewConstMetric(c.usedMemory, prometheus.GaugeValue, float64(s.UsedMemory))
	ch <- prometheus.MustNewConstMetric(c.gcCount, prometheus.CounterValue, float64(s.GCCount))
}
