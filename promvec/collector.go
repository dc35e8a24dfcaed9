// Package promvec exposes vector statistics as Prometheus metrics.
package promvec

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vector"
)

// Source is anything that can report vector statistics, typically a
// *vector.Vector.
type Source interface {
	Metrics() vector.Metrics
}

// Collector is a prometheus.Collector reporting the statistics of a set of
// named vectors. Vectors are not goroutine-safe, so a scrape must not run
// concurrently with modifications of a tracked vector.
type Collector struct {
	mtx     sync.Mutex
	sources map[string]Source

	sizeDesc          *prometheus.Desc
	capacityDesc      *prometheus.Desc
	bytesReservedDesc *prometheus.Desc
	bytesInUseDesc    *prometheus.Desc
	utilizationDesc   *prometheus.Desc
	reallocationsDesc *prometheus.Desc
	relocatedDesc     *prometheus.Desc
}

// NewCollector returns an empty collector. Metric names are prefixed with
// namespace when it is not empty.
func NewCollector(namespace string) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "vector", name),
			help,
			[]string{"vector"},
			nil,
		)
	}
	return &Collector{
		sources:           make(map[string]Source),
		sizeDesc:          desc("elements", "The current number of live elements."),
		capacityDesc:      desc("capacity", "The current number of reserved element slots."),
		bytesReservedDesc: desc("reserved_bytes", "The size in bytes of the reserved buffer."),
		bytesInUseDesc:    desc("in_use_bytes", "The size in bytes of the live elements."),
		utilizationDesc:   desc("utilization_ratio", "The ratio of live elements to capacity."),
		reallocationsDesc: desc("reallocations_total", "The number of times the buffer was replaced by a larger one."),
		relocatedDesc:     desc("relocated_elements_total", "The number of elements moved or copied into a new buffer."),
	}
}

// Track starts reporting src under name, replacing any source already
// tracked under that name.
func (c *Collector) Track(name string, src Source) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.sources[name] = src
}

// Untrack stops reporting the source tracked under name.
func (c *Collector) Untrack(name string) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	delete(c.sources, name)
}

func (c *Collector) Describe(descs chan<- *prometheus.Desc) {
	descs <- c.sizeDesc
	descs <- c.capacityDesc
	descs <- c.bytesReservedDesc
	descs <- c.bytesInUseDesc
	descs <- c.utilizationDesc
	descs <- c.reallocationsDesc
	descs <- c.relocatedDesc
}

func (c *Collector) Collect(m chan<- prometheus.Metric) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	names := make([]string, 0, len(c.sources))
	for name := range c.sources {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := c.sources[name].Metrics()
		m <- prometheus.MustNewConstMetric(c.sizeDesc, prometheus.GaugeValue, float64(s.Size), name)
		m <- prometheus.MustNewConstMetric(c.capacityDesc, prometheus.GaugeValue, float64(s.Capacity), name)
		m <- prometheus.MustNewConstMetric(c.bytesReservedDesc, prometheus.GaugeValue, float64(s.BytesReserved), name)
		m <- prometheus.MustNewConstMetric(c.bytesInUseDesc, prometheus.GaugeValue, float64(s.BytesInUse), name)
		m <- prometheus.MustNewConstMetric(c.utilizationDesc, prometheus.GaugeValue, s.Utilization, name)
		m <- prometheus.MustNewConstMetric(c.reallocationsDesc, prometheus.CounterValue, float64(s.Reallocations), name)
		m <- prometheus.MustNewConstMetric(c.relocatedDesc, prometheus.CounterValue, float64(s.Relocated), name)
	}
}
