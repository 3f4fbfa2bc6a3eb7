// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rhythmkit/osr/internal/stats"
)

// blockSizeBuckets covers compressed frame blocks: a frameless replay
// compresses to tens of bytes, a full-length standard play to tens of KB.
var blockSizeBuckets = prometheus.ExponentialBuckets(64, 4, 10)

// Collector implements stats.Collector using Prometheus metrics. Metrics
// are created lazily on first use and registered once.
type Collector struct {
	registry prometheus.Registerer

	mu         sync.RWMutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	return &Collector{
		registry:   registry,
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	c.getOrCreateCounter(name).Add(float64(delta))
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	c.getOrCreateGauge(name).Set(float64(value))
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64) {
	c.getOrCreateHistogram(name).Observe(value)
}

func (c *Collector) getOrCreateCounter(name string) prometheus.Counter {
	c.mu.RLock()
	counter, ok := c.counters[name]
	c.mu.RUnlock()
	if ok {
		return counter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, ok = c.counters[name]; ok {
		return counter
	}

	counter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: name,
		Help: helpFor(name),
	})
	if err := c.registry.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			counter = are.ExistingCollector.(prometheus.Counter)
		}
	}
	c.counters[name] = counter
	return counter
}

func (c *Collector) getOrCreateGauge(name string) prometheus.Gauge {
	c.mu.RLock()
	gauge, ok := c.gauges[name]
	c.mu.RUnlock()
	if ok {
		return gauge
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gauge, ok = c.gauges[name]; ok {
		return gauge
	}

	gauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: name,
		Help: helpFor(name),
	})
	if err := c.registry.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			gauge = are.ExistingCollector.(prometheus.Gauge)
		}
	}
	c.gauges[name] = gauge
	return gauge
}

func (c *Collector) getOrCreateHistogram(name string) prometheus.Histogram {
	c.mu.RLock()
	histogram, ok := c.histograms[name]
	c.mu.RUnlock()
	if ok {
		return histogram
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if histogram, ok = c.histograms[name]; ok {
		return histogram
	}

	opts := prometheus.HistogramOpts{
		Name: name,
		Help: helpFor(name),
	}
	if name == stats.MetricFrameBlockSize {
		opts.Buckets = blockSizeBuckets
	}

	histogram = prometheus.NewHistogram(opts)
	if err := c.registry.Register(histogram); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			histogram = are.ExistingCollector.(prometheus.Histogram)
		}
	}
	c.histograms[name] = histogram
	return histogram
}

// helpFor maps the library's metric names to help strings; unknown names
// fall back to the name itself so ad-hoc metrics still register.
func helpFor(name string) string {
	switch name {
	case stats.MetricDecodes:
		return "Replays decoded successfully."
	case stats.MetricDecodeFailures:
		return "Replay decode failures."
	case stats.MetricEncodes:
		return "Replays encoded successfully."
	case stats.MetricEncodeFailures:
		return "Replay encode failures."
	case stats.MetricFramesParsed:
		return "Input frames parsed from frame streams."
	case stats.MetricTokensSkipped:
		return "Malformed frame tokens skipped during tolerant parsing."
	case stats.MetricFrameBlockSize:
		return "Compressed frame block size in bytes."
	case stats.MetricStoreReads:
		return "Replay buffers read from the backing store."
	case stats.MetricCacheHits:
		return "Replay cache hits."
	case stats.MetricCacheMisses:
		return "Replay cache misses."
	case stats.MetricCacheSize:
		return "Replay buffers currently cached."
	default:
		return name
	}
}
