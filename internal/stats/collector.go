// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Codec metrics.
	MetricDecodes        = "osr_decodes_total"
	MetricDecodeFailures = "osr_decode_failures_total"
	MetricEncodes        = "osr_encodes_total"
	MetricEncodeFailures = "osr_encode_failures_total"
	MetricFramesParsed   = "osr_frames_parsed_total"
	MetricTokensSkipped  = "osr_frame_tokens_skipped_total"
	MetricFrameBlockSize = "osr_compressed_frame_block_bytes"

	// Store metrics.
	MetricStoreReads  = "osr_store_reads_total"
	MetricCacheHits   = "osr_replay_cache_hits_total"
	MetricCacheMisses = "osr_replay_cache_misses_total"
	MetricCacheSize   = "osr_replay_cache_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
