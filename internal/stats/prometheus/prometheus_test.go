package prometheus

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/rhythmkit/osr/internal/stats"
)

func gatherMetric(t *testing.T, reg *prometheus.Registry, name string) *dto.MetricFamily {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	for _, mf := range families {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func TestIncCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.IncCounter(stats.MetricDecodes, 5)
	c.IncCounter(stats.MetricDecodes, 3)

	mf := gatherMetric(t, reg, stats.MetricDecodes)
	if mf == nil {
		t.Fatalf("metric %s not registered", stats.MetricDecodes)
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 8 {
		t.Errorf("counter value = %v, want 8", got)
	}
	if got := mf.GetHelp(); got != "Replays decoded successfully." {
		t.Errorf("help = %q, want decode help text", got)
	}
}

func TestSetGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.SetGauge(stats.MetricCacheSize, 42)
	c.SetGauge(stats.MetricCacheSize, 17)

	mf := gatherMetric(t, reg, stats.MetricCacheSize)
	if mf == nil {
		t.Fatalf("metric %s not registered", stats.MetricCacheSize)
	}
	if got := mf.GetMetric()[0].GetGauge().GetValue(); got != 17 {
		t.Errorf("gauge value = %v, want 17", got)
	}
}

func TestObserveHistogram_BlockSizeBuckets(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	c.ObserveHistogram(stats.MetricFrameBlockSize, 120)
	c.ObserveHistogram(stats.MetricFrameBlockSize, 48_000)

	mf := gatherMetric(t, reg, stats.MetricFrameBlockSize)
	if mf == nil {
		t.Fatalf("metric %s not registered", stats.MetricFrameBlockSize)
	}

	h := mf.GetMetric()[0].GetHistogram()
	if got := h.GetSampleCount(); got != 2 {
		t.Errorf("sample count = %v, want 2", got)
	}
	if got := len(h.GetBucket()); got != len(blockSizeBuckets) {
		t.Errorf("bucket count = %d, want %d", got, len(blockSizeBuckets))
	}
	// The first bucket boundary is 64 bytes; neither observation fits it.
	if got := h.GetBucket()[0].GetCumulativeCount(); got != 0 {
		t.Errorf("first bucket count = %d, want 0", got)
	}
}

func TestMetricsCreatedOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	for i := 0; i < 3; i++ {
		c.IncCounter(stats.MetricEncodes, 1)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	count := 0
	for _, mf := range families {
		if mf.GetName() == stats.MetricEncodes {
			count++
		}
	}
	if count != 1 {
		t.Errorf("registered %d families named %s, want 1", count, stats.MetricEncodes)
	}
}

func TestAlreadyRegisteredCounterIsReused(t *testing.T) {
	reg := prometheus.NewRegistry()

	existing := prometheus.NewCounter(prometheus.CounterOpts{
		Name: stats.MetricDecodeFailures,
		Help: "Replay decode failures.",
	})
	reg.MustRegister(existing)
	existing.Add(100)

	c := New(reg)
	c.IncCounter(stats.MetricDecodeFailures, 5)

	mf := gatherMetric(t, reg, stats.MetricDecodeFailures)
	if mf == nil {
		t.Fatalf("metric %s not registered", stats.MetricDecodeFailures)
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 105 {
		t.Errorf("counter value = %v, want 105", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := New(reg)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.IncCounter(stats.MetricFramesParsed, 1)
				c.SetGauge(stats.MetricCacheSize, int64(j))
				c.ObserveHistogram(stats.MetricFrameBlockSize, float64(j))
			}
		}()
	}
	wg.Wait()

	mf := gatherMetric(t, reg, stats.MetricFramesParsed)
	if mf == nil {
		t.Fatal("counter not registered")
	}
	if got := mf.GetMetric()[0].GetCounter().GetValue(); got != 1000 {
		t.Errorf("counter value = %v, want 1000", got)
	}

	mf = gatherMetric(t, reg, stats.MetricFrameBlockSize)
	if mf == nil {
		t.Fatal("histogram not registered")
	}
	if got := mf.GetMetric()[0].GetHistogram().GetSampleCount(); got != 1000 {
		t.Errorf("histogram count = %v, want 1000", got)
	}
}
