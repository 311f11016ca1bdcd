package goRBAC

import (
	"testing"
	"time"
)

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricGrant)
	m.Inc(MetricGrant)
	m.Add(MetricCheckDenied, 5)

	if got := m.Value(MetricGrant); got != 2 {
		t.Fatalf("Value(MetricGrant) = %d, want 2", got)
	}

	s := m.Snapshot()
	if s.Counters[MetricGrant] != 2 || s.Counters[MetricCheckDenied] != 5 {
		t.Fatalf("snapshot = %+v", s.Counters)
	}
	if s.Counters[MetricRevoke] != 0 {
		t.Fatalf("untouched counter = %d, want 0", s.Counters[MetricRevoke])
	}
}

func TestMetricsDisabledIsNoOp(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricGrant)
	m.Observe(MetricCheckLatency, time.Millisecond)

	if m.Value(MetricGrant) != 0 {
		t.Fatal("disabled metrics must not count")
	}
	if s := m.Snapshot(); len(s.Counters) != 0 {
		t.Fatalf("disabled snapshot counters = %+v", s.Counters)
	}

	var nilMetrics *Metrics
	nilMetrics.Inc(MetricGrant)
	if nilMetrics.Value(MetricGrant) != 0 {
		t.Fatal("nil metrics must be a no-op")
	}
}

func TestObserveGatedToLatencyMetric(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricGrant, time.Millisecond)
	m.Observe(MetricCheckLatency, time.Millisecond)
	m.Observe(MetricCheckLatency, 600*time.Millisecond)

	s := m.Snapshot()
	buckets, ok := s.Histograms[MetricCheckLatency]
	if !ok {
		t.Fatal("latency histogram missing from snapshot")
	}
	if buckets[0] != 1 {
		t.Fatalf("bucket 0 = %d, want 1", buckets[0])
	}
	if buckets[histBucketCount-1] != 1 {
		t.Fatalf("overflow bucket = %d, want 1", buckets[histBucketCount-1])
	}
	if _, ok := s.Histograms[MetricGrant]; ok {
		t.Fatal("non-latency metric must not grow a histogram")
	}
}

func TestObserveRequiresHistogramsEnabled(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: false})

	m.Observe(MetricCheckLatency, time.Millisecond)

	if s := m.Snapshot(); len(s.Histograms) != 0 {
		t.Fatalf("histograms = %+v, want none", s.Histograms)
	}
}

func TestBucketIndexThresholds(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{0, 0},
		{5 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
		{10 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{50 * time.Millisecond, 3},
		{100 * time.Millisecond, 4},
		{250 * time.Millisecond, 5},
		{500 * time.Millisecond, 6},
		{time.Second, 7},
	}

	for _, tc := range cases {
		if got := bucketIndex(tc.d); got != tc.want {
			t.Errorf("bucketIndex(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
