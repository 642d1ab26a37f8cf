package services

import (
	"sort"
	"sync"
	"time"
)

// MetricsService provides application metrics and monitoring
type MetricsService interface {
	IncrementCounter(name string, tags map[string]string)
	RecordDuration(name string, duration time.Duration, tags map[string]string)
	SetGauge(name string, value float64, tags map[string]string)
	GetMetrics() map[string]interface{}
	Reset()
}

// Counter represents a monotonically increasing counter
type Counter struct {
	Value int64             `json:"value"`
	Tags  map[string]string `json:"tags,omitempty"`
}

// Histogram represents duration measurements
type Histogram struct {
	Count   int64             `json:"count"`
	Sum     time.Duration     `json:"sum"`
	Min     time.Duration     `json:"min"`
	Max     time.Duration     `json:"max"`
	Average time.Duration     `json:"average"`
	Tags    map[string]string `json:"tags,omitempty"`
	Buckets map[string]int64  `json:"buckets"`
}

// Gauge represents a value that can go up and down
type Gauge struct {
	Value float64           `json:"value"`
	Tags  map[string]string `json:"tags,omitempty"`
}

// InMemoryMetrics implements MetricsService using in-memory storage
type InMemoryMetrics struct {
	mu         sync.RWMutex
	counters   map[string]*Counter
	histograms map[string]*Histogram
	gauges     map[string]*Gauge
	startTime  time.Time
}

// NewInMemoryMetrics creates a new in-memory metrics service
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		counters:   make(map[string]*Counter),
		histograms: make(map[string]*Histogram),
		gauges:     make(map[string]*Gauge),
		startTime:  time.Now(),
	}
}

// IncrementCounter increments a counter metric
func (m *InMemoryMetrics) IncrementCounter(name string, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := metricKey(name, tags)
	if counter, exists := m.counters[key]; exists {
		counter.Value++
	} else {
		m.counters[key] = &Counter{
			Value: 1,
			Tags:  tags,
		}
	}
}

// RecordDuration records a duration measurement
func (m *InMemoryMetrics) RecordDuration(name string, duration time.Duration, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := metricKey(name, tags)
	histogram, exists := m.histograms[key]
	if !exists {
		histogram = &Histogram{
			Min:     duration,
			Tags:    tags,
			Buckets: make(map[string]int64),
		}
		m.histograms[key] = histogram
	}

	histogram.Count++
	histogram.Sum += duration
	if duration < histogram.Min {
		histogram.Min = duration
	}
	if duration > histogram.Max {
		histogram.Max = duration
	}
	histogram.Average = histogram.Sum / time.Duration(histogram.Count)

	updateBuckets(histogram, duration)
}

// SetGauge sets a gauge value
func (m *InMemoryMetrics) SetGauge(name string, value float64, tags map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gauges[metricKey(name, tags)] = &Gauge{
		Value: value,
		Tags:  tags,
	}
}

// GetMetrics returns all collected metrics
func (m *InMemoryMetrics) GetMetrics() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metrics := make(map[string]interface{})

	metrics["system"] = map[string]interface{}{
		"uptime":     time.Since(m.startTime).String(),
		"start_time": m.startTime.Format(time.RFC3339),
	}

	if len(m.counters) > 0 {
		counters := make(map[string]*Counter, len(m.counters))
		for k, v := range m.counters {
			counters[k] = v
		}
		metrics["counters"] = counters
	}

	if len(m.histograms) > 0 {
		histograms := make(map[string]*Histogram, len(m.histograms))
		for k, v := range m.histograms {
			histograms[k] = v
		}
		metrics["histograms"] = histograms
	}

	if len(m.gauges) > 0 {
		gauges := make(map[string]*Gauge, len(m.gauges))
		for k, v := range m.gauges {
			gauges[k] = v
		}
		metrics["gauges"] = gauges
	}

	return metrics
}

// Reset clears all metrics
func (m *InMemoryMetrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.counters = make(map[string]*Counter)
	m.histograms = make(map[string]*Histogram)
	m.gauges = make(map[string]*Gauge)
	m.startTime = time.Now()
}

// metricKey creates a unique key for metrics with tags. Tag keys are
// sorted so the same tag set always yields the same key.
func metricKey(name string, tags map[string]string) string {
	if len(tags) == 0 {
		return name
	}
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	key := name
	for _, k := range keys {
		key += "|" + k + ":" + tags[k]
	}
	return key
}

// updateBuckets updates histogram buckets for percentile calculation
func updateBuckets(histogram *Histogram, duration time.Duration) {
	buckets := []struct {
		name  string
		limit time.Duration
	}{
		{"10ms", 10 * time.Millisecond},
		{"50ms", 50 * time.Millisecond},
		{"100ms", 100 * time.Millisecond},
		{"250ms", 250 * time.Millisecond},
		{"500ms", 500 * time.Millisecond},
		{"1s", time.Second},
		{"2.5s", 2500 * time.Millisecond},
		{"5s", 5 * time.Second},
		{"10s", 10 * time.Second},
		{"30s", 30 * time.Second},
	}

	for _, bucket := range buckets {
		if duration <= bucket.limit {
			histogram.Buckets[bucket.name]++
		}
	}
	histogram.Buckets["+Inf"]++
}
