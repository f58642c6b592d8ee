package metrics

import (
	"context"
	"sync"

	"github.com/ecstazane/zane-crud2/infrastructure/logger"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Manager registers instruments up front and records by name afterwards, so
// handlers and middlewares never touch the otel API directly. Recording
// against an unregistered name is logged and dropped.
type Manager interface {
	NewCounter(name, description string)
	NewHistogram(name, description string, buckets ...float64)
	NewGauge(name, description string)

	IncCounter(name string, delta int64)
	RecordHistogram(name string, value float64)
	SetGauge(name string, value float64)
}

type metricsManager struct {
	meter  metric.Meter
	logger *logger.Logger

	mu         sync.RWMutex
	counters   map[string]metric.Int64Counter
	histograms map[string]metric.Float64Histogram
	gauges     map[string]metric.Float64Gauge
}

func NewMetricsManager(meter metric.Meter, log *logger.Logger) Manager {
	return &metricsManager{
		meter:      meter,
		logger:     log,
		counters:   make(map[string]metric.Int64Counter),
		histograms: make(map[string]metric.Float64Histogram),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

func (m *metricsManager) NewCounter(name, description string) {
	counter, err := m.meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		m.logger.Error("failed to register counter", zap.String("name", name), zap.Error(err))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[name] = counter
}

func (m *metricsManager) NewHistogram(name, description string, buckets ...float64) {
	histogram, err := m.meter.Float64Histogram(name,
		metric.WithDescription(description),
		metric.WithExplicitBucketBoundaries(buckets...),
	)
	if err != nil {
		m.logger.Error("failed to register histogram", zap.String("name", name), zap.Error(err))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.histograms[name] = histogram
}

func (m *metricsManager) NewGauge(name, description string) {
	gauge, err := m.meter.Float64Gauge(name, metric.WithDescription(description))
	if err != nil {
		m.logger.Error("failed to register gauge", zap.String("name", name), zap.Error(err))
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.gauges[name] = gauge
}

func (m *metricsManager) IncCounter(name string, delta int64) {
	m.mu.RLock()
	counter, ok := m.counters[name]
	m.mu.RUnlock()

	if !ok {
		m.logger.Warn("unknown counter", zap.String("name", name))
		return
	}
	counter.Add(context.Background(), delta)
}

func (m *metricsManager) RecordHistogram(name string, value float64) {
	m.mu.RLock()
	histogram, ok := m.histograms[name]
	m.mu.RUnlock()

	if !ok {
		m.logger.Warn("unknown histogram", zap.String("name", name))
		return
	}
	histogram.Record(context.Background(), value)
}

func (m *metricsManager) SetGauge(name string, value float64) {
	m.mu.RLock()
	gauge, ok := m.gauges[name]
	m.mu.RUnlock()

	if !ok {
		m.logger.Warn("unknown gauge", zap.String("name", name))
		return
	}
	gauge.Record(context.Background(), value)
}
