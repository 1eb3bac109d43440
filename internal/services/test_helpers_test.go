package services

import (
	"time"
)

// noopMetrics satisfies MetricsRecorderInterface without touching the global
// prometheus registry, which would reject duplicate registration across tests.
type noopMetrics struct{}

func (noopMetrics) IncrementCounter(name string, tags map[string]string)        {}
func (noopMetrics) RecordProcessingTime(name string, duration time.Duration)    {}
func (noopMetrics) RecordGauge(name string, value float64, t map[string]string) {}
