package meshconv

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordExport is called after each export operation.
	// duration is the total time taken, err is nil if successful.
	RecordExport(duration time.Duration, err error)

	// RecordImport is called after each project import.
	// converted is the number of elements converted, skipped the number
	// skipped, duration the total time taken.
	RecordImport(converted, skipped int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordExport(time.Duration, error)    {}
func (NoopMetricsCollector) RecordImport(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ExportCount      atomic.Int64
	ExportErrors     atomic.Int64
	ExportTotalNanos atomic.Int64

	ImportCount      atomic.Int64
	ImportedElements atomic.Int64
	SkippedElements  atomic.Int64
	ImportTotalNanos atomic.Int64
}

// RecordExport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExport(duration time.Duration, err error) {
	b.ExportCount.Add(1)
	b.ExportTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ExportErrors.Add(1)
	}
}

// RecordImport implements MetricsCollector.
func (b *BasicMetricsCollector) RecordImport(converted, skipped int, duration time.Duration) {
	b.ImportCount.Add(1)
	b.ImportedElements.Add(int64(converted))
	b.SkippedElements.Add(int64(skipped))
	b.ImportTotalNanos.Add(duration.Nanoseconds())
}
