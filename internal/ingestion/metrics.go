package ingestion

import (
	"sync"
	"time"
)

// IngestMetrics counts telemetry message outcomes.
type IngestMetrics struct {
	MessagesReceived int64     `json:"messages_received"`
	MessagesApplied  int64     `json:"messages_applied"`
	MessagesFailed   int64     `json:"messages_failed"`
	LastMessageAt    time.Time `json:"last_message_at"`
}

// MetricsTracker is a mutex-guarded metrics holder.
type MetricsTracker struct {
	mu      sync.Mutex
	metrics IngestMetrics
}

func NewMetricsTracker() *MetricsTracker {
	return &MetricsTracker{}
}

func (t *MetricsTracker) Update(fn func(m *IngestMetrics)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.metrics)
}

func (t *MetricsTracker) Snapshot() IngestMetrics {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.metrics
}
