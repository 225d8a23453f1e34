package aggregates

import (
	"strings"
	"time"

	"github.com/yungbote/panchayat-backend/internal/observability"
)

// Slot write actions reported through Hooks.ObserveSlotWrite.
const (
	SlotCreated = "created"
	SlotUpdated = "updated"
)

// Hooks receives aggregate signals. ObserveSlotWrite fires only for committed writes.
type Hooks interface {
	ObserveOperation(name, status string, dur time.Duration)
	IncConflict(name string)
	IncRetry(name string)
	ObserveSlotWrite(category, action string)
}

type noopHooks struct{}

func (noopHooks) ObserveOperation(string, string, time.Duration) {}
func (noopHooks) IncConflict(string)                             {}
func (noopHooks) IncRetry(string)                                {}
func (noopHooks) ObserveSlotWrite(string, string)                {}

// NewObservabilityHooks forwards hook signals to Prometheus. A nil metrics yields no-op hooks.
func NewObservabilityHooks(metrics *observability.Metrics) Hooks {
	if metrics == nil {
		return noopHooks{}
	}
	return metricsHooks{metrics: metrics}
}

type metricsHooks struct {
	metrics *observability.Metrics
}

func (h metricsHooks) ObserveOperation(name, status string, dur time.Duration) {
	h.metrics.ObserveAggregateOperation(strings.TrimSpace(name), strings.TrimSpace(status), dur)
}

func (h metricsHooks) IncConflict(name string) {
	h.metrics.IncAggregateConflict(strings.TrimSpace(name))
}

func (h metricsHooks) IncRetry(name string) {
	h.metrics.IncAggregateRetry(strings.TrimSpace(name))
}

func (h metricsHooks) ObserveSlotWrite(category, action string) {
	h.metrics.IncSlotWrite(category, action)
}
