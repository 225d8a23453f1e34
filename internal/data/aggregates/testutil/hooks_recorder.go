package testutil

import (
	"sync"
	"time"

	"github.com/yungbote/panchayat-backend/internal/data/aggregates"
)

// HooksRecorder keeps every aggregate hook signal for later assertions.
type HooksRecorder struct {
	mu sync.Mutex

	Operations []OperationEvent
	Conflicts  []string
	Retries    []string
	SlotWrites []SlotWriteEvent
}

type OperationEvent struct {
	Name     string
	Status   string
	Duration time.Duration
}

type SlotWriteEvent struct {
	Category string
	Action   string
}

var _ aggregates.Hooks = (*HooksRecorder)(nil)

func (h *HooksRecorder) ObserveOperation(name, status string, dur time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Operations = append(h.Operations, OperationEvent{Name: name, Status: status, Duration: dur})
}

func (h *HooksRecorder) IncConflict(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Conflicts = append(h.Conflicts, name)
}

func (h *HooksRecorder) IncRetry(name string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.Retries = append(h.Retries, name)
}

func (h *HooksRecorder) ObserveSlotWrite(category, action string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.SlotWrites = append(h.SlotWrites, SlotWriteEvent{Category: category, Action: action})
}

// Statuses returns the status of every observed operation in order.
func (h *HooksRecorder) Statuses() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.Operations))
	for _, op := range h.Operations {
		out = append(out, op.Status)
	}
	return out
}
