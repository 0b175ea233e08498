package workers

import (
	"github.com/MKhiriev/doc-query/internal/logger"
)

// Workers groups the background machinery of a client session.
type Workers struct {
	Scheduler Scheduler
}

// NewWorkers builds the client's background workers.
func NewWorkers(logger *logger.Logger) *Workers {
	return &Workers{Scheduler: NewScheduler(logger)}
}

// Shutdown stops every worker and waits for in-flight calls.
func (w *Workers) Shutdown() {
	if w == nil || w.Scheduler == nil {
		return
	}
	w.Scheduler.Stop()
}
