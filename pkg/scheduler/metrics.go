package scheduler

import (
	"sync/atomic"
	"time"
)

// Metrics holds the scheduler's atomic counters.
type Metrics struct {
	cycles          atomic.Int64
	bindingsChecked atomic.Int64
	togglesEmitted  atomic.Int64
	checkErrors     atomic.Int64
}

// Stats is a point-in-time snapshot of scheduler metrics.
type Stats struct {
	Cycles          int64
	BindingsChecked int64
	TogglesEmitted  int64
	CheckErrors     int64
	CollectedAt     time.Time
}

// Stats returns a snapshot of the scheduler's counters.
func (s *Scheduler) Stats() Stats {
	return Stats{
		Cycles:          s.metrics.cycles.Load(),
		BindingsChecked: s.metrics.bindingsChecked.Load(),
		TogglesEmitted:  s.metrics.togglesEmitted.Load(),
		CheckErrors:     s.metrics.checkErrors.Load(),
		CollectedAt:     time.Now(),
	}
}
