package rest

import (
	"sync"
	"time"
)

// Scheduler arms a single one-shot deadline timer for the rest
// countdown. The timer fires exactly once at the wall-clock deadline,
// independent of any UI polling. Cancel invalidates the captured timer,
// so a firing that was already queued cannot resurrect cleared state.
type Scheduler struct {
	mu     sync.Mutex
	timer  *time.Timer
	endsAt *time.Time
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Schedule replaces any pending deadline with a new one. The fire
// callback runs once, at endsAt, unless canceled or replaced first.
func (s *Scheduler) Schedule(endsAt time.Time, fire func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelLocked()

	end := endsAt
	s.endsAt = &end

	var t *time.Timer
	t = time.AfterFunc(time.Until(endsAt), func() {
		s.mu.Lock()
		if s.timer != t {
			// canceled or replaced while this firing was in flight
			s.mu.Unlock()
			return
		}
		s.timer = nil
		s.endsAt = nil
		s.mu.Unlock()

		fire()
	})
	s.timer = t
}

// Cancel stops the pending deadline, if any. Safe to call repeatedly.
func (s *Scheduler) Cancel() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancelLocked()
}

func (s *Scheduler) cancelLocked() bool {
	if s.timer == nil {
		return false
	}
	s.timer.Stop()
	s.timer = nil
	s.endsAt = nil
	return true
}

// EndsAt returns the currently scheduled deadline, nil when idle.
func (s *Scheduler) EndsAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.endsAt == nil {
		return nil
	}
	end := *s.endsAt
	return &end
}

func (s *Scheduler) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
