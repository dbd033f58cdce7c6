package dnd

import "sync"

// Scheduler defers work to the next frame
type Scheduler interface {
	Schedule(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface
type SchedulerFunc func(fn func())

// Schedule calls f(fn)
func (f SchedulerFunc) Schedule(fn func()) {
	f(fn)
}

// FrameScheduler queues callbacks until the host renders its next frame and
// calls Flush.
type FrameScheduler struct {
	mu      sync.Mutex
	pending []func()
}

// NewFrameScheduler creates an empty frame scheduler
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

// Schedule queues fn for the next Flush
func (s *FrameScheduler) Schedule(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.pending = append(s.pending, fn)
	s.mu.Unlock()
}

// Pending returns the number of queued callbacks
func (s *FrameScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Flush runs the callbacks queued so far and returns how many ran.
// Callbacks scheduled while flushing wait for the following frame.
func (s *FrameScheduler) Flush() int {
	s.mu.Lock()
	batch := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}
