package search

import (
	"context"
	"sync"
	"time"
)

// Pipeline runs one search to a terminal outcome.
type Pipeline interface {
	Search(ctx context.Context, query string) Outcome
}

// Session holds the single outcome slot a widget renders from.
// Each submission takes a sequence token; only the most recently dispatched
// submission may write its result, so a slow earlier search can never
// overwrite a newer one.
type Session struct {
	pipeline Pipeline

	mu       sync.Mutex
	seq      uint64
	outcome  Outcome
	lastUsed time.Time
	now      func() time.Time
}

func NewSession(pipeline Pipeline) *Session {
	s := &Session{
		pipeline: pipeline,
		outcome:  Idle(),
		now:      time.Now,
	}
	s.lastUsed = s.now()
	return s
}

// Submit moves the session to Loading, runs the pipeline, and commits the
// terminal outcome if no newer submission was dispatched meanwhile.
// The returned outcome is this submission's own result either way.
func (s *Session) Submit(ctx context.Context, query string) Outcome {
	token := s.begin(query)
	result := s.pipeline.Search(ctx, query)
	s.commit(token, result)
	return result
}

// Current returns the outcome currently visible in the slot.
func (s *Session) Current() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUsed = s.now()
	return s.outcome
}

// IdleSince returns when the session was last touched.
func (s *Session) IdleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastUsed
}

func (s *Session) begin(query string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.outcome = Loading(query)
	s.lastUsed = s.now()
	return s.seq
}

// commit reports whether the result was written.
func (s *Session) commit(token uint64, result Outcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq {
		return false
	}
	s.outcome = result
	s.lastUsed = s.now()
	return true
}
