package search

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionStore keeps one Session per browser, evicting sessions that have
// been idle longer than ttl.
type SessionStore struct {
	pipeline Pipeline
	ttl      time.Duration
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionStore(pipeline Pipeline, ttl time.Duration) *SessionStore {
	return &SessionStore{
		pipeline: pipeline,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for id, creating one under a fresh id when id is
// unknown, malformed or expired. The returned id is the one to hand back to
// the client.
func (st *SessionStore) Get(id string) (string, *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	st.evictLocked()

	if _, err := uuid.Parse(id); err == nil {
		if sess, ok := st.sessions[id]; ok {
			return id, sess
		}
	}

	newID := uuid.NewString()
	sess := NewSession(st.pipeline)
	sess.now = st.now
	sess.lastUsed = st.now()
	st.sessions[newID] = sess
	return newID, sess
}

// Len returns the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *SessionStore) evictLocked() {
	if st.ttl <= 0 {
		return
	}
	cutoff := st.now().Add(-st.ttl)
	for id, sess := range st.sessions {
		if sess.IdleSince().Before(cutoff) {
			delete(st.sessions, id)
		}
	}
}
