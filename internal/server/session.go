package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nao1215/compass/internal/workbook"
)

// session is one browser's workbook.
type session struct {
	state    workbook.State
	lastSeen time.Time
}

// Store holds workbook sessions in memory, keyed by a random UUID.
//
// Every change to a session replaces its State under the store mutex.
// States are values whose answer records are never mutated in place, so a
// State returned by Get stays valid after later updates.
type Store struct {
	mu          sync.Mutex
	sessions    map[string]*session
	ttl         time.Duration
	maxSessions int
	now         func() time.Time
}

// NewStore creates a Store that forgets sessions idle for longer than ttl
// and holds at most maxSessions sessions, but always at least one.
func NewStore(ttl time.Duration, maxSessions int) *Store {
	maxSessions = max(maxSessions, 1)
	return &Store{
		sessions:    make(map[string]*session),
		ttl:         ttl,
		maxSessions: maxSessions,
		now:         time.Now,
	}
}

// Create starts a new session with a fresh workbook and returns its ID.
// Expired sessions are swept first; when the store is still full, the least
// recently used session is evicted.
func (s *Store) Create() (string, workbook.State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)
	for len(s.sessions) > 0 && len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}

	id := uuid.NewString()
	state := workbook.New()
	s.sessions[id] = &session{state: state, lastSeen: now}
	return id, state
}

// Get returns the state of session id and marks it as used.
// It reports false for unknown or expired sessions.
func (s *Store) Get(id string) (workbook.State, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.liveLocked(id, s.now())
	if !ok {
		return workbook.State{}, false
	}
	return sess.state, true
}

// Update replaces the state of session id with fn's result.
// When fn returns an error the session keeps its previous state, and the
// error is returned along with that state.
func (s *Store) Update(id string, fn func(workbook.State) (workbook.State, error)) (workbook.State, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.liveLocked(id, s.now())
	if !ok {
		return workbook.State{}, false, nil
	}
	next, err := fn(sess.state)
	if err != nil {
		return sess.state, true, err
	}
	sess.state = next
	return next, true, nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(s.now())
	return len(s.sessions)
}

// Sweep removes expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked(s.now())
}

func (s *Store) liveLocked(id string, now time.Time) (*session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(sess.lastSeen) > s.ttl {
		delete(s.sessions, id)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *Store) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for id, sess := range s.sessions {
		if oldestID == "" || sess.lastSeen.Before(oldest) {
			oldestID, oldest = id, sess.lastSeen
		}
	}
	delete(s.sessions, oldestID)
}
