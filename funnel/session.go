package funnel

import "sync"

// Session holds the in-memory dialog position and collected answers of
// one user. Sessions are not persisted: a restart drops them and users
// resume with /start.
type Session struct {
	State   State
	Answers map[string]string
}

// Sessions is a concurrency-safe session registry keyed by user id.
type Sessions struct {
	mu   sync.RWMutex
	byID map[int64]*Session
}

func NewSessions() *Sessions {
	return &Sessions{byID: make(map[int64]*Session)}
}

// State returns the current dialog state, StateIdle for unknown users.
func (s *Sessions) State(userID int64) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.byID[userID]; ok {
		return sess.State
	}
	return StateIdle
}

func (s *Sessions) SetState(userID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).State = st
}

// Answer returns a previously stored answer token, "" when absent.
func (s *Sessions) Answer(userID int64, key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if sess, ok := s.byID[userID]; ok {
		return sess.Answers[key]
	}
	return ""
}

func (s *Sessions) SetAnswer(userID int64, key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.get(userID).Answers[key] = value
}

// Reset drops accumulated answers and puts the user back to the given
// state. Used when a dialog restarts from the top.
func (s *Sessions) Reset(userID int64, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[userID] = &Session{State: st, Answers: make(map[string]string)}
}

// Clear removes the session entirely.
func (s *Sessions) Clear(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, userID)
}

// get returns the session for a user, creating it if needed.
// Callers must hold the write lock.
func (s *Sessions) get(userID int64) *Session {
	sess, ok := s.byID[userID]
	if !ok {
		sess = &Session{Answers: make(map[string]string)}
		s.byID[userID] = sess
	}
	return sess
}
