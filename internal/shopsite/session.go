package shopsite

import "sync"

// Session holds the most recently obtained access token for the lifetime of
// a Client. It starts empty, is set by a successful authentication, and is
// only replaced by another one. Concurrent writers race; the last one wins.
type Session struct {
	mu    sync.RWMutex
	token *Token
}

// Token returns a copy of the held token, or nil if none is held.
func (s *Session) Token() *Token {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == nil {
		return nil
	}
	t := *s.token
	return &t
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != nil
}

func (s *Session) set(t *Token) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = t
}
