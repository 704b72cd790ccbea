package impl

import (
	"sync"
	"time"

	"harvest/internal/domain/entity"
)

// checkoutSession is the transient pipeline state between opening the
// hosted payment flow and the gateway's verdict. It mirrors the source's
// client-held state machine: never persisted, lost on restart, at which
// point the gateway verdict simply finds no session and the user retries.
type checkoutSession struct {
	uid       string
	address   entity.DeliveryAddress
	createdAt time.Time
}

type sessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*checkoutSession
}

func newSessionStore(ttl time.Duration) *sessionStore {
	return &sessionStore{
		ttl:      ttl,
		sessions: make(map[string]*checkoutSession),
	}
}

func (s *sessionStore) put(orderRef string, session *checkoutSession) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	s.sessions[orderRef] = session
}

// take removes and returns the session, if present and unexpired.
func (s *sessionStore) take(orderRef string) (*checkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	session, ok := s.sessions[orderRef]
	if ok {
		delete(s.sessions, orderRef)
	}

	return session, ok
}

// takeOwned removes and returns the session only when it belongs to uid.
// A mismatched uid leaves the session in place for its owner.
func (s *sessionStore) takeOwned(orderRef, uid string) (*checkoutSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	session, ok := s.sessions[orderRef]
	if !ok || session.uid != uid {
		return nil, false
	}
	delete(s.sessions, orderRef)

	return session, true
}

// prune drops expired sessions; callers hold the lock.
func (s *sessionStore) prune() {
	if s.ttl <= 0 {
		return
	}

	cutoff := time.Now().Add(-s.ttl)
	for ref, session := range s.sessions {
		if session.createdAt.Before(cutoff) {
			delete(s.sessions, ref)
		}
	}
}
