package booking

import (
	"sync"
	"time"

	"firstcut/models"
)

// SessionStore holds quoted bookings awaiting payment confirmation, keyed by
// booking ID. Sessions are purely in-memory and expire after the configured
// TTL; an expired quote must be requoted.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]sessionEntry
}

type sessionEntry struct {
	details   models.BookingDetails
	expiresAt time.Time
}

// NewSessionStore returns a session store with the given entry lifetime.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]sessionEntry),
	}
}

// Put stores a quoted booking under its ID, replacing any previous quote with
// the same ID.
func (s *SessionStore) Put(details models.BookingDetails) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	s.sessions[details.ID] = sessionEntry{
		details:   details,
		expiresAt: time.Now().Add(s.ttl),
	}
}

// Take removes and returns the quoted booking for the ID. The second return
// is false when the session is missing or expired.
func (s *SessionStore) Take(id string) (models.BookingDetails, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune()
	entry, ok := s.sessions[id]
	if !ok {
		return models.BookingDetails{}, false
	}
	delete(s.sessions, id)
	return entry.details, true
}

// prune drops expired entries. Caller must hold the lock.
func (s *SessionStore) prune() {
	now := time.Now()
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
		}
	}
}
