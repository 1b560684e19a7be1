package signup

import (
	"sync"
	"time"

	"mentorloop/internal/domain"

	"github.com/google/uuid"
)

// SessionStore keeps server-side workflows keyed by an opaque id. A
// form abandoned mid-way simply expires; nothing about it is persisted.
type SessionStore struct {
	mu       sync.Mutex
	ttl      time.Duration
	sessions map[string]*session
}

type session struct {
	wf        *Workflow
	expiresAt time.Time
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		sessions: make(map[string]*session),
	}
}

// Create opens a fresh workflow and returns its id.
func (s *SessionStore) Create(variant domain.Variant, svc *Service) (string, *Workflow) {
	id := uuid.NewString()
	wf := NewWorkflow(variant, svc)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = &session{wf: wf, expiresAt: time.Now().Add(s.ttl)}
	return id, wf
}

// Get returns the workflow and slides its expiry. Expired entries are
// treated as missing.
func (s *SessionStore) Get(id string) (*Workflow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.sessions, id)
		return nil, ErrSessionNotFound
	}
	entry.expiresAt = time.Now().Add(s.ttl)
	return entry.wf, nil
}

func (s *SessionStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// PurgeExpired removes dead sessions and reports how many went.
func (s *SessionStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	removed := 0
	for id, entry := range s.sessions {
		if now.After(entry.expiresAt) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Len reports live sessions (expired ones included until purged).
func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
