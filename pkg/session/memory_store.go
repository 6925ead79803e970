package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process memory.
// Suitable for development, single-instance deployments and tests.
type MemoryStore struct {
	sessions map[string]*Session          // token -> session
	flashes  map[string]map[string]string // session id -> key -> message
	mu       sync.Mutex
}

// NewMemoryStore creates an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		flashes:  make(map[string]map[string]string),
	}
}

// Create persists a new session.
func (m *MemoryStore) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.Token] = s.Clone()
	return nil
}

// Get retrieves a session by its cookie token.
func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	if s.IsExpired() {
		delete(m.sessions, token)
		delete(m.flashes, s.ID)
		return nil, ErrExpired
	}
	return s.Clone(), nil
}

// Update saves changes to an existing session.
// A rotated token replaces the record stored under the previous token.
func (m *MemoryStore) Update(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for token, stored := range m.sessions {
		if stored.ID == s.ID && token != s.Token {
			delete(m.sessions, token)
		}
	}
	m.sessions[s.Token] = s.Clone()
	return nil
}

// Delete removes the session stored under token together with its flashes.
func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[token]; ok {
		delete(m.flashes, s.ID)
		delete(m.sessions, token)
	}
	return nil
}

// SetFlash stores a one-shot message for the session.
func (m *MemoryStore) SetFlash(_ context.Context, sessionID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.flashes[sessionID]
	if !ok {
		bucket = make(map[string]string)
		m.flashes[sessionID] = bucket
	}
	bucket[key] = value
	return nil
}

// TakeFlash returns the message stored under key and removes it.
func (m *MemoryStore) TakeFlash(_ context.Context, sessionID, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	bucket, ok := m.flashes[sessionID]
	if !ok {
		return "", false, nil
	}
	msg, ok := bucket[key]
	if !ok {
		return "", false, nil
	}
	delete(bucket, key)
	if len(bucket) == 0 {
		delete(m.flashes, sessionID)
	}
	return msg, true, nil
}

// Len returns the number of stored sessions.
func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

var _ Store = (*MemoryStore)(nil)
