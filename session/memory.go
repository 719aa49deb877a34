package session

import (
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	values  map[string][]byte
	expires time.Time
}

// MemoryStore - process local Store, used in tests and single node setups
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time
}

// NewMemoryStore -
func NewMemoryStore(ttl time.Duration) *MemoryStore {

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get -
func (s *MemoryStore) Get(sid, key string, dst interface{}) error {

	s.mu.Lock()
	e, ok := s.sessions[sid]
	if ok && s.now().After(e.expires) {
		delete(s.sessions, sid)
		ok = false
	}
	var b []byte
	if ok {
		b, ok = e.values[key]
	}
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	return json.Unmarshal(b, dst)
}

// Set -
func (s *MemoryStore) Set(sid, key string, value interface{}) error {

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[sid]
	if !ok {
		e = &entry{values: make(map[string][]byte)}
		s.sessions[sid] = e
	}

	e.values[key] = b
	e.expires = s.now().Add(s.ttl)

	return nil
}

// Delete -
func (s *MemoryStore) Delete(sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}

// Purge - drops expired sessions, returns how many
func (s *MemoryStore) Purge() int {

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int

	for sid, e := range s.sessions {
		if s.now().After(e.expires) {
			delete(s.sessions, sid)
			n++
		}
	}

	return n
}
