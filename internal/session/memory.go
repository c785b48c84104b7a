package session

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	mu    sync.Mutex
	state *State
}

// MemoryStore keeps sessions in process. Idle sessions are dropped after
// the configured TTL by a janitor goroutine.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*entry
	ttl      time.Duration
	now      func() time.Time

	stop chan struct{}
	once sync.Once
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	s := &MemoryStore{
		sessions: make(map[string]*entry),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		stop:     make(chan struct{}),
	}
	go s.janitor()
	return s
}

func (s *MemoryStore) Name() string {
	return "memory"
}

func (s *MemoryStore) entry(id string) *entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		e = &entry{state: &State{UpdatedAt: s.now()}}
		s.sessions[id] = e
	}
	return e
}

func (s *MemoryStore) Update(_ context.Context, id string, fn func(*State) error) error {
	e := s.entry(id)

	e.mu.Lock()
	defer e.mu.Unlock()

	draft := e.state.clone()
	if err := fn(draft); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[id] != e {
		return ErrReset
	}
	draft.UpdatedAt = s.now()
	e.state = draft
	return nil
}

func (s *MemoryStore) Reset(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

func (s *MemoryStore) ResetAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*entry)
	return nil
}

func (s *MemoryStore) Len(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions), nil
}

// Sweep removes sessions idle for longer than the TTL.
func (s *MemoryStore) Sweep() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, e := range s.sessions {
		if !e.mu.TryLock() {
			continue
		}
		idle := e.state.UpdatedAt.Before(cutoff)
		e.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Sweep()
		case <-s.stop:
			return
		}
	}
}

func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.stop) })
}

var _ Store = (*MemoryStore)(nil)
