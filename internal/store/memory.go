package store

import (
	"fmt"
	"sync"

	"firportal/backend/internal/models"
)

// MemoryStore is the in-memory Store implementation. A mutex guards
// every operation so SaveFIR/UpdateFIR are atomic with respect to
// concurrent readers; reads hand out copies so stored state cannot be
// mutated from outside.
type MemoryStore struct {
	mu       sync.RWMutex
	firs     []*models.FIR
	firIndex map[string]int

	sessions     []*models.InterrogationSession
	sessionIndex map[string]int
}

// NewMemoryStore creates an empty store. Call Seed to load the demo
// data set.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		firIndex:     make(map[string]int),
		sessionIndex: make(map[string]int),
	}
}

func (m *MemoryStore) SaveFIR(fir *models.FIR) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.firIndex[fir.ID]; ok {
		return fmt.Errorf("fir %s already exists", fir.ID)
	}
	m.firIndex[fir.ID] = len(m.firs)
	m.firs = append(m.firs, fir.Clone())
	return nil
}

func (m *MemoryStore) GetFIR(id string) (*models.FIR, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.firIndex[id]
	if !ok {
		return nil, ErrNotFound
	}
	return m.firs[i].Clone(), nil
}

func (m *MemoryStore) ListFIRs() []*models.FIR {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*models.FIR, len(m.firs))
	for i, f := range m.firs {
		out[i] = f.Clone()
	}
	return out
}

func (m *MemoryStore) UpdateFIR(fir *models.FIR) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.firIndex[fir.ID]
	if !ok {
		return ErrNotFound
	}
	m.firs[i] = fir.Clone()
	return nil
}

func (m *MemoryStore) MutateFIR(id string, fn func(*models.FIR) error) (*models.FIR, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.firIndex[id]
	if !ok {
		return nil, ErrNotFound
	}

	// fn works on a clone; the stored record is only swapped once fn
	// succeeds, so a failed mutation leaves no trace.
	record := m.firs[i].Clone()
	if err := fn(record); err != nil {
		return nil, err
	}
	m.firs[i] = record
	return record.Clone(), nil
}

func (m *MemoryStore) SaveSession(session *models.InterrogationSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessionIndex[session.ID]; ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}
	m.sessionIndex[session.ID] = len(m.sessions)
	m.sessions = append(m.sessions, cloneSession(session))
	return nil
}

func (m *MemoryStore) GetSession(id string) (*models.InterrogationSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.sessionIndex[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneSession(m.sessions[i]), nil
}

func (m *MemoryStore) ListSessionsForFIR(firID string) []*models.InterrogationSession {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []*models.InterrogationSession
	for _, s := range m.sessions {
		if s.FIRID == firID {
			out = append(out, cloneSession(s))
		}
	}
	return out
}

func (m *MemoryStore) UpdateSession(session *models.InterrogationSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.sessionIndex[session.ID]
	if !ok {
		return ErrNotFound
	}
	m.sessions[i] = cloneSession(session)
	return nil
}

func (m *MemoryStore) MutateSession(id string, fn func(*models.InterrogationSession) error) (*models.InterrogationSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.sessionIndex[id]
	if !ok {
		return nil, ErrNotFound
	}

	session := cloneSession(m.sessions[i])
	if err := fn(session); err != nil {
		return nil, err
	}
	m.sessions[i] = session
	return cloneSession(session), nil
}

func cloneSession(s *models.InterrogationSession) *models.InterrogationSession {
	out := *s
	out.Speakers = make([]models.Speaker, len(s.Speakers))
	for i, sp := range s.Speakers {
		out.Speakers[i] = sp
		out.Speakers[i].Segments = make([]models.Segment, len(sp.Segments))
		copy(out.Speakers[i].Segments, sp.Segments)
	}
	return &out
}
