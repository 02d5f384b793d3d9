package assess

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/psymetric/ocean-engine/internal/ocean"
)

type memoryStore struct {
	mu      sync.RWMutex
	sets    map[string]ResponseSet
	results map[string]ocean.ScoreDetails
}

// NewInMemoryStore returns a Store for tests and offline single-process use.
func NewInMemoryStore() Store {
	return &memoryStore{
		sets:    map[string]ResponseSet{},
		results: map[string]ocean.ScoreDetails{},
	}
}

func (m *memoryStore) PutResponseSet(_ context.Context, rs ResponseSet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if rs.CreatedAt == 0 {
		rs.CreatedAt = time.Now().Unix()
	}
	m.sets[rs.ID] = rs
	return nil
}

func (m *memoryStore) GetResponseSet(_ context.Context, id string) (ResponseSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rs, ok := m.sets[id]
	if !ok {
		return ResponseSet{}, ErrNotFound
	}
	return rs, nil
}

func (m *memoryStore) ListBySubject(_ context.Context, subjectID string) ([]ResponseSet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []ResponseSet
	for _, rs := range m.sets {
		if rs.SubjectID == subjectID {
			out = append(out, rs)
		}
	}
	// Aggregation weights bind by position, so the listing order must be
	// stable: submission order, ID as tie-break.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt != out[j].CreatedAt {
			return out[i].CreatedAt < out[j].CreatedAt
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *memoryStore) SaveResult(_ context.Context, responseID, _ string, d ocean.ScoreDetails) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sets[responseID]; !ok {
		return ErrNotFound
	}
	m.results[responseID] = d.Clone()
	return nil
}

func (m *memoryStore) LoadResult(_ context.Context, responseID string) (ocean.ScoreDetails, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	d, ok := m.results[responseID]
	if !ok {
		return ocean.ScoreDetails{}, ErrNotFound
	}
	return d.Clone(), nil
}
