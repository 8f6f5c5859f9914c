package repository

import (
	"sync"

	"github.com/fapah/docmanager/internal/document"
)

// MemoryRepo is the in-memory map backing the document store. It keeps its
// own copies of every document, so callers never hold a pointer into the map.
type MemoryRepo struct {
	mu    sync.RWMutex
	store map[string]document.Document
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]document.Document)}
}

// Upsert writes doc at doc.ID, replacing any previous entry. When an entry
// already exists its Created timestamp wins over the incoming one.
// It returns a copy of what was stored and whether an entry was replaced.
func (m *MemoryRepo) Upsert(doc *document.Document) (*document.Document, bool) {
	snap := doc.Clone()
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.store[snap.ID]
	if ok {
		snap.Created = prev.Created
	}
	m.store[snap.ID] = *snap
	return snap.Clone(), ok
}

func (m *MemoryRepo) Get(id string) (*document.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.store[id]; ok {
		return d.Clone(), nil
	}
	return nil, document.ErrNotFound
}

// List returns copies of all stored documents in no particular order.
func (m *MemoryRepo) List() []*document.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*document.Document, 0, len(m.store))
	for _, d := range m.store {
		out = append(out, d.Clone())
	}
	return out
}

func (m *MemoryRepo) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return document.ErrNotFound
	}
	delete(m.store, id)
	return nil
}

func (m *MemoryRepo) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.store)
}
