package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/ports"
)

// Store implements ports.TemplateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*document.Document
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*document.Document),
	}
}

// Save stores a copy of doc so later changes by the caller do not leak in.
func (s *Store) Save(ctx context.Context, name string, doc *document.Document) error {
	copied := doc.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load retrieves a copy of the template.
func (s *Store) Load(ctx context.Context, name string) (*document.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.data[name]
	if !ok {
		return nil, ports.ErrTemplateNotFound
	}
	return doc.Clone(), nil
}

// Delete removes the template.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the stored template names, sorted.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
