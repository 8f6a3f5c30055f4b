package ports_test

import (
	"context"
	"testing"

	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/ports"
)

// MockStore is a minimal TemplateStore used to exercise the contract suite itself.
type MockStore struct {
	data map[string]*document.Document
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]*document.Document),
	}
}

func (m *MockStore) Save(ctx context.Context, name string, doc *document.Document) error {
	m.data[name] = doc.Clone()
	return nil
}

func (m *MockStore) Load(ctx context.Context, name string) (*document.Document, error) {
	doc, ok := m.data[name]
	if !ok {
		return nil, ports.ErrTemplateNotFound
	}
	return doc.Clone(), nil
}

func (m *MockStore) Delete(ctx context.Context, name string) error {
	delete(m.data, name)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(m.data))
	for name := range m.data {
		names = append(names, name)
	}
	return names, nil
}

func TestMockStore_Contract(t *testing.T) {
	ports.RunTemplateStoreContract(t, NewMockStore())
}

func TestMockStore_NotFound(t *testing.T) {
	_, err := NewMockStore().Load(context.Background(), "missing")
	if err != ports.ErrTemplateNotFound {
		t.Errorf("Expected ErrTemplateNotFound, got %v", err)
	}
}
