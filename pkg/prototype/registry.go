// Package prototype keeps named prototype documents and hands out clones.
//
// The registry is the usual companion of the Prototype pattern: callers ask
// for a template by name instead of knowing how the document was built, and
// every request gets its own copy.
package prototype

import (
	"context"
	"fmt"
	"sort"

	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/ports"
)

// Registry clones documents out of a template store.
type Registry struct {
	store ports.TemplateStore
}

// NewRegistry creates a registry backed by store.
func NewRegistry(store ports.TemplateStore) *Registry {
	return &Registry{store: store}
}

// Register stores doc as the template called name.
func (r *Registry) Register(ctx context.Context, name string, doc *document.Document) error {
	if name == "" {
		return fmt.Errorf("register template: %w: empty name", ports.ErrInvalidTemplateName)
	}
	if doc == nil {
		return fmt.Errorf("register template %q: nil document", name)
	}
	if err := r.store.Save(ctx, name, doc); err != nil {
		return fmt.Errorf("register template %q: %w", name, err)
	}
	return nil
}

// Seed registers every template in docs.
func (r *Registry) Seed(ctx context.Context, docs map[string]*document.Document) error {
	names := make([]string, 0, len(docs))
	for name := range docs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := r.Register(ctx, name, docs[name]); err != nil {
			return err
		}
	}
	return nil
}

// Template returns a copy of the stored template.
func (r *Registry) Template(ctx context.Context, name string) (*document.Document, error) {
	doc, err := r.store.Load(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load template %q: %w", name, err)
	}
	return doc, nil
}

// Spawn clones the template called name and applies the overrides to the clone.
// The stored template is never modified.
func (r *Registry) Spawn(ctx context.Context, name string, o document.Overrides) (*document.Document, error) {
	tmpl, err := r.Template(ctx, name)
	if err != nil {
		return nil, err
	}
	clone := tmpl.Clone()
	o.Apply(clone)
	return clone, nil
}

// Names lists the registered templates, sorted.
func (r *Registry) Names(ctx context.Context) ([]string, error) {
	names, err := r.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes a template.
func (r *Registry) Remove(ctx context.Context, name string) error {
	if err := r.store.Delete(ctx, name); err != nil {
		return fmt.Errorf("remove template %q: %w", name, err)
	}
	return nil
}
