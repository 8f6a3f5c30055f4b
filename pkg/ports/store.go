package ports

import (
	"context"
	"errors"

	"github.com/aretw0/creational/pkg/document"
)

// ErrTemplateNotFound is returned when no template is stored under a name.
var ErrTemplateNotFound = errors.New("template not found")

// ErrInvalidTemplateName is returned when a store cannot use a name as a key,
// e.g. an empty name or one containing a path separator.
var ErrInvalidTemplateName = errors.New("invalid template name")

// TemplateStore persists the prototype documents used by a prototype registry.
// Implementations must never hand out a document that aliases stored data.
type TemplateStore interface {
	// Save stores doc under name, replacing any previous template.
	Save(ctx context.Context, name string, doc *document.Document) error

	// Load retrieves the template stored under name.
	// Returns ErrTemplateNotFound if there is none.
	Load(ctx context.Context, name string) (*document.Document, error)

	// Delete removes the template. Deleting a missing template is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of the stored templates.
	List(ctx context.Context) ([]string, error)
}
