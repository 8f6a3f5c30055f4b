// Package document demonstrates the Prototype pattern.
//
// A Document can produce an independent copy of itself with Clone. The copy
// starts value-equal to its prototype and can be changed freely afterwards.
package document

import (
	"maps"
	"slices"

	"github.com/aretw0/creational/pkg/colors"
)

// Document is a prototype.
type Document struct {
	Title    string            `json:"title" yaml:"title" mapstructure:"title"`
	Content  string            `json:"content" yaml:"content" mapstructure:"content"`
	Author   string            `json:"author" yaml:"author" mapstructure:"author"`
	Tags     []string          `json:"tags,omitempty" yaml:"tags,omitempty" mapstructure:"tags"`
	Metadata map[string]string `json:"metadata,omitempty" yaml:"metadata,omitempty" mapstructure:"metadata"`
}

// New creates a document.
func New(title, content, author string) *Document {
	return &Document{Title: title, Content: content, Author: author}
}

// Sample is the document used by the demos.
func Sample() *Document {
	return New("Design Patterns", "Content about design patterns...", "Isaac Vega")
}

// Clone returns a deep copy of d.
func (d *Document) Clone() *Document {
	return &Document{
		Title:    d.Title,
		Content:  d.Content,
		Author:   d.Author,
		Tags:     slices.Clone(d.Tags),
		Metadata: maps.Clone(d.Metadata),
	}
}

// Info describes the document.
func (d *Document) Info() []colors.Line {
	return []colors.Line{
		colors.Styled("", "Title: "+d.Title, colors.Blue),
		colors.Text("Content: " + d.Content),
		colors.Text("Author: " + d.Author),
	}
}

// Overrides are the fields to change on a freshly cloned document.
// Empty fields are left alone.
type Overrides struct {
	Title   string `json:"title,omitempty" mapstructure:"title"`
	Content string `json:"content,omitempty" mapstructure:"content"`
	Author  string `json:"author,omitempty" mapstructure:"author"`
}

// IsZero reports whether o changes nothing.
func (o Overrides) IsZero() bool {
	return o == Overrides{}
}

// Apply writes the non-empty overrides into d.
func (o Overrides) Apply(d *Document) {
	if o.Title != "" {
		d.Title = o.Title
	}
	if o.Content != "" {
		d.Content = o.Content
	}
	if o.Author != "" {
		d.Author = o.Author
	}
}
