package file_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/creational/internal/testutils"
	"github.com/aretw0/creational/pkg/adapters/file"
	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.New(t.TempDir())
	ports.RunTemplateStoreContract(t, store)
}

func TestFileStore_HandWrittenTemplate(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteFile(t, dir, "invoice.yaml", "title: Invoice\ncontent: Amount due\nauthor: Billing\ntags: [finance]\n")

	store := file.New(dir)
	ctx := context.Background()

	doc, err := store.Load(ctx, "invoice")
	require.NoError(t, err)
	assert.Equal(t, &document.Document{
		Title:   "Invoice",
		Content: "Amount due",
		Author:  "Billing",
		Tags:    []string{"finance"},
	}, doc)

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"invoice"}, names)
}

func TestFileStore_RejectsPathNames(t *testing.T) {
	store := file.New(t.TempDir())
	ctx := context.Background()

	assert.ErrorIs(t, store.Save(ctx, "../escape", document.Sample()), ports.ErrInvalidTemplateName)
	assert.ErrorIs(t, store.Save(ctx, "", document.Sample()), ports.ErrInvalidTemplateName)
	assert.ErrorIs(t, store.Save(ctx, `a\b`, document.Sample()), ports.ErrInvalidTemplateName)
	_, err := store.Load(ctx, "a/b")
	assert.ErrorIs(t, err, ports.ErrInvalidTemplateName)
}

func TestFileStore_ListsTmpPrefixedTemplates(t *testing.T) {
	dir := t.TempDir()
	store := file.New(dir)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tmp-notes", document.Sample()))
	// Left behind by an interrupted save.
	testutils.WriteFile(t, dir, ".notes-123.yaml.tmp", "title: partial\n")

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"tmp-notes"}, names)

	doc, err := store.Load(ctx, "tmp-notes")
	require.NoError(t, err)
	assert.Equal(t, "Design Patterns", doc.Title)
}

func TestFileStore_MissingDirectory(t *testing.T) {
	store := file.New(filepath.Join(t.TempDir(), "not-created-yet"))

	names, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, filepath.Join(".creational", "templates"), file.New("").BasePath)
}
