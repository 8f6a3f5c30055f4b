package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/creational/pkg/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTemplateStoreContract runs a suite of tests to verify that a TemplateStore
// implementation adheres to the defined interface contract.
func RunTemplateStoreContract(t *testing.T, store TemplateStore) {
	ctx := context.Background()
	name := "contract-template-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		doc := document.Sample()
		doc.Tags = []string{"patterns"}
		doc.Metadata = map[string]string{"lang": "en"}

		require.NoError(t, store.Save(ctx, name, doc), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, doc, loaded)
	})

	t.Run("Load returns an independent copy", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, document.Sample()))

		first, err := store.Load(ctx, name)
		require.NoError(t, err)
		first.Title = "mutated"
		first.Tags = append(first.Tags, "mutated")

		second, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "Design Patterns", second.Title)
		assert.Empty(t, second.Tags)
	})

	t.Run("Save keeps its own copy", func(t *testing.T) {
		doc := document.Sample()
		require.NoError(t, store.Save(ctx, name, doc))
		doc.Title = "changed after save"

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, "Design Patterns", loaded.Title)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, ErrTemplateNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, document.Sample()))

		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, ErrTemplateNotFound, "Load after Delete should return ErrTemplateNotFound")

		assert.NoError(t, store.Delete(ctx, name), "Deleting twice should not fail")
	})

	t.Run("List", func(t *testing.T) {
		n1 := name + "-1"
		n2 := name + "-2"
		_ = store.Save(ctx, n1, document.Sample())
		_ = store.Save(ctx, n2, document.Sample())

		defer func() {
			_ = store.Delete(ctx, n1)
			_ = store.Delete(ctx, n2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, n1)
		assert.Contains(t, names, n2)
	})
}
