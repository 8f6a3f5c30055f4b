package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/aretw0/creational/pkg/adapters/memory"
	"github.com/aretw0/creational/pkg/document"
	"github.com/aretw0/creational/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Contract(t *testing.T) {
	store := memory.NewStore()
	ports.RunTemplateStoreContract(t, store)
}

func TestMemoryStore_ListSorted(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	for _, name := range []string{"report", "article", "memo"} {
		require.NoError(t, store.Save(ctx, name, document.Sample()))
	}

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"article", "memo", "report"}, names)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("doc-%d", i%5)
			_ = store.Save(ctx, name, document.Sample())
			_, _ = store.Load(ctx, name)
			_, _ = store.List(ctx)
		}(i)
	}
	wg.Wait()

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 5)
}
