package memory_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"skillmatch-backend/internal/domain"
	"skillmatch-backend/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStoreGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()

	t.Run("Should report missing documents without error", func(t *testing.T) {
		doc, found, err := store.Get(ctx, domain.CollectionUsers, "nobody")
		require.NoError(t, err)
		assert.False(t, found)
		assert.Nil(t, doc)
	})

	t.Run("Should return copies", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, domain.CollectionUsers, "u1", domain.Document{"skills": []any{"Go"}}))

		doc, found, err := store.Get(ctx, domain.CollectionUsers, "u1")
		require.NoError(t, err)
		require.True(t, found)
		doc["skills"].([]any)[0] = "changed"
		doc["extra"] = true

		again, _, _ := store.Get(ctx, domain.CollectionUsers, "u1")
		assert.Equal(t, domain.Document{"skills": []any{"Go"}}, again)
	})
}

func TestDocumentStoreMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("Should create document and union arrays", func(t *testing.T) {
		store := memory.NewDocumentStore()
		require.NoError(t, store.Merge(ctx, "users", "u1", domain.Patch{
			Set:   domain.Document{"resumeText": "first"},
			Union: map[string][]string{"skills": {"Python", "SQL"}},
		}))
		require.NoError(t, store.Merge(ctx, "users", "u1", domain.Patch{
			Set:   domain.Document{"resumeText": "second"},
			Union: map[string][]string{"skills": {"SQL", "Docker"}},
		}))

		doc, found, err := store.Get(ctx, "users", "u1")
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "second", doc["resumeText"])
		assert.Equal(t, []any{"Python", "SQL", "Docker"}, doc["skills"])
	})

	t.Run("Should use union key for equality", func(t *testing.T) {
		store := memory.NewDocumentStore()
		require.NoError(t, store.Put(ctx, "users", "u1", domain.Document{"skills": []any{"node.js"}}))
		require.NoError(t, store.Merge(ctx, "users", "u1", domain.Patch{
			Union:    map[string][]string{"skills": {"Node.js", "AWS"}},
			UnionKey: strings.ToLower,
		}))

		doc, _, _ := store.Get(ctx, "users", "u1")
		assert.Equal(t, []any{"node.js", "AWS"}, doc["skills"])
	})

	t.Run("Should not lose skills under concurrent merges", func(t *testing.T) {
		store := memory.NewDocumentStore()
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_ = store.Merge(ctx, "users", "u1", domain.Patch{
					Set:   domain.Document{"resumeText": fmt.Sprintf("resume %d", i)},
					Union: map[string][]string{"skills": {fmt.Sprintf("skill-%d", i), "shared"}},
				})
			}(i)
		}
		wg.Wait()

		doc, _, _ := store.Get(ctx, "users", "u1")
		skills, ok := doc.StringList("skills")
		require.True(t, ok)
		assert.Len(t, skills, 51)
		assert.Contains(t, skills, "shared")
		assert.Contains(t, skills, "skill-49")
	})
}

func TestDocumentStoreList(t *testing.T) {
	ctx := context.Background()
	store := memory.NewDocumentStore()
	require.NoError(t, store.Put(ctx, "internships", "b", domain.Document{"title": "B"}))
	require.NoError(t, store.Put(ctx, "internships", "a", domain.Document{"title": "A"}))
	require.NoError(t, store.Put(ctx, "hackathons", "h", domain.Document{"name": "H"}))

	docs, err := store.List(ctx, "internships")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "a", docs[1].ID)

	empty, err := store.List(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
