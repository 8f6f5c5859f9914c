package repository

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/fapah/docmanager/internal/document"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepoCRUD(t *testing.T) {
	r := NewMemoryRepo()
	d := &document.Document{ID: "d1", Title: "t.tex", Content: "hello", Author: &document.Author{ID: "1"}, Created: time.Now()}
	stored, updated := r.Upsert(d)
	require.False(t, updated)
	require.Equal(t, d, stored)

	got, err := r.Get("d1")
	require.NoError(t, err)
	require.Equal(t, "hello", got.Content)

	list := r.List()
	require.Len(t, list, 1)
	require.Equal(t, 1, r.Len())

	_, updated = r.Upsert(&document.Document{ID: "d1", Title: "t.tex", Content: "new", Author: &document.Author{ID: "1"}})
	require.True(t, updated)
	got2, err := r.Get("d1")
	require.NoError(t, err)
	require.Equal(t, "new", got2.Content)

	require.NoError(t, r.Delete("d1"))
	_, err = r.Get("d1")
	require.ErrorIs(t, err, document.ErrNotFound)
	require.ErrorIs(t, r.Delete("d1"), document.ErrNotFound)
	require.Equal(t, 0, r.Len())
}

func TestMemoryRepoUpsertKeepsCreated(t *testing.T) {
	r := NewMemoryRepo()
	first := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r.Upsert(&document.Document{ID: "d1", Title: "a", Content: "a", Author: &document.Author{ID: "1"}, Created: first})

	stored, _ := r.Upsert(&document.Document{ID: "d1", Title: "b", Content: "b", Author: &document.Author{ID: "1"}, Created: first.Add(48 * time.Hour)})
	require.Equal(t, first, stored.Created)
	require.Equal(t, "b", stored.Title)

	got, err := r.Get("d1")
	require.NoError(t, err)
	require.Equal(t, first, got.Created)
}

func TestMemoryRepoDoesNotAliasCallers(t *testing.T) {
	r := NewMemoryRepo()
	in := &document.Document{ID: "d1", Title: "a", Content: "a", Author: &document.Author{ID: "1", Name: "John"}}
	out, _ := r.Upsert(in)

	in.Title = "mutated"
	in.Author.Name = "mutated"
	out.Content = "mutated"

	got, err := r.Get("d1")
	require.NoError(t, err)
	require.Equal(t, "a", got.Title)
	require.Equal(t, "a", got.Content)
	require.Equal(t, "John", got.Author.Name)

	got.Author.Name = "again"
	for _, d := range r.List() {
		require.Equal(t, "John", d.Author.Name)
	}
}

func TestMemoryRepoConcurrentAccess(t *testing.T) {
	r := NewMemoryRepo()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := fmt.Sprintf("d-%d-%d", n, j)
				r.Upsert(&document.Document{ID: id, Title: "t", Content: "c", Author: &document.Author{ID: "1"}})
				_, _ = r.Get(id)
				_ = r.List()
			}
		}(i)
	}
	wg.Wait()
	require.Equal(t, 16*50, r.Len())
}
