package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/service"
)

// ---- List ------------------------------------------------------------------

func TestSectionService_List_OrdersByArticleCount(t *testing.T) {
	store := newFakeStore()
	articles := newArticleService(store)
	ctx := context.Background()

	_, err := articles.Create(ctx, validInput("one"))
	require.NoError(t, err)
	for range 3 {
		_, err = articles.Create(ctx, validInput("three"))
		require.NoError(t, err)
	}
	for range 2 {
		_, err = articles.Create(ctx, validInput("two"))
		require.NoError(t, err)
	}

	got, err := service.NewSectionService(store).List(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"three", "two", "one"}, []string{got[0].Name, got[1].Name, got[2].Name})
	assert.Equal(t, []int{3, 2, 1}, []int{got[0].ArticleCount, got[1].ArticleCount, got[2].ArticleCount})
}

func TestSectionService_List_Empty(t *testing.T) {
	got, err := service.NewSectionService(newFakeStore()).List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

// ---- GetByID ---------------------------------------------------------------

func TestSectionService_GetByID_NotFound(t *testing.T) {
	_, err := service.NewSectionService(newFakeStore()).GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ---- ListArticles ----------------------------------------------------------

func TestSectionService_ListArticles_MostRecentlyModifiedFirst(t *testing.T) {
	store := newFakeStore()
	articles := newArticleService(store)
	ctx := context.Background()

	first, err := articles.Create(ctx, validInput("news"))
	require.NoError(t, err)
	second, err := articles.Create(ctx, validInput("news"))
	require.NoError(t, err)
	third, err := articles.Create(ctx, validInput("news"))
	require.NoError(t, err)

	// Editing the oldest article makes it the most recent.
	_, err = articles.Update(ctx, first.ID, domain.ArticleInput{Title: "Edited", Content: "c", Tags: []string{"NEWS"}})
	require.NoError(t, err)

	got, err := service.NewSectionService(store).ListArticles(ctx, first.SectionID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uuid.UUID{first.ID, third.ID, second.ID}, []uuid.UUID{got[0].ID, got[1].ID, got[2].ID})
}

func TestSectionService_ListArticles_EmptySection(t *testing.T) {
	store := newFakeStore()
	section, err := newResolver(store).Resolve(context.Background(), []string{"quiet"})
	require.NoError(t, err)

	got, err := service.NewSectionService(store).ListArticles(context.Background(), section.ID)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSectionService_ListArticles_UnknownSection(t *testing.T) {
	_, err := service.NewSectionService(newFakeStore()).ListArticles(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
