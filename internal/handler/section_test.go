package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/handler/gen"
)

// ---- GET /api/sections -----------------------------------------------------

func TestListSections_200(t *testing.T) {
	sections := []domain.Section{
		{ID: uuid.New(), Name: "Go", Tags: []domain.Tag{{Name: "Go"}}, ArticleCount: 3},
		{ID: uuid.New(), Name: domain.UntaggedSectionName, Tags: []domain.Tag{}, ArticleCount: 1},
	}
	svc := &mockSectionServicer{
		list: func(context.Context) ([]domain.Section, error) { return sections, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sections", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.SectionList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "Go", resp.Data[0].Name)
	assert.Equal(t, 3, resp.Data[0].ArticleCount)
	assert.Equal(t, []string{"Go"}, resp.Data[0].Tags)
	assert.NotNil(t, resp.Data[1].Tags)
	assert.Empty(t, resp.Data[1].Tags)
}

func TestListSections_EmptyIsArray(t *testing.T) {
	svc := &mockSectionServicer{
		list: func(context.Context) ([]domain.Section, error) { return []domain.Section{}, nil },
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sections", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

// ---- GET /api/sections/{id} ------------------------------------------------

func TestGetSection_404(t *testing.T) {
	svc := &mockSectionServicer{
		getByID: func(context.Context, uuid.UUID) (domain.Section, error) {
			return domain.Section{}, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sections/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- GET /api/sections/{id}/articles ---------------------------------------

func TestListSectionArticles_200(t *testing.T) {
	sectionID := uuid.New()
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	articles := []domain.Article{
		{ID: uuid.New(), Title: "newer", SectionID: sectionID, CreatedAt: newer},
		{ID: uuid.New(), Title: "older", SectionID: sectionID, CreatedAt: older},
	}
	svc := &mockSectionServicer{
		listArticles: func(_ context.Context, id uuid.UUID) ([]domain.Article, error) {
			assert.Equal(t, sectionID, id)
			return articles, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sections/"+sectionID.String()+"/articles", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp gen.ArticleList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "newer", resp.Data[0].Title)
	assert.Equal(t, "older", resp.Data[1].Title)
}

func TestListSectionArticles_404(t *testing.T) {
	svc := &mockSectionServicer{
		listArticles: func(context.Context, uuid.UUID) ([]domain.Article, error) {
			return nil, domain.ErrNotFound
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/sections/"+uuid.NewString()+"/articles", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, svc, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
