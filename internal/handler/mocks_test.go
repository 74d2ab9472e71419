package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/handler"
)

// mockArticleServicer is a test double for handler.ArticleServicer.
// Set only the method fields your test needs.
type mockArticleServicer struct {
	create  func(ctx context.Context, in domain.ArticleInput) (domain.Article, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Article, error)
	update  func(ctx context.Context, id uuid.UUID, in domain.ArticleInput) (domain.Article, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockArticleServicer) Create(ctx context.Context, in domain.ArticleInput) (domain.Article, error) {
	return m.create(ctx, in)
}
func (m *mockArticleServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	return m.getByID(ctx, id)
}
func (m *mockArticleServicer) Update(ctx context.Context, id uuid.UUID, in domain.ArticleInput) (domain.Article, error) {
	return m.update(ctx, id, in)
}
func (m *mockArticleServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

// mockSectionServicer is a test double for handler.SectionServicer.
type mockSectionServicer struct {
	list         func(ctx context.Context) ([]domain.Section, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Section, error)
	listArticles func(ctx context.Context, id uuid.UUID) ([]domain.Article, error)
}

func (m *mockSectionServicer) List(ctx context.Context) ([]domain.Section, error) {
	return m.list(ctx)
}
func (m *mockSectionServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Section, error) {
	return m.getByID(ctx, id)
}
func (m *mockSectionServicer) ListArticles(ctx context.Context, id uuid.UUID) ([]domain.Article, error) {
	return m.listArticles(ctx, id)
}

// mockTagServicer is a test double for handler.TagServicer.
type mockTagServicer struct {
	list func(ctx context.Context, prefix string, p domain.PaginationParams) ([]domain.Tag, int64, error)
}

func (m *mockTagServicer) List(ctx context.Context, prefix string, p domain.PaginationParams) ([]domain.Tag, int64, error) {
	return m.list(ctx, prefix, p)
}

// mockPinger is a test double for handler.Pinger.
type mockPinger struct{ err error }

func (m mockPinger) Ping(context.Context) error { return m.err }

// compile-time checks
var (
	_ handler.ArticleServicer = (*mockArticleServicer)(nil)
	_ handler.SectionServicer = (*mockSectionServicer)(nil)
	_ handler.TagServicer     = (*mockTagServicer)(nil)
	_ handler.Pinger          = mockPinger{}
)

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router.
// This mirrors how main.go wires it in production.
func newHTTPHandler(articles handler.ArticleServicer, sections handler.SectionServicer, tags handler.TagServicer) http.Handler {
	return handler.NewServer(articles, sections, tags, nil, nil).Handler()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
