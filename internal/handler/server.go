// Package handler implements the HTTP handlers for the article sections API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into resource-specific files (health.go, article.go, etc.)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/handler/gen"
)

// ArticleServicer defines the business operations the article handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type ArticleServicer interface {
	Create(ctx context.Context, in domain.ArticleInput) (domain.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error)
	Update(ctx context.Context, id uuid.UUID, in domain.ArticleInput) (domain.Article, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SectionServicer defines the read operations the section handlers depend on.
type SectionServicer interface {
	List(ctx context.Context) ([]domain.Section, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Section, error)
	ListArticles(ctx context.Context, sectionID uuid.UUID) ([]domain.Article, error)
}

// TagServicer defines the operations the tag handler depends on.
type TagServicer interface {
	List(ctx context.Context, prefix string, p domain.PaginationParams) ([]domain.Tag, int64, error)
}

// Pinger reports whether the backing store is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Methods are in resource-specific files but all operate on this struct.
type Server struct {
	articles ArticleServicer
	sections SectionServicer
	tags     TagServicer
	db       Pinger
	logger   *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil db makes /readyz always report ready.
func NewServer(articles ArticleServicer, sections SectionServicer, tags TagServicer, db Pinger, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{articles: articles, sections: sections, tags: tags, db: db, logger: logger}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// Routes mounts every API operation on r. Parameter binding, body decoding
// and unexpected service errors are all answered with the JSON error envelope.
func (s *Server) Routes(r chi.Router) http.Handler {
	strict := gen.NewStrictHandlerWithOptions(s, nil, gen.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  s.requestError,
		ResponseErrorHandlerFunc: s.responseError,
	})
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: s.requestError,
	})
}

// Handler returns the API on a fresh chi router.
func (s *Server) Handler() http.Handler {
	return s.Routes(chi.NewRouter())
}
