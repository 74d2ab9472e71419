package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/handler/gen"
)

// CreateArticle handles POST /api/articles.
func (s *Server) CreateArticle(ctx context.Context, req gen.CreateArticleRequestObject) (gen.CreateArticleResponseObject, error) {
	if req.Body == nil {
		return gen.CreateArticle400JSONResponse(requestBody("request body is required")), nil
	}

	created, err := s.articles.Create(ctx, requestToInput(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateArticle400JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateArticle201JSONResponse(articleToResponse(created)), nil
}

// GetArticle handles GET /api/articles/{id}.
func (s *Server) GetArticle(ctx context.Context, req gen.GetArticleRequestObject) (gen.GetArticleResponseObject, error) {
	article, err := s.articles.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetArticle404JSONResponse(notFoundBody("article not found")), nil
		}
		return nil, err
	}

	return gen.GetArticle200JSONResponse(articleToResponse(article)), nil
}

// UpdateArticle handles PUT /api/articles/{id}.
// Title, content and tags are all replaced; omitted tags mean "no tags".
func (s *Server) UpdateArticle(ctx context.Context, req gen.UpdateArticleRequestObject) (gen.UpdateArticleResponseObject, error) {
	if req.Body == nil {
		return gen.UpdateArticle400JSONResponse(requestBody("request body is required")), nil
	}

	updated, err := s.articles.Update(ctx, req.Id, requestToInput(*req.Body))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateArticle404JSONResponse(notFoundBody("article not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateArticle400JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateArticle200JSONResponse(articleToResponse(updated)), nil
}

// DeleteArticle handles DELETE /api/articles/{id}.
func (s *Server) DeleteArticle(ctx context.Context, req gen.DeleteArticleRequestObject) (gen.DeleteArticleResponseObject, error) {
	if err := s.articles.Delete(ctx, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteArticle404JSONResponse(notFoundBody("article not found")), nil
		}
		return nil, err
	}

	return gen.DeleteArticle204Response{}, nil
}

// --- mapping helpers --------------------------------------------------------

// requestToInput converts an ArticleRequest body into a domain.ArticleInput.
func requestToInput(body gen.ArticleRequest) domain.ArticleInput {
	in := domain.ArticleInput{Title: body.Title, Content: body.Content}
	if body.Tags != nil {
		in.Tags = *body.Tags
	}
	return in
}

// articleToResponse converts a domain.Article into the gen.Article wire type.
// Tag names are sorted case-insensitively.
func articleToResponse(a domain.Article) gen.Article {
	return gen.Article{
		Id:        openapi_types.UUID(a.ID),
		Title:     a.Title,
		Content:   a.Content,
		SectionId: openapi_types.UUID(a.SectionID),
		Tags:      domain.TagNames(a.Tags),
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
