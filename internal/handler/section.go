package handler

import (
	"context"
	"errors"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/handler/gen"
)

// ListSections handles GET /api/sections.
// Sections are ordered by article count, largest first.
func (s *Server) ListSections(ctx context.Context, _ gen.ListSectionsRequestObject) (gen.ListSectionsResponseObject, error) {
	sections, err := s.sections.List(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Section, len(sections))
	for i, sec := range sections {
		data[i] = sectionToResponse(sec)
	}
	return gen.ListSections200JSONResponse{Data: data}, nil
}

// GetSection handles GET /api/sections/{id}.
func (s *Server) GetSection(ctx context.Context, req gen.GetSectionRequestObject) (gen.GetSectionResponseObject, error) {
	section, err := s.sections.GetByID(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetSection404JSONResponse(notFoundBody("section not found")), nil
		}
		return nil, err
	}

	return gen.GetSection200JSONResponse(sectionToResponse(section)), nil
}

// ListSectionArticles handles GET /api/sections/{id}/articles.
// Articles are ordered by last modification, newest first.
func (s *Server) ListSectionArticles(ctx context.Context, req gen.ListSectionArticlesRequestObject) (gen.ListSectionArticlesResponseObject, error) {
	articles, err := s.sections.ListArticles(ctx, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ListSectionArticles404JSONResponse(notFoundBody("section not found")), nil
		}
		return nil, err
	}

	data := make([]gen.Article, len(articles))
	for i, a := range articles {
		data[i] = articleToResponse(a)
	}
	return gen.ListSectionArticles200JSONResponse{Data: data}, nil
}

// sectionToResponse converts a domain.Section into the gen.Section wire type.
func sectionToResponse(sec domain.Section) gen.Section {
	return gen.Section{
		Id:           openapi_types.UUID(sec.ID),
		Name:         sec.Name,
		Tags:         domain.TagNames(sec.Tags),
		ArticleCount: sec.ArticleCount,
		CreatedAt:    sec.CreatedAt,
		UpdatedAt:    sec.UpdatedAt,
	}
}
