package handler

import (
	"context"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/handler/gen"
)

// ListTags handles GET /api/tags.
// The optional ?q= query parameter filters tags by case-insensitive prefix;
// ?page= and ?limit= page through the result (defaults: page=1, limit=50, max=200).
func (s *Server) ListTags(ctx context.Context, req gen.ListTagsRequestObject) (gen.ListTagsResponseObject, error) {
	prefix := derefString(req.Params.Q)
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	tags, total, err := s.tags.List(ctx, prefix, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Tag, len(tags))
	for i, t := range tags {
		data[i] = tagToResponse(t)
	}
	return gen.ListTags200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// tagToResponse converts a domain.Tag to the gen.Tag wire type.
func tagToResponse(t domain.Tag) gen.Tag {
	return gen.Tag{
		Id:        openapi_types.UUID(t.ID),
		Name:      t.Name,
		Key:       t.CanonicalKey,
		CreatedAt: t.CreatedAt,
	}
}

// derefString returns the value of p, or "" when p is nil.
func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
