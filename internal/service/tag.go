package service

import (
	"context"
	"fmt"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/repo"
)

// TagService implements read access to the tag vocabulary.
// Tags are created only by SectionResolver; there is no direct write path.
type TagService struct {
	tags repo.TagRepo
}

// NewTagService constructs a TagService backed by the provided TagRepo.
func NewTagService(tags repo.TagRepo) *TagService {
	return &TagService{tags: tags}
}

// List returns one page of tags whose canonical key starts with the
// normalized prefix, plus the total number of matches.
// An empty prefix matches every tag.
func (s *TagService) List(ctx context.Context, prefix string, p domain.PaginationParams) ([]domain.Tag, int64, error) {
	key := ""
	if nt, ok := domain.NormalizeTag(prefix); ok {
		key = nt.Key
	}
	tags, total, err := s.tags.ListPaged(ctx, key, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TagService.List: %w", err)
	}
	if tags == nil {
		return []domain.Tag{}, total, nil
	}
	return tags, total, nil
}
