package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/repo"
)

// SectionService exposes read access to sections and their articles.
// Sections are only ever written by SectionResolver.
type SectionService struct {
	store repo.Store
}

// NewSectionService constructs a SectionService backed by the provided Store.
func NewSectionService(store repo.Store) *SectionService {
	return &SectionService{store: store}
}

// List returns every section ordered by article count, largest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *SectionService) List(ctx context.Context) ([]domain.Section, error) {
	sections, err := s.store.Sections().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SectionService.List: %w", err)
	}
	if sections == nil {
		return []domain.Section{}, nil
	}
	domain.SortSectionsByArticleCount(sections)
	return sections, nil
}

// GetByID returns a single section with its tags and article count.
// Returns domain.ErrNotFound if no section with that ID exists.
func (s *SectionService) GetByID(ctx context.Context, id uuid.UUID) (domain.Section, error) {
	result, err := s.store.Sections().GetByID(ctx, id)
	if err != nil {
		return domain.Section{}, fmt.Errorf("service.SectionService.GetByID: %w", err)
	}
	return result, nil
}

// ListArticles returns the articles of a section, most recently modified first.
// Returns domain.ErrNotFound if the section does not exist, so an unknown id is
// distinguishable from an empty section.
func (s *SectionService) ListArticles(ctx context.Context, sectionID uuid.UUID) ([]domain.Article, error) {
	if _, err := s.store.Sections().GetByID(ctx, sectionID); err != nil {
		return nil, fmt.Errorf("service.SectionService.ListArticles: %w", err)
	}
	articles, err := s.store.Articles().ListBySection(ctx, sectionID)
	if err != nil {
		return nil, fmt.Errorf("service.SectionService.ListArticles: %w", err)
	}
	if articles == nil {
		return []domain.Article{}, nil
	}
	domain.SortArticlesByRecency(articles)
	return articles, nil
}
