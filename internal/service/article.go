// Package service contains the business logic for the article sections API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here: services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/repo"
)

// ArticleService implements business logic for Article operations.
// Every write resolves the article's section and persists the article in one
// transaction, so an article is never stored without its section.
type ArticleService struct {
	store    repo.Store
	resolver *SectionResolver
	retry    RetryPolicy
	logger   *slog.Logger
}

// NewArticleService constructs an ArticleService. The resolver must be bound
// to the same store. A nil logger falls back to slog.Default().
func NewArticleService(store repo.Store, resolver *SectionResolver, retry RetryPolicy, logger *slog.Logger) *ArticleService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleService{store: store, resolver: resolver, retry: retry, logger: logger}
}

// Create validates the input, resolves the section for its tags and persists
// the article under it.
// Returns domain.ErrValidation if input violates business rules.
func (s *ArticleService) Create(ctx context.Context, in domain.ArticleInput) (domain.Article, error) {
	if err := validateArticle(in); err != nil {
		return domain.Article{}, err
	}

	var result domain.Article
	err := retryOnConflict(ctx, s.retry, s.logger, "article.create", func() error {
		return s.store.InTx(ctx, func(st repo.Store) error {
			section, err := s.resolver.ResolveTx(ctx, st, in.Tags)
			if err != nil {
				return err
			}
			result, err = st.Articles().Create(ctx, domain.Article{
				Title:     in.Title,
				Content:   in.Content,
				SectionID: section.ID,
				Tags:      section.Tags,
			})
			return err
		})
	})
	if err != nil {
		return domain.Article{}, fmt.Errorf("service.ArticleService.Create: %w", err)
	}
	s.logger.InfoContext(ctx, "article created",
		"article_id", result.ID,
		"section_id", result.SectionID,
	)
	return result, nil
}

// GetByID returns a single article with its tags.
// Returns domain.ErrNotFound if no article with that ID exists.
func (s *ArticleService) GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	result, err := s.store.Articles().GetByID(ctx, id)
	if err != nil {
		return domain.Article{}, fmt.Errorf("service.ArticleService.GetByID: %w", err)
	}
	return result, nil
}

// Update replaces title, content and tags of an existing article. The tags
// are resolved again, so the article moves to whichever section owns the new
// tag set. The previous section is left in place even if it becomes empty.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// article does not exist.
func (s *ArticleService) Update(ctx context.Context, id uuid.UUID, in domain.ArticleInput) (domain.Article, error) {
	if err := validateArticle(in); err != nil {
		return domain.Article{}, err
	}

	var (
		result domain.Article
		prior  uuid.UUID
	)
	err := retryOnConflict(ctx, s.retry, s.logger, "article.update", func() error {
		return s.store.InTx(ctx, func(st repo.Store) error {
			// Check existence first so an unknown id never creates tags.
			existing, err := st.Articles().GetByID(ctx, id)
			if err != nil {
				return err
			}
			prior = existing.SectionID

			section, err := s.resolver.ResolveTx(ctx, st, in.Tags)
			if err != nil {
				return err
			}
			result, err = st.Articles().Update(ctx, domain.Article{
				ID:        id,
				Title:     in.Title,
				Content:   in.Content,
				SectionID: section.ID,
				Tags:      section.Tags,
			})
			return err
		})
	})
	if err != nil {
		return domain.Article{}, fmt.Errorf("service.ArticleService.Update: %w", err)
	}
	if prior != result.SectionID {
		s.logger.InfoContext(ctx, "article moved",
			"article_id", result.ID,
			"from_section_id", prior,
			"to_section_id", result.SectionID,
		)
	}
	return result, nil
}

// Delete removes an article by ID. Its section and tags are kept.
// Returns domain.ErrNotFound if the article does not exist.
func (s *ArticleService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Articles().Delete(ctx, id); err != nil {
		return fmt.Errorf("service.ArticleService.Delete: %w", err)
	}
	return nil
}

// validateArticle enforces business rules common to both Create and Update.
//   - Title must be non-empty after trimming and at most MaxTitleLength characters.
//   - Content must be non-empty after trimming.
func validateArticle(in domain.ArticleInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(in.Title) > domain.MaxTitleLength {
		return fmt.Errorf("%w: title must be at most %d characters", domain.ErrValidation, domain.MaxTitleLength)
	}
	if strings.TrimSpace(in.Content) == "" {
		return fmt.Errorf("%w: content is required", domain.ErrValidation)
	}
	return nil
}
