package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/article-sections/internal/domain"
)

// ArticleRepo defines the persistence operations for Articles and the
// article_tags association, which mirrors the owning section's tag set.
type ArticleRepo interface {
	// Create inserts a new article filed under article.SectionID and links
	// article.Tags. Returns the persisted record.
	Create(ctx context.Context, article domain.Article) (domain.Article, error)

	// GetByID retrieves a single article with its tags.
	// Returns domain.ErrNotFound if no article with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error)

	// Update overwrites title, content and section of an existing article,
	// replaces its tag links, and stamps updated_at.
	// Returns domain.ErrNotFound if no article with that ID exists.
	Update(ctx context.Context, article domain.Article) (domain.Article, error)

	// Delete removes an article by ID. Its section and tags are untouched.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// ListBySection returns the articles of a section ordered by
	// COALESCE(updated_at, created_at) descending.
	ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Article, error)
}

// pgArticleRepo is the Postgres implementation of ArticleRepo.
type pgArticleRepo struct {
	db db
}

// NewArticleRepo constructs an ArticleRepo backed by the provided db connection.
func NewArticleRepo(db db) ArticleRepo {
	return &pgArticleRepo{db: db}
}

const articleTagsQuery = `
	SELECT at.article_id, t.id, t.name, t.canonical_key, t.created_at
	FROM article_tags at
	JOIN tags t ON t.id = at.tag_id
	WHERE at.article_id = ANY(@owner_ids::uuid[])
	ORDER BY t.canonical_key`

// Create inserts the article row and its tag links. Callers run it inside
// Store.InTx together with section resolution.
func (r *pgArticleRepo) Create(ctx context.Context, article domain.Article) (domain.Article, error) {
	const q = `
		INSERT INTO articles (title, content, section_id)
		VALUES (@title, @content, @section_id)
		RETURNING id, title, content, section_id, created_at, updated_at`

	result, err := scanArticle(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"title":      article.Title,
		"content":    article.Content,
		"section_id": article.SectionID,
	}))
	if err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.Create: %w", classify(err))
	}
	if err := r.linkTags(ctx, result.ID, article.Tags); err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.Create: %w", err)
	}
	result.Tags = append([]domain.Tag{}, article.Tags...)
	return result, nil
}

func (r *pgArticleRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Article, error) {
	const q = `
		SELECT id, title, content, section_id, created_at, updated_at
		FROM articles
		WHERE id = @id`

	result, err := scanArticle(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.GetByID: %w", classify(err))
	}
	one := []domain.Article{result}
	if err := r.attachTags(ctx, one); err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.GetByID: %w", err)
	}
	return one[0], nil
}

// Update rewrites the scalar fields and re-links tags. Tag links are always
// replaced, even when the section is unchanged.
func (r *pgArticleRepo) Update(ctx context.Context, article domain.Article) (domain.Article, error) {
	const q = `
		UPDATE articles
		SET title      = @title,
		    content    = @content,
		    section_id = @section_id,
		    updated_at = now()
		WHERE id = @id
		RETURNING id, title, content, section_id, created_at, updated_at`

	const unlinkQ = `DELETE FROM article_tags WHERE article_id = @id`

	result, err := scanArticle(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"id":         article.ID,
		"title":      article.Title,
		"content":    article.Content,
		"section_id": article.SectionID,
	}))
	if err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.Update: %w", classify(err))
	}

	if _, err := r.db.Exec(ctx, unlinkQ, pgx.NamedArgs{"id": article.ID}); err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.Update: unlink tags: %w", classify(err))
	}
	if err := r.linkTags(ctx, article.ID, article.Tags); err != nil {
		return domain.Article{}, fmt.Errorf("repo.ArticleRepo.Update: %w", err)
	}
	result.Tags = append([]domain.Tag{}, article.Tags...)
	return result, nil
}

func (r *pgArticleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM articles WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ArticleRepo.Delete: %w", classify(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ArticleRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgArticleRepo) ListBySection(ctx context.Context, sectionID uuid.UUID) ([]domain.Article, error) {
	const q = `
		SELECT id, title, content, section_id, created_at, updated_at
		FROM articles
		WHERE section_id = @section_id
		ORDER BY COALESCE(updated_at, created_at) DESC, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"section_id": sectionID})
	if err != nil {
		return nil, fmt.Errorf("repo.ArticleRepo.ListBySection: %w", classify(err))
	}
	defer rows.Close()

	articles := []domain.Article{}
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ArticleRepo.ListBySection: scan: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ArticleRepo.ListBySection: rows: %w", classify(err))
	}

	if err := r.attachTags(ctx, articles); err != nil {
		return nil, fmt.Errorf("repo.ArticleRepo.ListBySection: %w", err)
	}
	return articles, nil
}

// linkTags inserts one article_tags row per tag.
func (r *pgArticleRepo) linkTags(ctx context.Context, articleID uuid.UUID, tags []domain.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	const q = `
		INSERT INTO article_tags (article_id, tag_id)
		SELECT @article_id::uuid, unnest(@tag_ids::uuid[])
		ON CONFLICT (article_id, tag_id) DO NOTHING`

	ids := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		ids[i] = t.ID
	}
	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"article_id": articleID,
		"tag_ids":    uuidStrings(ids),
	}); err != nil {
		return fmt.Errorf("link tags: %w", classify(err))
	}
	return nil
}

func (r *pgArticleRepo) attachTags(ctx context.Context, articles []domain.Article) error {
	ids := make([]uuid.UUID, len(articles))
	for i, a := range articles {
		ids[i] = a.ID
	}
	byID, err := tagsByOwner(ctx, r.db, articleTagsQuery, ids)
	if err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	for i := range articles {
		articles[i].Tags = byID[articles[i].ID]
	}
	return nil
}

// scanArticle maps a single database row into a domain.Article.
func scanArticle(s scanner) (domain.Article, error) {
	var (
		a         domain.Article
		id        pgtype.UUID
		sectionID pgtype.UUID
		updatedAt pgtype.Timestamptz
	)
	err := s.Scan(&id, &a.Title, &a.Content, &sectionID, &a.CreatedAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Article{}, domain.ErrNotFound
		}
		return domain.Article{}, err
	}
	a.ID = uuid.UUID(id.Bytes)
	a.SectionID = uuid.UUID(sectionID.Bytes)
	a.UpdatedAt = optionalTime(updatedAt)
	return a, nil
}
