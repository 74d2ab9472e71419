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

// TagRepo defines the persistence operations for Tags.
// Uniqueness of canonical_key is enforced by the database, not by callers.
type TagRepo interface {
	// FindByKey returns the tag with the given canonical key.
	// Returns domain.ErrNotFound if no such tag exists.
	FindByKey(ctx context.Context, key string) (domain.Tag, error)

	// GetOrCreate inserts a tag by canonical key, or returns the existing tag
	// if the key already exists. The name of the first creator is preserved.
	GetOrCreate(ctx context.Context, key, name string) (domain.Tag, error)

	// ListPaged returns one page of tags whose canonical key starts with
	// prefix, ordered by canonical key, plus the total number of matches.
	ListPaged(ctx context.Context, prefix string, p domain.PaginationParams) ([]domain.Tag, int64, error)
}

// pgTagRepo is the Postgres implementation of TagRepo.
type pgTagRepo struct {
	db db
}

// NewTagRepo constructs a TagRepo backed by the provided db connection.
func NewTagRepo(db db) TagRepo {
	return &pgTagRepo{db: db}
}

func (r *pgTagRepo) FindByKey(ctx context.Context, key string) (domain.Tag, error) {
	const q = `
		SELECT id, name, canonical_key, created_at
		FROM tags
		WHERE canonical_key = @key`

	result, err := scanTag(r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}))
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.FindByKey: %w", classify(err))
	}
	return result, nil
}

// GetOrCreate is a single optimistic insert. The DO UPDATE SET trick forces
// the RETURNING clause to fire on conflict, so a writer that loses the race
// on the unique index waits for the winner to commit and then receives the
// winner's row instead of an error.
func (r *pgTagRepo) GetOrCreate(ctx context.Context, key, name string) (domain.Tag, error) {
	const q = `
		INSERT INTO tags (name, canonical_key)
		VALUES (@name, @key)
		ON CONFLICT (canonical_key) DO UPDATE SET canonical_key = EXCLUDED.canonical_key
		RETURNING id, name, canonical_key, created_at`

	result, err := scanTag(r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": name, "key": key}))
	if err != nil {
		return domain.Tag{}, fmt.Errorf("repo.TagRepo.GetOrCreate: %w", classify(err))
	}
	return result, nil
}

func (r *pgTagRepo) ListPaged(ctx context.Context, prefix string, p domain.PaginationParams) ([]domain.Tag, int64, error) {
	const countQ = `
		SELECT count(*)
		FROM tags
		WHERE canonical_key LIKE @prefix || '%'`

	const listQ = `
		SELECT id, name, canonical_key, created_at
		FROM tags
		WHERE canonical_key LIKE @prefix || '%'
		ORDER BY canonical_key
		LIMIT @limit OFFSET @offset`

	escaped := escapeLike(prefix)

	var total int64
	if err := r.db.QueryRow(ctx, countQ, pgx.NamedArgs{"prefix": escaped}).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("repo.TagRepo.ListPaged: count: %w", classify(err))
	}

	rows, err := r.db.Query(ctx, listQ, pgx.NamedArgs{
		"prefix": escaped,
		"limit":  p.Limit,
		"offset": p.Offset(),
	})
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TagRepo.ListPaged: %w", classify(err))
	}
	defer rows.Close()

	tags := []domain.Tag{}
	for rows.Next() {
		tag, err := scanTag(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TagRepo.ListPaged: scan: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TagRepo.ListPaged: rows: %w", classify(err))
	}
	return tags, total, nil
}

// scanTag maps a single database row into a domain.Tag.
func scanTag(s scanner) (domain.Tag, error) {
	var (
		t  domain.Tag
		id pgtype.UUID
	)
	err := s.Scan(&id, &t.Name, &t.CanonicalKey, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Tag{}, domain.ErrNotFound
		}
		return domain.Tag{}, err
	}
	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}
