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

// SectionRepo defines the persistence operations for Sections and the
// section_tags association. Sections are immutable once created: there is
// no operation that changes a section's tag set.
type SectionRepo interface {
	// FindByExactTagSet returns the section whose tag set equals keys as an
	// unordered set. An empty keys matches the untagged section.
	// Returns domain.ErrNotFound if no such section exists.
	FindByExactTagSet(ctx context.Context, keys []string) (domain.Section, error)

	// Create inserts a section bound to exactly tags. If a concurrent writer
	// already created the section for the same tag set, that section is
	// returned instead and no second section is written.
	Create(ctx context.Context, tags []domain.Tag, name string) (domain.Section, error)

	// GetByID retrieves a section with its tags and article count.
	// Returns domain.ErrNotFound if no section with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Section, error)

	// List returns every section with its tags and article count,
	// ordered by article count descending, then creation time.
	List(ctx context.Context) ([]domain.Section, error)
}

// pgSectionRepo is the Postgres implementation of SectionRepo.
type pgSectionRepo struct {
	db db
}

// NewSectionRepo constructs a SectionRepo backed by the provided db connection.
func NewSectionRepo(db db) SectionRepo {
	return &pgSectionRepo{db: db}
}

// sectionColumns is the projection shared by every section read.
const sectionColumns = `
	s.id, s.name, s.tag_set_key, s.created_at, s.updated_at,
	(SELECT count(*) FROM articles a WHERE a.section_id = s.id) AS article_count`

const sectionTagsQuery = `
	SELECT st.section_id, t.id, t.name, t.canonical_key, t.created_at
	FROM section_tags st
	JOIN tags t ON t.id = st.tag_id
	WHERE st.section_id = ANY(@owner_ids::uuid[])
	ORDER BY t.canonical_key`

// FindByExactTagSet looks the set up by its content address. tag_count is a
// cardinality guard next to the unique key.
func (r *pgSectionRepo) FindByExactTagSet(ctx context.Context, keys []string) (domain.Section, error) {
	q := `SELECT ` + sectionColumns + `
		FROM sections s
		WHERE s.tag_set_key = @key AND s.tag_count = @count`

	section, err := r.getOne(ctx, q, pgx.NamedArgs{
		"key":   domain.TagSetKey(keys),
		"count": countDistinct(keys),
	})
	if err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.FindByExactTagSet: %w", err)
	}
	return section, nil
}

// Create performs an optimistic insert guarded by the unique tag_set_key.
// ON CONFLICT DO NOTHING returns no row when another writer owns the set; in
// that case the winner is re-read. Only the creator writes section_tags.
func (r *pgSectionRepo) Create(ctx context.Context, tags []domain.Tag, name string) (domain.Section, error) {
	const insertQ = `
		INSERT INTO sections (name, tag_set_key, tag_count)
		VALUES (@name, @key, @count)
		ON CONFLICT (tag_set_key) DO NOTHING
		RETURNING id, name, tag_set_key, created_at, updated_at, 0`

	const linkQ = `
		INSERT INTO section_tags (section_id, tag_id)
		SELECT @section_id::uuid, unnest(@tag_ids::uuid[])`

	keys := make([]string, len(tags))
	ids := make([]uuid.UUID, len(tags))
	for i, t := range tags {
		keys[i] = t.CanonicalKey
		ids[i] = t.ID
	}
	key := domain.TagSetKey(keys)

	created, err := scanSection(r.db.QueryRow(ctx, insertQ, pgx.NamedArgs{
		"name":  name,
		"key":   key,
		"count": len(tags),
	}))
	if errors.Is(err, domain.ErrNotFound) {
		winner, err := r.FindByExactTagSet(ctx, keys)
		if err != nil {
			return domain.Section{}, fmt.Errorf("repo.SectionRepo.Create: reread: %w", err)
		}
		return winner, nil
	}
	if err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.Create: %w", classify(err))
	}

	if len(ids) > 0 {
		if _, err := r.db.Exec(ctx, linkQ, pgx.NamedArgs{
			"section_id": created.ID,
			"tag_ids":    uuidStrings(ids),
		}); err != nil {
			return domain.Section{}, fmt.Errorf("repo.SectionRepo.Create: link tags: %w", classify(err))
		}
	}
	created.Tags = append([]domain.Tag{}, tags...)
	return created, nil
}

func (r *pgSectionRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Section, error) {
	q := `SELECT ` + sectionColumns + `
		FROM sections s
		WHERE s.id = @id`

	section, err := r.getOne(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return domain.Section{}, fmt.Errorf("repo.SectionRepo.GetByID: %w", err)
	}
	return section, nil
}

func (r *pgSectionRepo) List(ctx context.Context) ([]domain.Section, error) {
	q := `SELECT ` + sectionColumns + `
		FROM sections s
		ORDER BY article_count DESC, s.created_at, s.id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.List: %w", classify(err))
	}
	defer rows.Close()

	sections := []domain.Section{}
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.SectionRepo.List: scan: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.List: rows: %w", classify(err))
	}

	if err := r.attachTags(ctx, sections); err != nil {
		return nil, fmt.Errorf("repo.SectionRepo.List: %w", err)
	}
	return sections, nil
}

// getOne runs a single-section query and loads the section's tags.
func (r *pgSectionRepo) getOne(ctx context.Context, q string, args pgx.NamedArgs) (domain.Section, error) {
	s, err := scanSection(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Section{}, classify(err)
	}
	one := []domain.Section{s}
	if err := r.attachTags(ctx, one); err != nil {
		return domain.Section{}, err
	}
	return one[0], nil
}

func (r *pgSectionRepo) attachTags(ctx context.Context, sections []domain.Section) error {
	ids := make([]uuid.UUID, len(sections))
	for i, s := range sections {
		ids[i] = s.ID
	}
	byID, err := tagsByOwner(ctx, r.db, sectionTagsQuery, ids)
	if err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	for i := range sections {
		sections[i].Tags = byID[sections[i].ID]
	}
	return nil
}

// scanSection maps a single database row into a domain.Section.
func scanSection(s scanner) (domain.Section, error) {
	var (
		sec       domain.Section
		id        pgtype.UUID
		updatedAt pgtype.Timestamptz
		count     int64
	)
	err := s.Scan(&id, &sec.Name, &sec.TagSetKey, &sec.CreatedAt, &updatedAt, &count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Section{}, domain.ErrNotFound
		}
		return domain.Section{}, err
	}
	sec.ID = uuid.UUID(id.Bytes)
	sec.UpdatedAt = optionalTime(updatedAt)
	sec.ArticleCount = int(count)
	return sec, nil
}

// countDistinct returns the number of distinct values in keys.
func countDistinct(keys []string) int {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		seen[k] = struct{}{}
	}
	return len(seen)
}
