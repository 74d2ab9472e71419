// Package repo contains all database access logic for the article sections API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here: only SQL, type mapping, and translation of
// Postgres errors into domain sentinels.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/article-sections/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test; Begin on a
// pgx.Tx opens a savepoint, so Store.InTx nests cleanly inside it.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// SQLSTATE codes that mean "another writer got there first; try again".
const (
	sqlStateUniqueViolation      = "23505"
	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// classify maps Postgres failures onto domain sentinels so services can decide
// between retrying (ErrConflict) and giving up (ErrStoreUnavailable).
// Any other error is returned unchanged.
func classify(err error) error {
	if err == nil || errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrStoreUnavailable) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlStateUniqueViolation, sqlStateSerializationFailure, sqlStateDeadlockDetected:
			return fmt.Errorf("%w: %w", domain.ErrConflict, err)
		}
		return err
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return err
}

// uuidStrings converts ids to their text form for `@ids::uuid[]` parameters.
func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// escapeLike escapes LIKE metacharacters so a user prefix matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// optionalTime converts a nullable timestamptz into a *time.Time.
func optionalTime(ts pgtype.Timestamptz) *time.Time {
	if !ts.Valid {
		return nil
	}
	t := ts.Time
	return &t
}

// tagsByOwner runs q, which must select (owner_id, tag id, name, canonical_key,
// created_at) filtered by `@owner_ids::uuid[]`, and groups the tags by owner.
// Owners with no tags map to an empty, non-nil slice.
func tagsByOwner(ctx context.Context, db db, q string, owners []uuid.UUID) (map[uuid.UUID][]domain.Tag, error) {
	out := make(map[uuid.UUID][]domain.Tag, len(owners))
	for _, id := range owners {
		out[id] = []domain.Tag{}
	}
	if len(owners) == 0 {
		return out, nil
	}

	rows, err := db.Query(ctx, q, pgx.NamedArgs{"owner_ids": uuidStrings(owners)})
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			owner pgtype.UUID
			tagID pgtype.UUID
			t     domain.Tag
		)
		if err := rows.Scan(&owner, &tagID, &t.Name, &t.CanonicalKey, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		t.ID = uuid.UUID(tagID.Bytes)
		key := uuid.UUID(owner.Bytes)
		out[key] = append(out[key], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", classify(err))
	}
	return out, nil
}
