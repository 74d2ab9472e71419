package repo

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Store bundles the repos that share one connection or transaction.
// Services that must commit several writes together (new tags, a new section,
// an article) run them through InTx and use the Store handed to fn.
type Store interface {
	Tags() TagRepo
	Sections() SectionRepo
	Articles() ArticleRepo

	// InTx runs fn inside a transaction. The transaction commits when fn
	// returns nil and rolls back otherwise. Conflicts detected at commit time
	// are reported as domain.ErrConflict.
	InTx(ctx context.Context, fn func(Store) error) error
}

// pgStore is the Postgres implementation of Store.
type pgStore struct {
	db       db
	tags     TagRepo
	sections SectionRepo
	articles ArticleRepo
}

// NewStore constructs a Store backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewStore(db db) Store {
	return &pgStore{
		db:       db,
		tags:     NewTagRepo(db),
		sections: NewSectionRepo(db),
		articles: NewArticleRepo(db),
	}
}

func (s *pgStore) Tags() TagRepo         { return s.tags }
func (s *pgStore) Sections() SectionRepo { return s.sections }
func (s *pgStore) Articles() ArticleRepo { return s.articles }

// InTx begins a transaction (a savepoint when s is already transactional)
// and hands fn a Store bound to it.
func (s *pgStore) InTx(ctx context.Context, fn func(Store) error) error {
	return classify(pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return fn(NewStore(tx))
	}))
}
