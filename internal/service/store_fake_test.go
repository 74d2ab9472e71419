package service_test

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/repo"
)

// ---- in-memory Store -------------------------------------------------------
//
// fakeStore mimics the Postgres Store closely enough for service tests:
// unique tag keys, unique tag sets, first writer wins, and InTx rolls back
// every write when fn fails. Transactions are serialized.

type fakeStore struct {
	txMu sync.Mutex

	mu       sync.Mutex
	clock    time.Time
	tags     map[string]domain.Tag
	sections map[string]domain.Section
	articles map[uuid.UUID]domain.Article

	// conflicts makes the next n InTx calls fail with domain.ErrConflict.
	conflicts int
	// findErr, when set, is returned by every FindByExactTagSet call.
	findErr error
	// articleWriteErr, when set, is returned by article Create and Update.
	articleWriteErr error

	txCalls       int
	tagInserts    int
	sectionWrites int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		clock:    time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		tags:     map[string]domain.Tag{},
		sections: map[string]domain.Section{},
		articles: map[uuid.UUID]domain.Article{},
	}
}

// compile-time check
var _ repo.Store = (*fakeStore)(nil)

func (s *fakeStore) Tags() repo.TagRepo         { return fakeTags{s} }
func (s *fakeStore) Sections() repo.SectionRepo { return fakeSections{s} }
func (s *fakeStore) Articles() repo.ArticleRepo { return fakeArticles{s} }

func (s *fakeStore) InTx(_ context.Context, fn func(repo.Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	s.txCalls++
	if s.conflicts > 0 {
		s.conflicts--
		s.mu.Unlock()
		return fmt.Errorf("fake: serialization failure: %w", domain.ErrConflict)
	}
	tags, sections, articles := maps.Clone(s.tags), maps.Clone(s.sections), maps.Clone(s.articles)
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.tags, s.sections, s.articles = tags, sections, articles
		s.mu.Unlock()
		return err
	}
	return nil
}

// now advances the fake clock by one second per call. Callers hold mu.
func (s *fakeStore) now() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *fakeStore) sectionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sections)
}

func (s *fakeStore) tagCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tags)
}

// withCount fills in the derived article count. Callers hold mu.
func (s *fakeStore) withCount(sec domain.Section) domain.Section {
	sec.ArticleCount = 0
	for _, a := range s.articles {
		if a.SectionID == sec.ID {
			sec.ArticleCount++
		}
	}
	sec.Tags = slices.Clone(sec.Tags)
	return sec
}

// ---- tags ----

type fakeTags struct{ s *fakeStore }

func (f fakeTags) FindByKey(_ context.Context, key string) (domain.Tag, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	t, ok := f.s.tags[key]
	if !ok {
		return domain.Tag{}, domain.ErrNotFound
	}
	return t, nil
}

func (f fakeTags) GetOrCreate(_ context.Context, key, name string) (domain.Tag, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if t, ok := f.s.tags[key]; ok {
		return t, nil
	}
	t := domain.Tag{ID: uuid.New(), Name: name, CanonicalKey: key, CreatedAt: f.s.now()}
	f.s.tags[key] = t
	f.s.tagInserts++
	return t, nil
}

func (f fakeTags) ListPaged(_ context.Context, prefix string, p domain.PaginationParams) ([]domain.Tag, int64, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	var matched []domain.Tag
	for k, t := range f.s.tags {
		if strings.HasPrefix(k, prefix) {
			matched = append(matched, t)
		}
	}
	slices.SortFunc(matched, func(a, b domain.Tag) int { return strings.Compare(a.CanonicalKey, b.CanonicalKey) })
	total := int64(len(matched))
	start := min(p.Offset(), len(matched))
	end := min(start+p.Limit, len(matched))
	return matched[start:end], total, nil
}

// ---- sections ----

type fakeSections struct{ s *fakeStore }

func (f fakeSections) FindByExactTagSet(_ context.Context, keys []string) (domain.Section, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.findErr != nil {
		return domain.Section{}, f.s.findErr
	}
	sec, ok := f.s.sections[domain.TagSetKey(keys)]
	if !ok {
		return domain.Section{}, domain.ErrNotFound
	}
	return f.s.withCount(sec), nil
}

func (f fakeSections) Create(_ context.Context, tags []domain.Tag, name string) (domain.Section, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	keys := make([]string, len(tags))
	for i, t := range tags {
		keys[i] = t.CanonicalKey
	}
	key := domain.TagSetKey(keys)
	if sec, ok := f.s.sections[key]; ok {
		return f.s.withCount(sec), nil
	}
	sorted := slices.Clone(tags)
	slices.SortFunc(sorted, func(a, b domain.Tag) int { return strings.Compare(a.CanonicalKey, b.CanonicalKey) })
	sec := domain.Section{
		ID:        uuid.New(),
		Name:      name,
		TagSetKey: key,
		Tags:      sorted,
		CreatedAt: f.s.now(),
	}
	f.s.sections[key] = sec
	f.s.sectionWrites++
	return f.s.withCount(sec), nil
}

func (f fakeSections) GetByID(_ context.Context, id uuid.UUID) (domain.Section, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	for _, sec := range f.s.sections {
		if sec.ID == id {
			return f.s.withCount(sec), nil
		}
	}
	return domain.Section{}, domain.ErrNotFound
}

// List returns sections in creation order so callers' sorting is observable.
func (f fakeSections) List(_ context.Context) ([]domain.Section, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []domain.Section{}
	for _, sec := range f.s.sections {
		out = append(out, f.s.withCount(sec))
	}
	slices.SortFunc(out, func(a, b domain.Section) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}

// ---- articles ----

type fakeArticles struct{ s *fakeStore }

func (f fakeArticles) Create(_ context.Context, a domain.Article) (domain.Article, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.articleWriteErr != nil {
		return domain.Article{}, f.s.articleWriteErr
	}
	a.ID = uuid.New()
	a.CreatedAt = f.s.now()
	a.UpdatedAt = nil
	a.Tags = slices.Clone(a.Tags)
	f.s.articles[a.ID] = a
	return a, nil
}

func (f fakeArticles) GetByID(_ context.Context, id uuid.UUID) (domain.Article, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	a, ok := f.s.articles[id]
	if !ok {
		return domain.Article{}, domain.ErrNotFound
	}
	return a, nil
}

func (f fakeArticles) Update(_ context.Context, a domain.Article) (domain.Article, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if f.s.articleWriteErr != nil {
		return domain.Article{}, f.s.articleWriteErr
	}
	existing, ok := f.s.articles[a.ID]
	if !ok {
		return domain.Article{}, domain.ErrNotFound
	}
	now := f.s.now()
	existing.Title = a.Title
	existing.Content = a.Content
	existing.SectionID = a.SectionID
	existing.Tags = slices.Clone(a.Tags)
	existing.UpdatedAt = &now
	f.s.articles[a.ID] = existing
	return existing, nil
}

func (f fakeArticles) Delete(_ context.Context, id uuid.UUID) error {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	if _, ok := f.s.articles[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.s.articles, id)
	return nil
}

// ListBySection returns articles in creation order so callers' sorting is observable.
func (f fakeArticles) ListBySection(_ context.Context, sectionID uuid.UUID) ([]domain.Article, error) {
	f.s.mu.Lock()
	defer f.s.mu.Unlock()
	out := []domain.Article{}
	for _, a := range f.s.articles {
		if a.SectionID == sectionID {
			out = append(out, a)
		}
	}
	slices.SortFunc(out, func(a, b domain.Article) int { return a.CreatedAt.Compare(b.CreatedAt) })
	return out, nil
}
