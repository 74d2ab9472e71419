package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/repo"
)

// SectionResolver maps a raw tag list to the one section that owns exactly
// that tag set, creating tags and the section on first sight.
//
// Resolution is deterministic and idempotent: any two lists that normalize
// to the same key set resolve to the same section, whatever their order,
// casing, whitespace or duplicates. A hit performs no writes.
type SectionResolver struct {
	store  repo.Store
	retry  RetryPolicy
	logger *slog.Logger
}

// NewSectionResolver constructs a SectionResolver over store.
// A nil logger falls back to slog.Default().
func NewSectionResolver(store repo.Store, retry RetryPolicy, logger *slog.Logger) *SectionResolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &SectionResolver{store: store, retry: retry, logger: logger}
}

// Resolve returns the section for rawTags, creating it if needed.
// The lookup runs without a transaction; a miss runs the create path in its
// own transaction and restarts it when a concurrent writer wins a race.
func (r *SectionResolver) Resolve(ctx context.Context, rawTags []string) (domain.Section, error) {
	tags := domain.NormalizeTags(rawTags)

	section, err := r.store.Sections().FindByExactTagSet(ctx, domain.Keys(tags))
	if err == nil {
		return section, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Section{}, fmt.Errorf("service.SectionResolver.Resolve: %w", err)
	}

	err = retryOnConflict(ctx, r.retry, r.logger, "resolve", func() error {
		return r.store.InTx(ctx, func(st repo.Store) error {
			var err error
			section, err = r.resolve(ctx, st, tags)
			return err
		})
	})
	if err != nil {
		return domain.Section{}, fmt.Errorf("service.SectionResolver.Resolve: %w", err)
	}
	return section, nil
}

// ResolveTx resolves rawTags using st, which is normally the transactional
// Store handed out by repo.Store.InTx. Conflicts are returned to the caller,
// which owns the transaction and therefore the retry.
func (r *SectionResolver) ResolveTx(ctx context.Context, st repo.Store, rawTags []string) (domain.Section, error) {
	section, err := r.resolve(ctx, st, domain.NormalizeTags(rawTags))
	if err != nil {
		return domain.Section{}, fmt.Errorf("service.SectionResolver.ResolveTx: %w", err)
	}
	return section, nil
}

func (r *SectionResolver) resolve(ctx context.Context, st repo.Store, tags []domain.NormalizedTag) (domain.Section, error) {
	keys := domain.Keys(tags)

	section, err := st.Sections().FindByExactTagSet(ctx, keys)
	if err == nil {
		return section, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.Section{}, err
	}

	// Tags are written in key order so concurrent resolvers lock tag rows in
	// the same order.
	ordered := slices.Clone(tags)
	slices.SortFunc(ordered, func(a, b domain.NormalizedTag) int {
		return strings.Compare(a.Key, b.Key)
	})

	resolved := make([]domain.Tag, 0, len(ordered))
	for _, nt := range ordered {
		tag, err := st.Tags().GetOrCreate(ctx, nt.Key, nt.Display)
		if err != nil {
			return domain.Section{}, err
		}
		resolved = append(resolved, tag)
	}

	section, err = st.Sections().Create(ctx, resolved, domain.SectionName(resolved))
	if err != nil {
		return domain.Section{}, err
	}
	r.logger.DebugContext(ctx, "section resolved on miss",
		"section_id", section.ID,
		"section_name", section.Name,
		"tag_count", len(resolved),
	)
	return section, nil
}
