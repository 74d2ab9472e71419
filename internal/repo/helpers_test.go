package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/article-sections/internal/domain"
	"github.com/pkordes/article-sections/internal/repo"
)

// mustTags get-or-creates one tag per display name and returns them in input order.
func mustTags(t *testing.T, store repo.Store, names ...string) []domain.Tag {
	t.Helper()
	tags := make([]domain.Tag, 0, len(names))
	for _, n := range names {
		nt, ok := domain.NormalizeTag(n)
		require.True(t, ok, "tag %q normalizes to empty", n)
		tag, err := store.Tags().GetOrCreate(context.Background(), nt.Key, nt.Display)
		require.NoError(t, err)
		tags = append(tags, tag)
	}
	return tags
}

// mustSection creates the section for the given tag names.
func mustSection(t *testing.T, store repo.Store, names ...string) domain.Section {
	t.Helper()
	tags := mustTags(t, store, names...)
	section, err := store.Sections().Create(context.Background(), tags, domain.SectionName(tags))
	require.NoError(t, err)
	return section
}

func keysOf(names ...string) []string {
	return domain.Keys(domain.NormalizeTags(names))
}
