package domain

import (
	"cmp"
	"slices"
	"strings"
)

// SortTagNames sorts tag display names case-insensitively in place.
// Names that differ only in case keep a deterministic order.
func SortTagNames(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		if c := strings.Compare(CanonicalKey(a), CanonicalKey(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
}

// SortSectionsByArticleCount orders sections by article count, largest first.
// Sections with equal counts keep their incoming order.
func SortSectionsByArticleCount(sections []Section) {
	slices.SortStableFunc(sections, func(a, b Section) int {
		return cmp.Compare(b.ArticleCount, a.ArticleCount)
	})
}

// SortArticlesByRecency orders articles by LastModified, newest first.
func SortArticlesByRecency(articles []Article) {
	slices.SortStableFunc(articles, func(a, b Article) int {
		return b.LastModified().Compare(a.LastModified())
	})
}
