package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a label that can be attached to articles.
// Tags are global and shared by sections and articles.
// Identity is determined by CanonicalKey, which is the locale-independent
// lower-case form of Name.
// Name preserves the original casing supplied by the first writer to create the tag.
type Tag struct {
	ID           uuid.UUID
	Name         string
	CanonicalKey string
	CreatedAt    time.Time
}

// TagNames returns the display names of tags sorted case-insensitively.
func TagNames(tags []Tag) []string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.Name
	}
	SortTagNames(names)
	return names
}
