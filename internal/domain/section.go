package domain

import (
	"time"

	"github.com/google/uuid"
)

// Section groups every article that carries exactly the same tag set.
// Sections are created by tag resolution only and are never edited:
// an article whose tags change is moved to another section instead.
// TagSetKey is the content address of the tag set (see TagSetKey).
type Section struct {
	ID           uuid.UUID
	Name         string
	TagSetKey    string
	Tags         []Tag
	ArticleCount int
	CreatedAt    time.Time
	UpdatedAt    *time.Time // nil until modified; sections are immutable so normally nil
}
