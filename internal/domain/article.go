// Package domain contains the core data types for the article sections API.
// This package has no infrastructure dependencies and is imported by every
// other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxTitleLength is the maximum article title length in characters.
	MaxTitleLength = 256
)

// Article is a piece of content filed under exactly one Section.
// Tags always equal the owning section's tag set: they are never assigned
// independently of section resolution.
type Article struct {
	ID        uuid.UUID
	Title     string
	Content   string
	SectionID uuid.UUID
	Tags      []Tag
	CreatedAt time.Time
	UpdatedAt *time.Time // nil until the first update
}

// LastModified returns UpdatedAt when set, otherwise CreatedAt.
func (a Article) LastModified() time.Time {
	if a.UpdatedAt != nil {
		return *a.UpdatedAt
	}
	return a.CreatedAt
}

// ArticleInput carries the caller-supplied fields for create and update.
// Tags are raw strings; they are normalized during section resolution.
type ArticleInput struct {
	Title   string
	Content string
	Tags    []string
}
