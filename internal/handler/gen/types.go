// Package gen holds the wire types, chi routing and strict-server adapter for
// the article sections API described by spec/openapi.yaml. It follows the
// layout of oapi-codegen's chi + strict-server output so handler.Server only
// implements StrictServerInterface and never touches http.Request directly.
package gen

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Article defines model for Article.
type Article struct {
	Content   string             `json:"content"`
	CreatedAt time.Time          `json:"created_at"`
	Id        openapi_types.UUID `json:"id"`
	SectionId openapi_types.UUID `json:"section_id"`
	Tags      []string           `json:"tags"`
	Title     string             `json:"title"`
	UpdatedAt *time.Time         `json:"updated_at,omitempty"`
}

// ArticleList defines model for ArticleList.
type ArticleList struct {
	Data []Article `json:"data"`
}

// ArticleRequest defines model for ArticleRequest.
type ArticleRequest struct {
	Content string    `json:"content"`
	Tags    *[]string `json:"tags,omitempty"`
	Title   string    `json:"title"`
}

// ErrorDetail defines model for ErrorDetail.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse defines model for ErrorResponse.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status string `json:"status"`
}

// Pagination defines model for Pagination.
type Pagination struct {
	Limit int `json:"limit"`
	Page  int `json:"page"`
	Total int `json:"total"`
}

// Section defines model for Section.
type Section struct {
	ArticleCount int                `json:"article_count"`
	CreatedAt    time.Time          `json:"created_at"`
	Id           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	Tags         []string           `json:"tags"`
	UpdatedAt    *time.Time         `json:"updated_at,omitempty"`
}

// SectionList defines model for SectionList.
type SectionList struct {
	Data []Section `json:"data"`
}

// Tag defines model for Tag.
type Tag struct {
	CreatedAt time.Time          `json:"created_at"`
	Id        openapi_types.UUID `json:"id"`
	Key       string             `json:"key"`
	Name      string             `json:"name"`
}

// TagList defines model for TagList.
type TagList struct {
	Data       []Tag      `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListTagsParams defines parameters for ListTags.
type ListTagsParams struct {
	// Q Case-insensitive tag prefix.
	Q *string `form:"q,omitempty" json:"q,omitempty"`

	// Page 1-based page number, clamped to 1000000.
	Page *int `form:"page,omitempty" json:"page,omitempty"`

	// Limit Page size, capped at 200.
	Limit *int `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateArticleJSONRequestBody defines body for CreateArticle for application/json ContentType.
type CreateArticleJSONRequestBody = ArticleRequest

// UpdateArticleJSONRequestBody defines body for UpdateArticle for application/json ContentType.
type UpdateArticleJSONRequestBody = ArticleRequest
