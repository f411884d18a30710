// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Blog statuses, mirrored by the BLOG_STATUS core enumeration.
const (
	BlogStatusDraft     = "DRAFT"
	BlogStatusPublished = "PUBLISHED"
	BlogStatusArchived  = "ARCHIVED"
)

// Blog is a blog post managed from the admin panel.
type Blog struct {
	// ID is the server-assigned identifier; zero for posts not yet created.
	ID int64 `json:"id,omitempty"`

	// Title is the headline of the post.
	Title string `json:"title"`

	// Slug is the URL-friendly identifier. The server derives it from Title
	// when empty.
	Slug string `json:"slug,omitempty"`

	// Summary is an optional short description shown in listings.
	Summary string `json:"summary,omitempty"`

	// Content is the HTML body of the post.
	Content string `json:"content"`

	// Status is one of BlogStatusDraft, BlogStatusPublished, BlogStatusArchived.
	Status string `json:"status,omitempty"`

	// CoverURL points to the uploaded cover image, if any.
	CoverURL string `json:"coverUrl,omitempty"`

	// Attachments lists URLs of additional uploaded files.
	Attachments []string `json:"attachments,omitempty"`

	// Tags are free-form labels.
	Tags []string `json:"tags,omitempty"`

	// AuthorID is the identifier of the user who created the post.
	AuthorID int64 `json:"authorId,omitempty"`

	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// BlogFilter narrows blog listings. Zero values are not sent.
type BlogFilter struct {
	Status string
	Tag    string
	Search string
}

// Query returns the filter as URL query parameters.
func (f BlogFilter) Query() map[string]string {
	q := make(map[string]string, 3)
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Tag != "" {
		q["tag"] = f.Tag
	}
	if f.Search != "" {
		q["search"] = f.Search
	}
	return q
}
