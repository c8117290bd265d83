package models

import (
	"time"
)

// BlogPost represents a blog article, draft until published
type BlogPost struct {
	ID               int64      `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Slug             string     `json:"slug" db:"slug"`
	Content          string     `json:"content" db:"content"`
	Excerpt          string     `json:"excerpt" db:"excerpt"`
	FeaturedImageURL *string    `json:"featured_image_url" db:"featured_image_url"`
	AuthorID         int64      `json:"author_id" db:"author_id"`
	Categories       StringList `json:"categories" db:"categories"`
	Tags             StringList `json:"tags" db:"tags"`
	IsPublished      bool       `json:"is_published" db:"is_published"`
	PublishedAt      *time.Time `json:"published_at" db:"published_at"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateBlogPostInput is the accepted payload for createBlogPost
type CreateBlogPostInput struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Content          string     `json:"content"`
	Excerpt          string     `json:"excerpt"`
	FeaturedImageURL *string    `json:"featured_image_url"`
	AuthorID         int64      `json:"author_id"`
	Categories       StringList `json:"categories"`
	Tags             StringList `json:"tags"`
	IsPublished      bool       `json:"is_published"`
}

// ApplyDefaults fills omitted optional fields with their schema defaults
func (in *CreateBlogPostInput) ApplyDefaults() {
	if in.Categories == nil {
		in.Categories = StringList{}
	}
	if in.Tags == nil {
		in.Tags = StringList{}
	}
}
