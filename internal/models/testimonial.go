package models

import (
	"time"
)

// Rating bounds for testimonials
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial represents a customer quote for a product
type Testimonial struct {
	ID              int64     `json:"id" db:"id"`
	Content         string    `json:"content" db:"content"`
	AuthorName      string    `json:"author_name" db:"author_name"`
	AuthorTitle     string    `json:"author_title" db:"author_title"`
	AuthorCompany   string    `json:"author_company" db:"author_company"`
	AuthorAvatarURL *string   `json:"author_avatar_url" db:"author_avatar_url"`
	Rating          int       `json:"rating" db:"rating"`
	ProductID       int64     `json:"product_id" db:"product_id"`
	IsFeatured      bool      `json:"is_featured" db:"is_featured"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// CreateTestimonialInput is the accepted payload for createTestimonial
type CreateTestimonialInput struct {
	Content         string  `json:"content"`
	AuthorName      string  `json:"author_name"`
	AuthorTitle     string  `json:"author_title"`
	AuthorCompany   string  `json:"author_company"`
	AuthorAvatarURL *string `json:"author_avatar_url"`
	Rating          int     `json:"rating"`
	ProductID       int64   `json:"product_id"`
	IsFeatured      bool    `json:"is_featured"`
}
