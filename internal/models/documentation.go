package models

import (
	"time"
)

// Documentation represents a documentation page for a product.
// Slugs are unique per product, not globally; pages order by order_index.
type Documentation struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Slug        string    `json:"slug" db:"slug"`
	Content     string    `json:"content" db:"content"`
	Category    string    `json:"category" db:"category"`
	ProductID   int64     `json:"product_id" db:"product_id"`
	OrderIndex  int       `json:"order_index" db:"order_index"`
	IsPublished bool      `json:"is_published" db:"is_published"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// CreateDocumentationInput is the accepted payload for createDocumentation
type CreateDocumentationInput struct {
	Title      string `json:"title"`
	Slug       string `json:"slug"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	ProductID  int64  `json:"product_id"`
	OrderIndex int    `json:"order_index"`
}
