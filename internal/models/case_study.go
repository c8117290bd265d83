package models

import (
	"time"
)

// CaseStudy represents a customer case study tied to a product
type CaseStudy struct {
	ID               int64      `json:"id" db:"id"`
	Title            string     `json:"title" db:"title"`
	Slug             string     `json:"slug" db:"slug"`
	ClientName       string     `json:"client_name" db:"client_name"`
	Industry         string     `json:"industry" db:"industry"`
	Problem          string     `json:"problem" db:"problem"`
	Solution         string     `json:"solution" db:"solution"`
	Results          string     `json:"results" db:"results"`
	FeaturedImageURL *string    `json:"featured_image_url" db:"featured_image_url"`
	GalleryImages    StringList `json:"gallery_images" db:"gallery_images"`
	Metrics          MetricMap  `json:"metrics" db:"metrics"`
	ProductID        int64      `json:"product_id" db:"product_id"`
	IsPublished      bool       `json:"is_published" db:"is_published"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateCaseStudyInput is the accepted payload for createCaseStudy
type CreateCaseStudyInput struct {
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	ClientName       string     `json:"client_name"`
	Industry         string     `json:"industry"`
	Problem          string     `json:"problem"`
	Solution         string     `json:"solution"`
	Results          string     `json:"results"`
	FeaturedImageURL *string    `json:"featured_image_url"`
	GalleryImages    StringList `json:"gallery_images"`
	Metrics          MetricMap  `json:"metrics"`
	ProductID        int64      `json:"product_id"`
}

// ApplyDefaults fills omitted optional fields with their schema defaults
func (in *CreateCaseStudyInput) ApplyDefaults() {
	if in.GalleryImages == nil {
		in.GalleryImages = StringList{}
	}
	if in.Metrics == nil {
		in.Metrics = MetricMap{}
	}
}
