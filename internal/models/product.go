package models

import (
	"time"
)

// Product represents a product offered on the site
type Product struct {
	ID               int64      `json:"id" db:"id"`
	Name             string     `json:"name" db:"name"`
	Description      string     `json:"description" db:"description"`
	ShortDescription string     `json:"short_description" db:"short_description"`
	Price            float64    `json:"price" db:"price"`
	Features         StringList `json:"features" db:"features"`
	Benefits         StringList `json:"benefits" db:"benefits"`
	HeroImageURL     *string    `json:"hero_image_url" db:"hero_image_url"`
	GalleryImages    StringList `json:"gallery_images" db:"gallery_images"`
	Category         string     `json:"category" db:"category"`
	Tags             StringList `json:"tags" db:"tags"`
	IsActive         bool       `json:"is_active" db:"is_active"`
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateProductInput is the accepted payload for createProduct
type CreateProductInput struct {
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	Price            float64    `json:"price"`
	Features         StringList `json:"features"`
	Benefits         StringList `json:"benefits"`
	HeroImageURL     *string    `json:"hero_image_url"`
	GalleryImages    StringList `json:"gallery_images"`
	Category         string     `json:"category"`
	Tags             StringList `json:"tags"`
}

// ApplyDefaults fills omitted optional fields with their schema defaults
func (in *CreateProductInput) ApplyDefaults() {
	if in.Features == nil {
		in.Features = StringList{}
	}
	if in.Benefits == nil {
		in.Benefits = StringList{}
	}
	if in.GalleryImages == nil {
		in.GalleryImages = StringList{}
	}
	if in.Tags == nil {
		in.Tags = StringList{}
	}
}
