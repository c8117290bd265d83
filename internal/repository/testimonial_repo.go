package repository

import (
	"context"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// testimonialRepo is the concrete implementation of TestimonialRepository
type testimonialRepo struct {
	db *database.DB
}

// NewTestimonialRepo creates a new testimonial repository
func NewTestimonialRepo(db *database.DB) TestimonialRepository {
	return &testimonialRepo{db: db}
}

// Create inserts a new testimonial and fills in the server-assigned columns
func (r *testimonialRepo) Create(ctx context.Context, t *models.Testimonial) error {
	query := `
		INSERT INTO testimonials (content, author_name, author_title, author_company,
		                          author_avatar_url, rating, product_id, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		t.Content, t.AuthorName, t.AuthorTitle, t.AuthorCompany,
		t.AuthorAvatarURL, t.Rating, t.ProductID, t.IsFeatured,
	).Scan(&t.ID, &t.CreatedAt)
	return classifyError(err)
}

const testimonialColumns = `id, content, author_name, author_title, author_company,
	author_avatar_url, rating, product_id, is_featured, created_at`

func (r *testimonialRepo) queryTestimonials(ctx context.Context, query string, args ...interface{}) ([]*models.Testimonial, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	testimonials := []*models.Testimonial{}
	for rows.Next() {
		var t models.Testimonial
		err := rows.Scan(
			&t.ID, &t.Content, &t.AuthorName, &t.AuthorTitle, &t.AuthorCompany,
			&t.AuthorAvatarURL, &t.Rating, &t.ProductID, &t.IsFeatured, &t.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, &t)
	}
	return testimonials, rows.Err()
}

// GetByProduct retrieves testimonials for one product, newest first
func (r *testimonialRepo) GetByProduct(ctx context.Context, productID int64) ([]*models.Testimonial, error) {
	return r.queryTestimonials(ctx, `
		SELECT `+testimonialColumns+` FROM testimonials
		WHERE product_id = $1
		ORDER BY created_at DESC`, productID)
}

// GetFeatured retrieves curated featured testimonials, newest first
func (r *testimonialRepo) GetFeatured(ctx context.Context) ([]*models.Testimonial, error) {
	return r.queryTestimonials(ctx, `
		SELECT `+testimonialColumns+` FROM testimonials
		WHERE is_featured
		ORDER BY created_at DESC`)
}

// Count returns the total number of testimonials
func (r *testimonialRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM testimonials").Scan(&count)
	return count, err
}
