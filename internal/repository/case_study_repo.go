package repository

import (
	"context"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// caseStudyRepo is the concrete implementation of CaseStudyRepository
type caseStudyRepo struct {
	db *database.DB
}

// NewCaseStudyRepo creates a new case study repository
func NewCaseStudyRepo(db *database.DB) CaseStudyRepository {
	return &caseStudyRepo{db: db}
}

// Create inserts a new case study and fills in the server-assigned columns
func (r *caseStudyRepo) Create(ctx context.Context, cs *models.CaseStudy) error {
	query := `
		INSERT INTO case_studies (title, slug, client_name, industry, problem, solution,
		                          results, featured_image_url, gallery_images, metrics, product_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, is_published, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		cs.Title, cs.Slug, cs.ClientName, cs.Industry, cs.Problem, cs.Solution,
		cs.Results, cs.FeaturedImageURL, cs.GalleryImages, cs.Metrics, cs.ProductID,
	).Scan(&cs.ID, &cs.IsPublished, &cs.CreatedAt, &cs.UpdatedAt)
	return classifyError(err)
}

const caseStudyColumns = `id, title, slug, client_name, industry, problem, solution,
	results, featured_image_url, gallery_images, metrics, product_id, is_published,
	created_at, updated_at`

func (r *caseStudyRepo) queryCaseStudies(ctx context.Context, query string, args ...interface{}) ([]*models.CaseStudy, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	studies := []*models.CaseStudy{}
	for rows.Next() {
		var cs models.CaseStudy
		err := rows.Scan(
			&cs.ID, &cs.Title, &cs.Slug, &cs.ClientName, &cs.Industry,
			&cs.Problem, &cs.Solution, &cs.Results, &cs.FeaturedImageURL,
			&cs.GalleryImages, &cs.Metrics, &cs.ProductID, &cs.IsPublished,
			&cs.CreatedAt, &cs.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		studies = append(studies, &cs)
	}
	return studies, rows.Err()
}

// GetAll retrieves all case studies, newest first
func (r *caseStudyRepo) GetAll(ctx context.Context) ([]*models.CaseStudy, error) {
	return r.queryCaseStudies(ctx, `SELECT `+caseStudyColumns+` FROM case_studies ORDER BY created_at DESC`)
}

// GetByProduct retrieves case studies for one product, newest first
func (r *caseStudyRepo) GetByProduct(ctx context.Context, productID int64) ([]*models.CaseStudy, error) {
	return r.queryCaseStudies(ctx, `
		SELECT `+caseStudyColumns+` FROM case_studies
		WHERE product_id = $1
		ORDER BY created_at DESC`, productID)
}

// Count returns the total number of case studies
func (r *caseStudyRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM case_studies").Scan(&count)
	return count, err
}
