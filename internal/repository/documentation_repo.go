package repository

import (
	"context"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// documentationRepo is the concrete implementation of DocumentationRepository
type documentationRepo struct {
	db *database.DB
}

// NewDocumentationRepo creates a new documentation repository
func NewDocumentationRepo(db *database.DB) DocumentationRepository {
	return &documentationRepo{db: db}
}

// Create inserts a new documentation page and fills in the server-assigned columns
func (r *documentationRepo) Create(ctx context.Context, doc *models.Documentation) error {
	query := `
		INSERT INTO documentation (title, slug, content, category, product_id, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_published, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		doc.Title, doc.Slug, doc.Content, doc.Category, doc.ProductID, doc.OrderIndex,
	).Scan(&doc.ID, &doc.IsPublished, &doc.CreatedAt, &doc.UpdatedAt)
	return classifyError(err)
}

// GetByProduct retrieves documentation pages for one product in display order
func (r *documentationRepo) GetByProduct(ctx context.Context, productID int64) ([]*models.Documentation, error) {
	query := `
		SELECT id, title, slug, content, category, product_id, order_index,
		       is_published, created_at, updated_at
		FROM documentation
		WHERE product_id = $1
		ORDER BY order_index, id
	`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []*models.Documentation{}
	for rows.Next() {
		var doc models.Documentation
		err := rows.Scan(
			&doc.ID, &doc.Title, &doc.Slug, &doc.Content, &doc.Category,
			&doc.ProductID, &doc.OrderIndex, &doc.IsPublished,
			&doc.CreatedAt, &doc.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// Count returns the total number of documentation pages
func (r *documentationRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM documentation").Scan(&count)
	return count, err
}
