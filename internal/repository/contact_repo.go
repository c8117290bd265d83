package repository

import (
	"context"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// contactRepo is the concrete implementation of ContactRepository
type contactRepo struct {
	db *database.DB
}

// NewContactRepo creates a new contact submission repository
func NewContactRepo(db *database.DB) ContactRepository {
	return &contactRepo{db: db}
}

// Create inserts a new contact submission and fills in the server-assigned columns.
// New submissions always start in status 'new'.
func (r *contactRepo) Create(ctx context.Context, sub *models.ContactSubmission) error {
	query := `
		INSERT INTO contact_submissions (name, email, company, phone, message, product_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, status, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		sub.Name, sub.Email, sub.Company, sub.Phone, sub.Message, sub.ProductID,
	).Scan(&sub.ID, &sub.Status, &sub.CreatedAt)
	return classifyError(err)
}

// GetAll retrieves all contact submissions, newest first
func (r *contactRepo) GetAll(ctx context.Context) ([]*models.ContactSubmission, error) {
	query := `
		SELECT id, name, email, company, phone, message, product_id, status, created_at
		FROM contact_submissions
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := []*models.ContactSubmission{}
	for rows.Next() {
		var sub models.ContactSubmission
		err := rows.Scan(
			&sub.ID, &sub.Name, &sub.Email, &sub.Company, &sub.Phone,
			&sub.Message, &sub.ProductID, &sub.Status, &sub.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		subs = append(subs, &sub)
	}
	return subs, rows.Err()
}

// Count returns the total number of contact submissions
func (r *contactRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM contact_submissions").Scan(&count)
	return count, err
}
