package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// productRepo is the concrete implementation of ProductRepository
type productRepo struct {
	db *database.DB
}

// NewProductRepo creates a new product repository
func NewProductRepo(db *database.DB) ProductRepository {
	return &productRepo{db: db}
}

// Create inserts a new product and fills in the server-assigned columns
func (r *productRepo) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, short_description, price, features,
		                      benefits, hero_image_url, gallery_images, category, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, is_active, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		product.Name, product.Description, product.ShortDescription, product.Price,
		product.Features, product.Benefits, product.HeroImageURL,
		product.GalleryImages, product.Category, product.Tags,
	).Scan(&product.ID, &product.IsActive, &product.CreatedAt, &product.UpdatedAt)
	return classifyError(err)
}

const productColumns = `id, name, description, short_description, price, features,
	benefits, hero_image_url, gallery_images, category, tags, is_active,
	created_at, updated_at`

func scanProduct(row interface{ Scan(...interface{}) error }, p *models.Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.ShortDescription, &p.Price,
		&p.Features, &p.Benefits, &p.HeroImageURL, &p.GalleryImages,
		&p.Category, &p.Tags, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
}

// GetAll retrieves all products ordered by creation time
func (r *productRepo) GetAll(ctx context.Context) ([]*models.Product, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		var product models.Product
		if err := scanProduct(rows, &product); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}
	return products, rows.Err()
}

// GetByID retrieves a product by ID, returning nil when no row matches
func (r *productRepo) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	var product models.Product
	row := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	err := scanProduct(row, &product)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Count returns the total number of products
func (r *productRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM products").Scan(&count)
	return count, err
}
