package repository

import (
	"context"
	"time"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetAll(ctx context.Context) ([]*models.User, error)
	Count(ctx context.Context) (int, error)
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetAll(ctx context.Context) ([]*models.Product, error)
	GetByID(ctx context.Context, id int64) (*models.Product, error)
	Count(ctx context.Context) (int, error)
}

// BlogPostRepository defines the interface for blog post data operations
type BlogPostRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetAll(ctx context.Context) ([]*models.BlogPost, error)
	GetPublished(ctx context.Context) ([]*models.BlogPost, error)
	Count(ctx context.Context) (int, error)
}

// CaseStudyRepository defines the interface for case study data operations
type CaseStudyRepository interface {
	Create(ctx context.Context, cs *models.CaseStudy) error
	GetAll(ctx context.Context) ([]*models.CaseStudy, error)
	GetByProduct(ctx context.Context, productID int64) ([]*models.CaseStudy, error)
	Count(ctx context.Context) (int, error)
}

// TestimonialRepository defines the interface for testimonial data operations
type TestimonialRepository interface {
	Create(ctx context.Context, t *models.Testimonial) error
	GetByProduct(ctx context.Context, productID int64) ([]*models.Testimonial, error)
	GetFeatured(ctx context.Context) ([]*models.Testimonial, error)
	Count(ctx context.Context) (int, error)
}

// AnalyticsRepository defines the interface for analytics event operations
type AnalyticsRepository interface {
	Create(ctx context.Context, event *models.AnalyticsEvent) error
	Summary(ctx context.Context, since time.Time, topProductsLimit int) (*models.AnalyticsSummary, error)
	Count(ctx context.Context) (int, error)
}

// ContactRepository defines the interface for contact submission operations
type ContactRepository interface {
	Create(ctx context.Context, sub *models.ContactSubmission) error
	GetAll(ctx context.Context) ([]*models.ContactSubmission, error)
	Count(ctx context.Context) (int, error)
}

// DocumentationRepository defines the interface for documentation page operations
type DocumentationRepository interface {
	Create(ctx context.Context, doc *models.Documentation) error
	GetByProduct(ctx context.Context, productID int64) ([]*models.Documentation, error)
	Count(ctx context.Context) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	User          UserRepository
	Product       ProductRepository
	BlogPost      BlogPostRepository
	CaseStudy     CaseStudyRepository
	Testimonial   TestimonialRepository
	Analytics     AnalyticsRepository
	Contact       ContactRepository
	Documentation DocumentationRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		User:          NewUserRepo(db),
		Product:       NewProductRepo(db),
		BlogPost:      NewBlogPostRepo(db),
		CaseStudy:     NewCaseStudyRepo(db),
		Testimonial:   NewTestimonialRepo(db),
		Analytics:     NewAnalyticsRepo(db),
		Contact:       NewContactRepo(db),
		Documentation: NewDocumentationRepo(db),
	}
}
