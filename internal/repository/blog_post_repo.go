package repository

import (
	"context"
	"time"

	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
)

// blogPostRepo is the concrete implementation of BlogPostRepository
type blogPostRepo struct {
	db *database.DB
}

// NewBlogPostRepo creates a new blog post repository
func NewBlogPostRepo(db *database.DB) BlogPostRepository {
	return &blogPostRepo{db: db}
}

// Create inserts a new blog post and fills in the server-assigned columns.
// published_at is stamped when the post is created already published.
func (r *blogPostRepo) Create(ctx context.Context, post *models.BlogPost) error {
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	query := `
		INSERT INTO blog_posts (title, slug, content, excerpt, featured_image_url,
		                        author_id, categories, tags, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRowContext(ctx, query,
		post.Title, post.Slug, post.Content, post.Excerpt, post.FeaturedImageURL,
		post.AuthorID, post.Categories, post.Tags, post.IsPublished, post.PublishedAt,
	).Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	return classifyError(err)
}

const blogPostColumns = `id, title, slug, content, excerpt, featured_image_url,
	author_id, categories, tags, is_published, published_at, created_at, updated_at`

func (r *blogPostRepo) queryPosts(ctx context.Context, query string, args ...interface{}) ([]*models.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	posts := []*models.BlogPost{}
	for rows.Next() {
		var post models.BlogPost
		err := rows.Scan(
			&post.ID, &post.Title, &post.Slug, &post.Content, &post.Excerpt,
			&post.FeaturedImageURL, &post.AuthorID, &post.Categories, &post.Tags,
			&post.IsPublished, &post.PublishedAt, &post.CreatedAt, &post.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}
	return posts, rows.Err()
}

// GetAll retrieves all blog posts, drafts included, newest first
func (r *blogPostRepo) GetAll(ctx context.Context) ([]*models.BlogPost, error) {
	return r.queryPosts(ctx, `SELECT `+blogPostColumns+` FROM blog_posts ORDER BY created_at DESC`)
}

// GetPublished retrieves published posts only, newest publication first
func (r *blogPostRepo) GetPublished(ctx context.Context) ([]*models.BlogPost, error) {
	return r.queryPosts(ctx, `
		SELECT `+blogPostColumns+` FROM blog_posts
		WHERE is_published
		ORDER BY published_at DESC`)
}

// Count returns the total number of blog posts
func (r *blogPostRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM blog_posts").Scan(&count)
	return count, err
}
