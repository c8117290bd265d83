package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/marketing-site-api/internal/database"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*database.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &database.DB{DB: db}, mock
}

func TestUserRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUserRepo(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("ada@example.com", sqlmock.AnyArg(), "Ada", "Lovelace", "client", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "created_at", "updated_at"}).
			AddRow(int64(7), true, now, now))

	user := &models.User{
		Email:        "ada@example.com",
		PasswordHash: "hash",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Role:         "client",
	}
	err := repo.Create(context.Background(), user)
	require.NoError(t, err)

	assert.Equal(t, int64(7), user.ID)
	assert.True(t, user.IsActive)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewUserRepo(db)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	err := repo.Create(context.Background(), &models.User{Email: "dup@example.com"})
	assert.True(t, errors.Is(err, repository.ErrUniqueViolation))
}

func TestProductRepo_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)

	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(int64(999)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	product, err := repo.GetByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, product)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func productRow(id int64, name string, now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "description", "short_description", "price", "features",
		"benefits", "hero_image_url", "gallery_images", "category", "tags",
		"is_active", "created_at", "updated_at",
	}).AddRow(
		id, name, "desc", "short", 19.99, []byte(`["fast"]`),
		[]byte(`[]`), nil, []byte(`[]`), "tools", []byte(`["new"]`),
		true, now, now,
	)
}

func TestProductRepo_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)

	mock.ExpectQuery("FROM products WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(productRow(3, "Widget", time.Now()))

	product, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	require.NotNil(t, product)

	assert.Equal(t, int64(3), product.ID)
	assert.Equal(t, "Widget", product.Name)
	assert.Equal(t, models.StringList{"fast"}, product.Features)
	assert.Equal(t, models.StringList{}, product.Benefits)
	assert.Nil(t, product.HeroImageURL)
}

func TestProductRepo_GetAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewProductRepo(db)

	now := time.Now()
	rows := productRow(1, "Widget", now).AddRow(
		int64(2), "Gadget", "desc", "short", 5.0, []byte(`[]`),
		[]byte(`[]`), nil, []byte(`[]`), "tools", []byte(`[]`),
		true, now, now,
	)
	mock.ExpectQuery("FROM products ORDER BY created_at").WillReturnRows(rows)

	products, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Gadget", products[1].Name)
}

func TestBlogPostRepo_Create_StampsPublishedAt(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBlogPostRepo(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO blog_posts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(1), now, now))

	post := &models.BlogPost{
		Title: "Hello", Slug: "hello", Content: "c", Excerpt: "e",
		AuthorID: 1, Categories: models.StringList{}, Tags: models.StringList{},
		IsPublished: true,
	}
	require.NoError(t, repo.Create(context.Background(), post))
	require.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now().UTC(), *post.PublishedAt, time.Minute)
}

func TestBlogPostRepo_Create_DanglingAuthor(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewBlogPostRepo(db)

	mock.ExpectQuery("INSERT INTO blog_posts").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "blog_posts_author_id_fkey"})

	post := &models.BlogPost{Title: "Hello", Slug: "hello", AuthorID: 42}
	err := repo.Create(context.Background(), post)
	assert.True(t, errors.Is(err, repository.ErrForeignKeyViolation))
}

func TestAnalyticsRepo_Summary(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewAnalyticsRepo(db)

	since := time.Now().AddDate(0, 0, -7)

	mock.ExpectQuery("SELECT event_type, COUNT").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"event_type", "count"}).
			AddRow("page_view", int64(10)).
			AddRow("product_view", int64(4)).
			AddRow("signup", int64(1)))

	mock.ExpectQuery("SELECT p.id, p.name, COUNT").
		WithArgs(since, 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "views"}).
			AddRow(int64(2), "Beta", int64(3)).
			AddRow(int64(1), "Alpha", int64(1)))

	mock.ExpectQuery("TO_CHAR").
		WithArgs(since).
		WillReturnRows(sqlmock.NewRows([]string{"event_type", "count", "day"}).
			AddRow("page_view", int64(6), "2026-08-27").
			AddRow("page_view", int64(4), "2026-08-28"))

	summary, err := repo.Summary(context.Background(), since, 5)
	require.NoError(t, err)

	assert.Equal(t, int64(10), summary.TotalPageViews)
	assert.Equal(t, int64(4), summary.TotalProductViews)
	assert.Equal(t, int64(1), summary.TotalSignups)
	assert.Equal(t, int64(0), summary.TotalDownloads)

	require.Len(t, summary.TopProducts, 2)
	assert.Equal(t, "Beta", summary.TopProducts[0].ProductName)
	assert.Equal(t, int64(3), summary.TopProducts[0].Views)

	require.Len(t, summary.RecentEvents, 2)
	assert.Equal(t, "2026-08-27", summary.RecentEvents[0].Date)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTestimonialRepo_GetByProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewTestimonialRepo(db)

	now := time.Now()
	mock.ExpectQuery("FROM testimonials").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "content", "author_name", "author_title", "author_company",
			"author_avatar_url", "rating", "product_id", "is_featured", "created_at",
		}).AddRow(int64(1), "quote", "Jane", "CTO", "Acme", nil, 5, int64(1), true, now))

	testimonials, err := repo.GetByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, 5, testimonials[0].Rating)
	assert.True(t, testimonials[0].IsFeatured)
}

func TestContactRepo_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewContactRepo(db)

	now := time.Now()
	mock.ExpectQuery("INSERT INTO contact_submissions").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "created_at"}).
			AddRow(int64(1), "new", now))

	sub := &models.ContactSubmission{Name: "Sam", Email: "sam@example.com", Message: "hi"}
	require.NoError(t, repo.Create(context.Background(), sub))
	assert.Equal(t, models.ContactStatusNew, sub.Status)
}

func TestDocumentationRepo_GetByProduct_Order(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repository.NewDocumentationRepo(db)

	now := time.Now()
	mock.ExpectQuery("FROM documentation").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "slug", "content", "category", "product_id",
			"order_index", "is_published", "created_at", "updated_at",
		}).
			AddRow(int64(1), "Intro", "intro", "...", "guides", int64(1), 0, true, now, now).
			AddRow(int64(2), "Setup", "setup", "...", "guides", int64(1), 1, false, now, now))

	docs, err := repo.GetByProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "intro", docs[0].Slug)
	assert.Equal(t, 1, docs[1].OrderIndex)
}
