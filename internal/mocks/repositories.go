package mocks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
)

// MockRepositories bundles in-memory fakes for all repositories. The fakes
// emulate the store's unique and foreign-key constraints so handler tests
// observe the same error classes the real store produces.
type MockRepositories struct {
	User          *MockUserRepository
	Product       *MockProductRepository
	BlogPost      *MockBlogPostRepository
	CaseStudy     *MockCaseStudyRepository
	Testimonial   *MockTestimonialRepository
	Analytics     *MockAnalyticsRepository
	Contact       *MockContactRepository
	Documentation *MockDocumentationRepository
}

// NewMockRepositories creates wired mock repositories
func NewMockRepositories() *MockRepositories {
	users := &MockUserRepository{}
	products := &MockProductRepository{}
	return &MockRepositories{
		User:          users,
		Product:       products,
		BlogPost:      &MockBlogPostRepository{users: users},
		CaseStudy:     &MockCaseStudyRepository{products: products},
		Testimonial:   &MockTestimonialRepository{products: products},
		Analytics:     &MockAnalyticsRepository{products: products},
		Contact:       &MockContactRepository{products: products},
		Documentation: &MockDocumentationRepository{products: products},
	}
}

// Repos exposes the mocks through the production interface set
func (m *MockRepositories) Repos() *repository.Repositories {
	return &repository.Repositories{
		User:          m.User,
		Product:       m.Product,
		BlogPost:      m.BlogPost,
		CaseStudy:     m.CaseStudy,
		Testimonial:   m.Testimonial,
		Analytics:     m.Analytics,
		Contact:       m.Contact,
		Documentation: m.Documentation,
	}
}

func uniqueViolation(constraint string) error {
	return fmt.Errorf("%w: %s", repository.ErrUniqueViolation, constraint)
}

func fkViolation(constraint string) error {
	return fmt.Errorf("%w: %s", repository.ErrForeignKeyViolation, constraint)
}

// MockUserRepository is an in-memory UserRepository
type MockUserRepository struct {
	Users  []*models.User
	Err    error
	nextID int64
}

func (m *MockUserRepository) Create(_ context.Context, user *models.User) error {
	if m.Err != nil {
		return m.Err
	}
	for _, u := range m.Users {
		if u.Email == user.Email {
			return uniqueViolation("users_email_key")
		}
	}
	m.nextID++
	user.ID = m.nextID
	user.IsActive = true
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	m.Users = append(m.Users, user)
	return nil
}

func (m *MockUserRepository) GetAll(_ context.Context) ([]*models.User, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*models.User{}, m.Users...), nil
}

func (m *MockUserRepository) Count(_ context.Context) (int, error) {
	return len(m.Users), m.Err
}

func (m *MockUserRepository) exists(id int64) bool {
	for _, u := range m.Users {
		if u.ID == id {
			return true
		}
	}
	return false
}

// MockProductRepository is an in-memory ProductRepository
type MockProductRepository struct {
	Products []*models.Product
	Err      error
	nextID   int64
}

func (m *MockProductRepository) Create(_ context.Context, product *models.Product) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	product.ID = m.nextID
	product.IsActive = true
	product.CreatedAt = time.Now().UTC()
	product.UpdatedAt = product.CreatedAt
	m.Products = append(m.Products, product)
	return nil
}

func (m *MockProductRepository) GetAll(_ context.Context) ([]*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*models.Product{}, m.Products...), nil
}

func (m *MockProductRepository) GetByID(_ context.Context, id int64) (*models.Product, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	for _, p := range m.Products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *MockProductRepository) Count(_ context.Context) (int, error) {
	return len(m.Products), m.Err
}

func (m *MockProductRepository) exists(id int64) bool {
	for _, p := range m.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (m *MockProductRepository) name(id int64) string {
	for _, p := range m.Products {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// MockBlogPostRepository is an in-memory BlogPostRepository
type MockBlogPostRepository struct {
	Posts  []*models.BlogPost
	Err    error
	users  *MockUserRepository
	nextID int64
}

func (m *MockBlogPostRepository) Create(_ context.Context, post *models.BlogPost) error {
	if m.Err != nil {
		return m.Err
	}
	for _, p := range m.Posts {
		if p.Slug == post.Slug {
			return uniqueViolation("blog_posts_slug_key")
		}
	}
	if m.users != nil && !m.users.exists(post.AuthorID) {
		return fkViolation("blog_posts_author_id_fkey")
	}
	m.nextID++
	post.ID = m.nextID
	post.CreatedAt = time.Now().UTC()
	post.UpdatedAt = post.CreatedAt
	if post.IsPublished && post.PublishedAt == nil {
		now := post.CreatedAt
		post.PublishedAt = &now
	}
	m.Posts = append(m.Posts, post)
	return nil
}

func (m *MockBlogPostRepository) GetAll(_ context.Context) ([]*models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*models.BlogPost{}, m.Posts...), nil
}

func (m *MockBlogPostRepository) GetPublished(_ context.Context) ([]*models.BlogPost, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	published := []*models.BlogPost{}
	for _, p := range m.Posts {
		if p.IsPublished {
			published = append(published, p)
		}
	}
	return published, nil
}

func (m *MockBlogPostRepository) Count(_ context.Context) (int, error) {
	return len(m.Posts), m.Err
}

// MockCaseStudyRepository is an in-memory CaseStudyRepository
type MockCaseStudyRepository struct {
	Studies  []*models.CaseStudy
	Err      error
	products *MockProductRepository
	nextID   int64
}

func (m *MockCaseStudyRepository) Create(_ context.Context, cs *models.CaseStudy) error {
	if m.Err != nil {
		return m.Err
	}
	for _, s := range m.Studies {
		if s.Slug == cs.Slug {
			return uniqueViolation("case_studies_slug_key")
		}
	}
	if m.products != nil && !m.products.exists(cs.ProductID) {
		return fkViolation("case_studies_product_id_fkey")
	}
	m.nextID++
	cs.ID = m.nextID
	cs.CreatedAt = time.Now().UTC()
	cs.UpdatedAt = cs.CreatedAt
	m.Studies = append(m.Studies, cs)
	return nil
}

func (m *MockCaseStudyRepository) GetAll(_ context.Context) ([]*models.CaseStudy, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*models.CaseStudy{}, m.Studies...), nil
}

func (m *MockCaseStudyRepository) GetByProduct(_ context.Context, productID int64) ([]*models.CaseStudy, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	studies := []*models.CaseStudy{}
	for _, s := range m.Studies {
		if s.ProductID == productID {
			studies = append(studies, s)
		}
	}
	return studies, nil
}

func (m *MockCaseStudyRepository) Count(_ context.Context) (int, error) {
	return len(m.Studies), m.Err
}

// MockTestimonialRepository is an in-memory TestimonialRepository
type MockTestimonialRepository struct {
	Testimonials []*models.Testimonial
	Err          error
	products     *MockProductRepository
	nextID       int64
}

func (m *MockTestimonialRepository) Create(_ context.Context, t *models.Testimonial) error {
	if m.Err != nil {
		return m.Err
	}
	if m.products != nil && !m.products.exists(t.ProductID) {
		return fkViolation("testimonials_product_id_fkey")
	}
	m.nextID++
	t.ID = m.nextID
	t.CreatedAt = time.Now().UTC()
	m.Testimonials = append(m.Testimonials, t)
	return nil
}

func (m *MockTestimonialRepository) GetByProduct(_ context.Context, productID int64) ([]*models.Testimonial, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	testimonials := []*models.Testimonial{}
	for _, t := range m.Testimonials {
		if t.ProductID == productID {
			testimonials = append(testimonials, t)
		}
	}
	return testimonials, nil
}

func (m *MockTestimonialRepository) GetFeatured(_ context.Context) ([]*models.Testimonial, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	featured := []*models.Testimonial{}
	for _, t := range m.Testimonials {
		if t.IsFeatured {
			featured = append(featured, t)
		}
	}
	return featured, nil
}

func (m *MockTestimonialRepository) Count(_ context.Context) (int, error) {
	return len(m.Testimonials), m.Err
}

// MockAnalyticsRepository is an in-memory AnalyticsRepository. Tests may
// append to Events directly to control timestamps.
type MockAnalyticsRepository struct {
	Events   []*models.AnalyticsEvent
	Err      error
	products *MockProductRepository
	nextID   int64
}

func (m *MockAnalyticsRepository) Create(_ context.Context, event *models.AnalyticsEvent) error {
	if m.Err != nil {
		return m.Err
	}
	m.nextID++
	event.ID = m.nextID
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}
	m.Events = append(m.Events, event)
	return nil
}

func (m *MockAnalyticsRepository) Summary(_ context.Context, since time.Time, topProductsLimit int) (*models.AnalyticsSummary, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	summary := &models.AnalyticsSummary{
		TopProducts:  []models.ProductViews{},
		RecentEvents: []models.DailyEventCount{},
	}
	productViews := map[int64]int64{}
	daily := map[string]map[models.EventType]int64{}

	for _, e := range m.Events {
		if e.CreatedAt.Before(since) {
			continue
		}
		switch e.EventType {
		case models.EventPageView:
			summary.TotalPageViews++
		case models.EventProductView:
			summary.TotalProductViews++
		case models.EventContactForm:
			summary.TotalContactForms++
		case models.EventDownload:
			summary.TotalDownloads++
		case models.EventSignup:
			summary.TotalSignups++
		}

		if e.EventType == models.EventProductView &&
			e.EntityType != nil && *e.EntityType == models.EntityProduct &&
			e.EntityID != nil && m.products != nil && m.products.exists(*e.EntityID) {
			productViews[*e.EntityID]++
		}

		day := e.CreatedAt.UTC().Format("2006-01-02")
		if daily[day] == nil {
			daily[day] = map[models.EventType]int64{}
		}
		daily[day][e.EventType]++
	}

	for id, views := range productViews {
		summary.TopProducts = append(summary.TopProducts, models.ProductViews{
			ProductID:   id,
			ProductName: m.products.name(id),
			Views:       views,
		})
	}
	sort.Slice(summary.TopProducts, func(i, j int) bool {
		a, b := summary.TopProducts[i], summary.TopProducts[j]
		if a.Views != b.Views {
			return a.Views > b.Views
		}
		return a.ProductID < b.ProductID
	})
	if len(summary.TopProducts) > topProductsLimit {
		summary.TopProducts = summary.TopProducts[:topProductsLimit]
	}

	days := make([]string, 0, len(daily))
	for day := range daily {
		days = append(days, day)
	}
	sort.Strings(days)
	for _, day := range days {
		types := make([]string, 0, len(daily[day]))
		for et := range daily[day] {
			types = append(types, string(et))
		}
		sort.Strings(types)
		for _, et := range types {
			summary.RecentEvents = append(summary.RecentEvents, models.DailyEventCount{
				EventType: models.EventType(et),
				Count:     daily[day][models.EventType(et)],
				Date:      day,
			})
		}
	}

	return summary, nil
}

func (m *MockAnalyticsRepository) Count(_ context.Context) (int, error) {
	return len(m.Events), m.Err
}

// MockContactRepository is an in-memory ContactRepository
type MockContactRepository struct {
	Submissions []*models.ContactSubmission
	Err         error
	products    *MockProductRepository
	nextID      int64
}

func (m *MockContactRepository) Create(_ context.Context, sub *models.ContactSubmission) error {
	if m.Err != nil {
		return m.Err
	}
	if m.products != nil && sub.ProductID != nil && !m.products.exists(*sub.ProductID) {
		return fkViolation("contact_submissions_product_id_fkey")
	}
	m.nextID++
	sub.ID = m.nextID
	sub.Status = models.ContactStatusNew
	sub.CreatedAt = time.Now().UTC()
	m.Submissions = append(m.Submissions, sub)
	return nil
}

func (m *MockContactRepository) GetAll(_ context.Context) ([]*models.ContactSubmission, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return append([]*models.ContactSubmission{}, m.Submissions...), nil
}

func (m *MockContactRepository) Count(_ context.Context) (int, error) {
	return len(m.Submissions), m.Err
}

// MockDocumentationRepository is an in-memory DocumentationRepository
type MockDocumentationRepository struct {
	Docs     []*models.Documentation
	Err      error
	products *MockProductRepository
	nextID   int64
}

func (m *MockDocumentationRepository) Create(_ context.Context, doc *models.Documentation) error {
	if m.Err != nil {
		return m.Err
	}
	for _, d := range m.Docs {
		if d.ProductID == doc.ProductID && d.Slug == doc.Slug {
			return uniqueViolation("documentation_product_id_slug_key")
		}
	}
	if m.products != nil && !m.products.exists(doc.ProductID) {
		return fkViolation("documentation_product_id_fkey")
	}
	m.nextID++
	doc.ID = m.nextID
	doc.CreatedAt = time.Now().UTC()
	doc.UpdatedAt = doc.CreatedAt
	m.Docs = append(m.Docs, doc)
	return nil
}

func (m *MockDocumentationRepository) GetByProduct(_ context.Context, productID int64) ([]*models.Documentation, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	docs := []*models.Documentation{}
	for _, d := range m.Docs {
		if d.ProductID == productID {
			docs = append(docs, d)
		}
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if docs[i].OrderIndex != docs[j].OrderIndex {
			return docs[i].OrderIndex < docs[j].OrderIndex
		}
		return docs[i].ID < docs[j].ID
	})
	return docs, nil
}

func (m *MockDocumentationRepository) Count(_ context.Context) (int, error) {
	return len(m.Docs), m.Err
}
