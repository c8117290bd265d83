package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/api"
	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/mocks"
	"github.com/marketing-site-api/internal/models"
	"github.com/rs/zerolog"
)

func setupTestRouter() (*gin.Engine, *mocks.MockRepositories) {
	gin.SetMode(gin.TestMode)

	repos := mocks.NewMockRepositories()

	cfg := &config.Config{
		Server: config.ServerConfig{Port: "2022"},
		Analytics: config.AnalyticsConfig{
			DefaultWindowDays: 30,
			TopProductsLimit:  5,
		},
	}

	log := zerolog.Nop()
	router := api.NewRouter(repos.Repos(), cfg, log)

	return router, repos
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "GET", "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "ok" {
		t.Errorf("Expected status 'ok', got %v", response["status"])
	}
	if response["timestamp"] == nil {
		t.Error("Expected timestamp in response")
	}
}

func TestCreateUser(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "POST", "/rpc/createUser", map[string]interface{}{
		"email":      "ada@example.com",
		"password":   "supersecret",
		"first_name": "Ada",
		"last_name":  "Lovelace",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var user map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &user)

	if user["id"].(float64) != 1 {
		t.Errorf("Expected server-assigned id 1, got %v", user["id"])
	}
	if user["role"] != "client" {
		t.Errorf("Expected default role 'client', got %v", user["role"])
	}
	if user["is_active"] != true {
		t.Errorf("Expected is_active true, got %v", user["is_active"])
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password_hash must not appear in responses")
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	router, repos := setupTestRouter()

	payload := map[string]interface{}{
		"email":      "dup@example.com",
		"password":   "supersecret",
		"first_name": "First",
		"last_name":  "User",
	}
	if w := doJSON(router, "POST", "/rpc/createUser", payload); w.Code != http.StatusCreated {
		t.Fatalf("First create failed: %d", w.Code)
	}

	w := doJSON(router, "POST", "/rpc/createUser", payload)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate email, got %d", w.Code)
	}
	if len(repos.User.Users) != 1 {
		t.Errorf("Expected first user to remain the only row, got %d", len(repos.User.Users))
	}
}

func TestCreateUser_ValidationErrors(t *testing.T) {
	router, repos := setupTestRouter()

	w := doJSON(router, "POST", "/rpc/createUser", map[string]interface{}{
		"email":    "bad",
		"password": "short",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", w.Code)
	}
	if len(repos.User.Users) != 0 {
		t.Error("Validation failure must not reach the store")
	}

	var response struct {
		Fields []struct {
			Field string `json:"field"`
		} `json:"fields"`
	}
	json.Unmarshal(w.Body.Bytes(), &response)
	found := map[string]bool{}
	for _, f := range response.Fields {
		found[f.Field] = true
	}
	for _, want := range []string{"email", "password", "first_name", "last_name"} {
		if !found[want] {
			t.Errorf("Expected field error for %s, got %v", want, response.Fields)
		}
	}
}

func TestCreateProduct_Defaults(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "POST", "/rpc/createProduct", map[string]interface{}{
		"name":              "Widget Pro",
		"description":       "A professional widget",
		"short_description": "Pro widget",
		"price":             49.99,
		"category":          "tools",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var product map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &product)

	for _, field := range []string{"features", "benefits", "gallery_images", "tags"} {
		list, ok := product[field].([]interface{})
		if !ok {
			t.Errorf("Expected %s to be an empty list, got %v", field, product[field])
			continue
		}
		if len(list) != 0 {
			t.Errorf("Expected %s to default empty, got %v", field, list)
		}
	}
}

func TestCreateProduct_RejectsNonPositivePrice(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "POST", "/rpc/createProduct", map[string]interface{}{
		"name":              "Free Widget",
		"description":       "d",
		"short_description": "s",
		"price":             0,
		"category":          "tools",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for price 0, got %d", w.Code)
	}
}

func TestGetProductByID_NotFound(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "GET", "/rpc/getProductById?id=999", nil)
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for missing product, got %d", w.Code)
	}
	if body := bytes.TrimSpace(w.Body.Bytes()); string(body) != "null" {
		t.Errorf("Expected null body for missing product, got %s", body)
	}
}

func TestGetProductByID_MissingParam(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "GET", "/rpc/getProductById", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 without id, got %d", w.Code)
	}
}

func seedUser(t *testing.T, repos *mocks.MockRepositories) *models.User {
	t.Helper()
	user := &models.User{Email: "author@example.com", FirstName: "A", LastName: "B", Role: "admin"}
	if err := repos.User.Create(context.Background(), user); err != nil {
		t.Fatalf("Seeding user failed: %v", err)
	}
	return user
}

func seedProduct(t *testing.T, repos *mocks.MockRepositories, name string) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Category: "tools", Price: 10}
	if err := repos.Product.Create(context.Background(), product); err != nil {
		t.Fatalf("Seeding product failed: %v", err)
	}
	return product
}

func TestCreateBlogPost_DuplicateSlug(t *testing.T) {
	router, repos := setupTestRouter()
	author := seedUser(t, repos)

	payload := map[string]interface{}{
		"title":     "Post",
		"slug":      "my-post",
		"content":   "body",
		"excerpt":   "intro",
		"author_id": author.ID,
	}
	if w := doJSON(router, "POST", "/rpc/createBlogPost", payload); w.Code != http.StatusCreated {
		t.Fatalf("First create failed: %d: %s", w.Code, w.Body.String())
	}

	w := doJSON(router, "POST", "/rpc/createBlogPost", payload)
	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate slug, got %d", w.Code)
	}
}

func TestCreateBlogPost_UnknownAuthor(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "POST", "/rpc/createBlogPost", map[string]interface{}{
		"title":     "Post",
		"slug":      "orphan-post",
		"content":   "body",
		"excerpt":   "intro",
		"author_id": 42,
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422 for unknown author, got %d", w.Code)
	}
}

func TestGetPublishedBlogPosts_ExcludesDrafts(t *testing.T) {
	router, repos := setupTestRouter()
	author := seedUser(t, repos)

	for _, post := range []map[string]interface{}{
		{"title": "Draft", "slug": "draft-post", "content": "c", "excerpt": "e", "author_id": author.ID},
		{"title": "Live", "slug": "live-post", "content": "c", "excerpt": "e", "author_id": author.ID, "is_published": true},
	} {
		if w := doJSON(router, "POST", "/rpc/createBlogPost", post); w.Code != http.StatusCreated {
			t.Fatalf("Create failed: %d", w.Code)
		}
	}

	var all []map[string]interface{}
	w := doJSON(router, "GET", "/rpc/getBlogPosts", nil)
	json.Unmarshal(w.Body.Bytes(), &all)
	if len(all) != 2 {
		t.Fatalf("Expected 2 posts in full listing, got %d", len(all))
	}

	var published []map[string]interface{}
	w = doJSON(router, "GET", "/rpc/getPublishedBlogPosts", nil)
	json.Unmarshal(w.Body.Bytes(), &published)
	if len(published) != 1 {
		t.Fatalf("Expected 1 published post, got %d", len(published))
	}
	if published[0]["slug"] != "live-post" {
		t.Errorf("Expected live-post, got %v", published[0]["slug"])
	}
	if published[0]["published_at"] == nil {
		t.Error("Expected published_at to be stamped on publish")
	}
}

func TestCreateTestimonial_RatingBounds(t *testing.T) {
	router, repos := setupTestRouter()
	product := seedProduct(t, repos, "Widget")

	base := map[string]interface{}{
		"content":        "Great",
		"author_name":    "Jane",
		"author_title":   "CTO",
		"author_company": "Acme",
		"product_id":     product.ID,
	}

	for _, rating := range []int{0, 6} {
		base["rating"] = rating
		if w := doJSON(router, "POST", "/rpc/createTestimonial", base); w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for rating=%d, got %d", rating, w.Code)
		}
	}
	for _, rating := range []int{1, 5} {
		base["rating"] = rating
		if w := doJSON(router, "POST", "/rpc/createTestimonial", base); w.Code != http.StatusCreated {
			t.Errorf("Expected status 201 for rating=%d, got %d", rating, w.Code)
		}
	}
}

func TestGetFeaturedTestimonials(t *testing.T) {
	router, repos := setupTestRouter()
	product := seedProduct(t, repos, "Widget")

	for i, featured := range []bool{true, false, true} {
		testimonial := &models.Testimonial{
			Content: "quote", AuthorName: "A", AuthorTitle: "T", AuthorCompany: "C",
			Rating: 4, ProductID: product.ID, IsFeatured: featured,
		}
		if err := repos.Testimonial.Create(context.Background(), testimonial); err != nil {
			t.Fatalf("Seeding testimonial %d failed: %v", i, err)
		}
	}

	var featured []map[string]interface{}
	w := doJSON(router, "GET", "/rpc/getFeaturedTestimonials", nil)
	json.Unmarshal(w.Body.Bytes(), &featured)
	if len(featured) != 2 {
		t.Errorf("Expected 2 featured testimonials, got %d", len(featured))
	}
}

func TestCreateContactSubmission_DefaultsToNew(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "POST", "/rpc/createContactSubmission", map[string]interface{}{
		"name":    "Sam",
		"email":   "sam@example.com",
		"message": "I want a demo",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var sub map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &sub)
	if sub["status"] != "new" {
		t.Errorf("Expected status 'new', got %v", sub["status"])
	}
}

func TestCreateDocumentation_SlugUniquePerProduct(t *testing.T) {
	router, repos := setupTestRouter()
	first := seedProduct(t, repos, "Widget")
	second := seedProduct(t, repos, "Gadget")

	payload := map[string]interface{}{
		"title":      "Setup",
		"slug":       "setup",
		"content":    "...",
		"category":   "guides",
		"product_id": first.ID,
	}
	if w := doJSON(router, "POST", "/rpc/createDocumentation", payload); w.Code != http.StatusCreated {
		t.Fatalf("First create failed: %d", w.Code)
	}

	// Same slug under a different product is allowed
	payload["product_id"] = second.ID
	if w := doJSON(router, "POST", "/rpc/createDocumentation", payload); w.Code != http.StatusCreated {
		t.Errorf("Expected same slug under another product to succeed, got %d", w.Code)
	}

	// Same slug under the same product collides
	if w := doJSON(router, "POST", "/rpc/createDocumentation", payload); w.Code != http.StatusConflict {
		t.Errorf("Expected status 409 for duplicate slug within product, got %d", w.Code)
	}
}

func TestGetAnalyticsSummary_WindowAndRanking(t *testing.T) {
	router, repos := setupTestRouter()
	alpha := seedProduct(t, repos, "Alpha")
	beta := seedProduct(t, repos, "Beta")

	now := time.Now().UTC()
	productType := models.EntityProduct
	addView := func(productID int64, at time.Time) {
		id := productID
		repos.Analytics.Events = append(repos.Analytics.Events, &models.AnalyticsEvent{
			EventType:  models.EventProductView,
			EntityType: &productType,
			EntityID:   &id,
			SessionID:  "s",
			IPAddress:  "203.0.113.9",
			UserAgent:  "ua",
			CreatedAt:  at,
		})
	}

	// Inside the 7-day window: beta viewed 3 times, alpha once
	addView(beta.ID, now.Add(-24*time.Hour))
	addView(beta.ID, now.Add(-48*time.Hour))
	addView(beta.ID, now.Add(-72*time.Hour))
	addView(alpha.ID, now.Add(-24*time.Hour))
	// Outside the window, must not count
	addView(alpha.ID, now.Add(-8*24*time.Hour))

	repos.Analytics.Events = append(repos.Analytics.Events, &models.AnalyticsEvent{
		EventType: models.EventSignup,
		SessionID: "s", IPAddress: "203.0.113.9", UserAgent: "ua",
		CreatedAt: now.Add(-24 * time.Hour),
	})

	w := doJSON(router, "GET", "/rpc/getAnalyticsSummary?days=7", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var summary models.AnalyticsSummary
	json.Unmarshal(w.Body.Bytes(), &summary)

	if summary.TotalProductViews != 4 {
		t.Errorf("Expected 4 product views in window, got %d", summary.TotalProductViews)
	}
	if summary.TotalSignups != 1 {
		t.Errorf("Expected 1 signup, got %d", summary.TotalSignups)
	}
	if len(summary.TopProducts) != 2 {
		t.Fatalf("Expected 2 ranked products, got %d", len(summary.TopProducts))
	}
	if summary.TopProducts[0].ProductID != beta.ID || summary.TopProducts[0].Views != 3 {
		t.Errorf("Expected Beta ranked first with 3 views, got %+v", summary.TopProducts[0])
	}
	if summary.TopProducts[0].ProductName != "Beta" {
		t.Errorf("Expected product name Beta, got %s", summary.TopProducts[0].ProductName)
	}
	if summary.TopProducts[1].ProductID != alpha.ID || summary.TopProducts[1].Views != 1 {
		t.Errorf("Expected Alpha ranked second with 1 view, got %+v", summary.TopProducts[1])
	}
	if len(summary.RecentEvents) == 0 {
		t.Error("Expected day-bucketed event counts")
	}
}

func TestGetAnalyticsSummary_TieBreakByProductID(t *testing.T) {
	router, repos := setupTestRouter()
	alpha := seedProduct(t, repos, "Alpha")
	beta := seedProduct(t, repos, "Beta")

	now := time.Now().UTC()
	productType := models.EntityProduct
	for _, id := range []int64{beta.ID, alpha.ID} {
		pid := id
		repos.Analytics.Events = append(repos.Analytics.Events, &models.AnalyticsEvent{
			EventType:  models.EventProductView,
			EntityType: &productType,
			EntityID:   &pid,
			SessionID:  "s", IPAddress: "203.0.113.9", UserAgent: "ua",
			CreatedAt: now.Add(-time.Hour),
		})
	}

	w := doJSON(router, "GET", "/rpc/getAnalyticsSummary?days=7", nil)
	var summary models.AnalyticsSummary
	json.Unmarshal(w.Body.Bytes(), &summary)

	if len(summary.TopProducts) != 2 {
		t.Fatalf("Expected 2 ranked products, got %d", len(summary.TopProducts))
	}
	if summary.TopProducts[0].ProductID != alpha.ID {
		t.Errorf("Expected tie broken by ascending product id, got %+v", summary.TopProducts)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router, repos := setupTestRouter()
	seedProduct(t, repos, "Widget")
	seedUser(t, repos)

	w := doJSON(router, "GET", "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	db := response["database"].(map[string]interface{})
	if db["products"].(float64) != 1 {
		t.Errorf("Expected 1 product, got %v", db["products"])
	}
	if db["users"].(float64) != 1 {
		t.Errorf("Expected 1 user, got %v", db["users"])
	}
}

func TestCreateAnalyticsEvent_DefaultsMetadata(t *testing.T) {
	router, _ := setupTestRouter()

	w := doJSON(router, "POST", "/rpc/createAnalyticsEvent", map[string]interface{}{
		"event_type": "page_view",
		"session_id": "sess-1",
		"ip_address": "203.0.113.9",
		"user_agent": "Mozilla/5.0",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
	}

	var event map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &event)
	metadata, ok := event["metadata"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected metadata to be an object, got %v", event["metadata"])
	}
	if len(metadata) != 0 {
		t.Errorf("Expected empty metadata by default, got %v", metadata)
	}
}
