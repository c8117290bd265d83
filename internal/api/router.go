package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/marketing-site-api/internal/config"
	"github.com/marketing-site-api/internal/repository"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router. Each named remote
// procedure maps to one route under /rpc: GET for queries, POST for mutations.
func NewRouter(repos *repository.Repositories, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware())

	// Handlers
	userHandler := NewUserHandler(repos, log)
	productHandler := NewProductHandler(repos, log)
	blogHandler := NewBlogHandler(repos, log)
	caseStudyHandler := NewCaseStudyHandler(repos, log)
	testimonialHandler := NewTestimonialHandler(repos, log)
	analyticsHandler := NewAnalyticsHandler(repos, cfg, log)
	contactHandler := NewContactHandler(repos, log)
	docsHandler := NewDocumentationHandler(repos, log)

	// Health check
	router.GET("/health", healthCheck)
	router.GET("/metrics", metricsHandler(repos))

	rpc := router.Group("/rpc")
	{
		// User management
		rpc.POST("/createUser", userHandler.CreateUser)
		rpc.GET("/getUsers", userHandler.GetUsers)

		// Product management
		rpc.POST("/createProduct", productHandler.CreateProduct)
		rpc.GET("/getProducts", productHandler.GetProducts)
		rpc.GET("/getProductById", productHandler.GetProductByID)

		// Blog management
		rpc.POST("/createBlogPost", blogHandler.CreateBlogPost)
		rpc.GET("/getBlogPosts", blogHandler.GetBlogPosts)
		rpc.GET("/getPublishedBlogPosts", blogHandler.GetPublishedBlogPosts)

		// Case studies
		rpc.POST("/createCaseStudy", caseStudyHandler.CreateCaseStudy)
		rpc.GET("/getCaseStudies", caseStudyHandler.GetCaseStudies)
		rpc.GET("/getCaseStudiesByProduct", caseStudyHandler.GetCaseStudiesByProduct)

		// Testimonials
		rpc.POST("/createTestimonial", testimonialHandler.CreateTestimonial)
		rpc.GET("/getTestimonialsByProduct", testimonialHandler.GetTestimonialsByProduct)
		rpc.GET("/getFeaturedTestimonials", testimonialHandler.GetFeaturedTestimonials)

		// Analytics
		rpc.POST("/createAnalyticsEvent", analyticsHandler.CreateAnalyticsEvent)
		rpc.GET("/getAnalyticsSummary", analyticsHandler.GetAnalyticsSummary)

		// Contact and communication
		rpc.POST("/createContactSubmission", contactHandler.CreateContactSubmission)
		rpc.GET("/getContactSubmissions", contactHandler.GetContactSubmissions)

		// Documentation
		rpc.POST("/createDocumentation", docsHandler.CreateDocumentation)
		rpc.GET("/getDocumentationByProduct", docsHandler.GetDocumentationByProduct)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "marketing-site-api",
	})
}

// metricsHandler returns per-entity row counts
func metricsHandler(repos *repository.Repositories) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		users, _ := repos.User.Count(ctx)
		products, _ := repos.Product.Count(ctx)
		blogPosts, _ := repos.BlogPost.Count(ctx)
		caseStudies, _ := repos.CaseStudy.Count(ctx)
		testimonials, _ := repos.Testimonial.Count(ctx)
		events, _ := repos.Analytics.Count(ctx)
		contacts, _ := repos.Contact.Count(ctx)
		docs, _ := repos.Documentation.Count(ctx)

		c.JSON(http.StatusOK, gin.H{
			"database": gin.H{
				"users":               users,
				"products":            products,
				"blog_posts":          blogPosts,
				"case_studies":        caseStudies,
				"testimonials":        testimonials,
				"analytics_events":    events,
				"contact_submissions": contacts,
				"documentation":       docs,
			},
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests with a per-request id
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		requestID := uuid.New().String()
		c.Set("request_id", requestID)

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
