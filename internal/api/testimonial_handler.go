package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// TestimonialHandler handles testimonial procedures
type TestimonialHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewTestimonialHandler creates a new TestimonialHandler
func NewTestimonialHandler(repos *repository.Repositories, log zerolog.Logger) *TestimonialHandler {
	return &TestimonialHandler{
		repos: repos,
		log:   log.With().Str("handler", "testimonial").Logger(),
	}
}

// CreateTestimonial handles POST /rpc/createTestimonial
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var input models.CreateTestimonialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCreateTestimonial(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	testimonial := &models.Testimonial{
		Content:         input.Content,
		AuthorName:      input.AuthorName,
		AuthorTitle:     input.AuthorTitle,
		AuthorCompany:   input.AuthorCompany,
		AuthorAvatarURL: input.AuthorAvatarURL,
		Rating:          input.Rating,
		ProductID:       input.ProductID,
		IsFeatured:      input.IsFeatured,
	}

	if err := h.repos.Testimonial.Create(c.Request.Context(), testimonial); err != nil {
		respondStoreError(c, h.log, "createTestimonial", err)
		return
	}

	h.log.Info().Int64("testimonial_id", testimonial.ID).Int("rating", testimonial.Rating).Msg("Testimonial created")
	c.JSON(http.StatusCreated, testimonial)
}

// GetTestimonialsByProduct handles GET /rpc/getTestimonialsByProduct?productId=
func (h *TestimonialHandler) GetTestimonialsByProduct(c *gin.Context) {
	productID, ok := queryInt64(c, "productId")
	if !ok {
		return
	}

	testimonials, err := h.repos.Testimonial.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		respondStoreError(c, h.log, "getTestimonialsByProduct", err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}

// GetFeaturedTestimonials handles GET /rpc/getFeaturedTestimonials
func (h *TestimonialHandler) GetFeaturedTestimonials(c *gin.Context) {
	testimonials, err := h.repos.Testimonial.GetFeatured(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, "getFeaturedTestimonials", err)
		return
	}
	c.JSON(http.StatusOK, testimonials)
}
