package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// CaseStudyHandler handles case study procedures
type CaseStudyHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewCaseStudyHandler creates a new CaseStudyHandler
func NewCaseStudyHandler(repos *repository.Repositories, log zerolog.Logger) *CaseStudyHandler {
	return &CaseStudyHandler{
		repos: repos,
		log:   log.With().Str("handler", "case_study").Logger(),
	}
}

// CreateCaseStudy handles POST /rpc/createCaseStudy
func (h *CaseStudyHandler) CreateCaseStudy(c *gin.Context) {
	var input models.CreateCaseStudyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.ApplyDefaults()
	if errs := validation.ValidateCreateCaseStudy(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	cs := &models.CaseStudy{
		Title:            input.Title,
		Slug:             input.Slug,
		ClientName:       input.ClientName,
		Industry:         input.Industry,
		Problem:          input.Problem,
		Solution:         input.Solution,
		Results:          input.Results,
		FeaturedImageURL: input.FeaturedImageURL,
		GalleryImages:    input.GalleryImages,
		Metrics:          input.Metrics,
		ProductID:        input.ProductID,
	}

	if err := h.repos.CaseStudy.Create(c.Request.Context(), cs); err != nil {
		respondStoreError(c, h.log, "createCaseStudy", err)
		return
	}

	h.log.Info().Int64("case_study_id", cs.ID).Str("slug", cs.Slug).Msg("Case study created")
	c.JSON(http.StatusCreated, cs)
}

// GetCaseStudies handles GET /rpc/getCaseStudies
func (h *CaseStudyHandler) GetCaseStudies(c *gin.Context) {
	studies, err := h.repos.CaseStudy.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, "getCaseStudies", err)
		return
	}
	c.JSON(http.StatusOK, studies)
}

// GetCaseStudiesByProduct handles GET /rpc/getCaseStudiesByProduct?productId=
func (h *CaseStudyHandler) GetCaseStudiesByProduct(c *gin.Context) {
	productID, ok := queryInt64(c, "productId")
	if !ok {
		return
	}

	studies, err := h.repos.CaseStudy.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		respondStoreError(c, h.log, "getCaseStudiesByProduct", err)
		return
	}
	c.JSON(http.StatusOK, studies)
}
