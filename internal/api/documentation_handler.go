package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// DocumentationHandler handles documentation procedures
type DocumentationHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewDocumentationHandler creates a new DocumentationHandler
func NewDocumentationHandler(repos *repository.Repositories, log zerolog.Logger) *DocumentationHandler {
	return &DocumentationHandler{
		repos: repos,
		log:   log.With().Str("handler", "documentation").Logger(),
	}
}

// CreateDocumentation handles POST /rpc/createDocumentation
func (h *DocumentationHandler) CreateDocumentation(c *gin.Context) {
	var input models.CreateDocumentationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCreateDocumentation(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	doc := &models.Documentation{
		Title:      input.Title,
		Slug:       input.Slug,
		Content:    input.Content,
		Category:   input.Category,
		ProductID:  input.ProductID,
		OrderIndex: input.OrderIndex,
	}

	if err := h.repos.Documentation.Create(c.Request.Context(), doc); err != nil {
		respondStoreError(c, h.log, "createDocumentation", err)
		return
	}

	h.log.Info().Int64("doc_id", doc.ID).Int64("product_id", doc.ProductID).Str("slug", doc.Slug).Msg("Documentation page created")
	c.JSON(http.StatusCreated, doc)
}

// GetDocumentationByProduct handles GET /rpc/getDocumentationByProduct?productId=
func (h *DocumentationHandler) GetDocumentationByProduct(c *gin.Context) {
	productID, ok := queryInt64(c, "productId")
	if !ok {
		return
	}

	docs, err := h.repos.Documentation.GetByProduct(c.Request.Context(), productID)
	if err != nil {
		respondStoreError(c, h.log, "getDocumentationByProduct", err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
