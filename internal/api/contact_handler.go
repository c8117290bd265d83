package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// ContactHandler handles contact submission procedures
type ContactHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(repos *repository.Repositories, log zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		repos: repos,
		log:   log.With().Str("handler", "contact").Logger(),
	}
}

// CreateContactSubmission handles POST /rpc/createContactSubmission
func (h *ContactHandler) CreateContactSubmission(c *gin.Context) {
	var input models.CreateContactSubmissionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if errs := validation.ValidateCreateContactSubmission(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	sub := &models.ContactSubmission{
		Name:      input.Name,
		Email:     input.Email,
		Company:   input.Company,
		Phone:     input.Phone,
		Message:   input.Message,
		ProductID: input.ProductID,
	}

	if err := h.repos.Contact.Create(c.Request.Context(), sub); err != nil {
		respondStoreError(c, h.log, "createContactSubmission", err)
		return
	}

	h.log.Info().Int64("submission_id", sub.ID).Msg("Contact submission created")
	c.JSON(http.StatusCreated, sub)
}

// GetContactSubmissions handles GET /rpc/getContactSubmissions
func (h *ContactHandler) GetContactSubmissions(c *gin.Context) {
	subs, err := h.repos.Contact.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, "getContactSubmissions", err)
		return
	}
	c.JSON(http.StatusOK, subs)
}
