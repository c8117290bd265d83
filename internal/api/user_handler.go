package api

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/models"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// UserHandler handles user procedures
type UserHandler struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(repos *repository.Repositories, log zerolog.Logger) *UserHandler {
	return &UserHandler{
		repos: repos,
		log:   log.With().Str("handler", "user").Logger(),
	}
}

// CreateUser handles POST /rpc/createUser
func (h *UserHandler) CreateUser(c *gin.Context) {
	var input models.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	input.ApplyDefaults()
	if errs := validation.ValidateCreateUser(&input); len(errs) > 0 {
		respondValidationErrors(c, errs)
		return
	}

	user := &models.User{
		Email:        input.Email,
		PasswordHash: hashPassword(input.Password),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         input.Role,
		AvatarURL:    input.AvatarURL,
	}

	if err := h.repos.User.Create(c.Request.Context(), user); err != nil {
		respondStoreError(c, h.log, "createUser", err)
		return
	}

	h.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("User created")
	c.JSON(http.StatusCreated, user)
}

// GetUsers handles GET /rpc/getUsers
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.repos.User.GetAll(c.Request.Context())
	if err != nil {
		respondStoreError(c, h.log, "getUsers", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// hashPassword derives the stored password hash. Placeholder until a real
// auth flow lands; nothing in this service verifies passwords yet.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
