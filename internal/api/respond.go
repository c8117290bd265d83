package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/marketing-site-api/internal/repository"
	"github.com/marketing-site-api/internal/validation"
	"github.com/rs/zerolog"
)

// respondValidationErrors rejects a request whose payload failed field validation
func respondValidationErrors(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":  "validation failed",
		"fields": errs,
	})
}

// respondStoreError maps store-layer failures onto HTTP statuses: unique
// collisions to 409, dangling foreign keys to 422, anything else to 500.
func respondStoreError(c *gin.Context, log zerolog.Logger, op string, err error) {
	switch {
	case errors.Is(err, repository.ErrUniqueViolation):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, repository.ErrForeignKeyViolation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		log.Error().Err(err).Str("operation", op).Msg("Store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// queryInt64 parses a required integer query parameter, writing a 400
// response and returning false when it is missing or malformed
func queryInt64(c *gin.Context, name string) (int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " parameter is required"})
		return 0, false
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be an integer"})
		return 0, false
	}
	return value, true
}
