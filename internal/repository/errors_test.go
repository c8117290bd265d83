package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestClassifyError_UniqueViolation(t *testing.T) {
	err := classifyError(&pq.Error{Code: "23505", Constraint: "users_email_key"})
	assert.True(t, errors.Is(err, ErrUniqueViolation))
	assert.Contains(t, err.Error(), "users_email_key")
}

func TestClassifyError_ForeignKeyViolation(t *testing.T) {
	err := classifyError(&pq.Error{Code: "23503", Constraint: "blog_posts_author_id_fkey"})
	assert.True(t, errors.Is(err, ErrForeignKeyViolation))
	assert.Contains(t, err.Error(), "blog_posts_author_id_fkey")
}

func TestClassifyError_Passthrough(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	assert.Equal(t, cause, classifyError(cause))

	otherPq := &pq.Error{Code: "42601", Message: "syntax error"}
	assert.Equal(t, error(otherPq), classifyError(otherPq))

	assert.NoError(t, classifyError(nil))
}
