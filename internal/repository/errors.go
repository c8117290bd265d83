package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Sentinel errors for store-level constraint violations. Handlers branch on
// these to pick the response status without inspecting driver internals.
var (
	// ErrUniqueViolation indicates a unique column collision (email, slug)
	ErrUniqueViolation = errors.New("unique constraint violation")

	// ErrForeignKeyViolation indicates a reference to a missing row
	ErrForeignKeyViolation = errors.New("foreign key constraint violation")
)

// PostgreSQL error codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// classifyError maps driver constraint errors onto sentinel errors,
// preserving the violated constraint name. Other errors pass through unmodified.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrUniqueViolation, pqErr.Constraint)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKeyViolation, pqErr.Constraint)
		}
	}
	return err
}
