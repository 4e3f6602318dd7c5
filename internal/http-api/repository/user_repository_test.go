package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestDuplicateKeyError(t *testing.T) {
	t.Run("UsernameConstraint", func(t *testing.T) {
		err := &pgconn.PgError{Code: uniqueViolation, ConstraintName: "idx_users_username"}
		assert.ErrorIs(t, duplicateKeyError(err), ErrDuplicateUsername)
	})

	t.Run("EmailConstraint", func(t *testing.T) {
		err := fmt.Errorf("create: %w", &pgconn.PgError{Code: uniqueViolation, ConstraintName: "idx_users_email"})
		assert.ErrorIs(t, duplicateKeyError(err), ErrDuplicateEmail)
	})

	t.Run("OtherPgError", func(t *testing.T) {
		err := &pgconn.PgError{Code: "23503", ConstraintName: "fk_something"}
		assert.Nil(t, duplicateKeyError(err))
	})

	t.Run("NonPgError", func(t *testing.T) {
		assert.Nil(t, duplicateKeyError(errors.New("connection reset")))
	})
}
