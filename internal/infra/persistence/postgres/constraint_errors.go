package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return pgErrorCode(err) == pgUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	return pgErrorCode(err) == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	if pgErrorCode(err) == pgNotNullViolation {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") && strings.Contains(errMsg, "violates not-null")
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return pgErrorCode(err) == pgCheckViolation
}
