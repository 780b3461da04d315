package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintHelpers(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: pgUniqueViolation}, "insert")
	fk := &pgconn.PgError{Code: pgForeignKeyViolation}
	notNull := errors.New(`ERROR: null value in column "titulo" violates not-null constraint`)
	check := &pgconn.PgError{Code: pgCheckViolation}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.False(t, isForeignKeyConstraintViolation(unique))

	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(check))

	assert.True(t, isCheckConstraintViolation(check))
	assert.False(t, isCheckConstraintViolation(errors.New("boom")))
}
