package postgres

import (
	"context"
	"testing"

	"pluma/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_Upsert_UsesOnConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`INSERT INTO "carrinho" .* ON CONFLICT \("usuario_id","produto_id"\) DO UPDATE SET "quantidade"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	item, err := repo.Upsert(context.Background(), userID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(11), item.ID)
	assert.Equal(t, 1, item.Quantity)
	assert.Equal(t, userID, item.UserID)
}

func TestCartRepository_Upsert_UnknownProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)

	mock.ExpectQuery(`INSERT INTO "carrinho"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	_, err := repo.Upsert(context.Background(), uuid.New(), 999)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestCartRepository_DeleteByID_ScopedToOwner(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "carrinho" WHERE id = \$1 AND usuario_id = \$2`).
		WithArgs(int64(5), userID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteByID(context.Background(), userID, 5)
	assert.ErrorIs(t, err, repository.ErrCartItemNotFound)
}

func TestCartRepository_ListLines(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT c.id AS item_id.* FROM carrinho AS c JOIN produtos AS p ON p.id = c.produto_id WHERE c.usuario_id = \$1 ORDER BY c.id`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"item_id", "product_id", "title", "price", "cover_url", "content_url", "quantity"}).
			AddRow(1, 7, "Livro Sete", "29.90", "c7.png", "l7.pdf", 1).
			AddRow(2, 9, "Livro Nove", "15.00", "c9.png", "l9.pdf", 1))

	lines, err := repo.ListLines(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(7), lines[0].ProductID)
	assert.Equal(t, "29.9", lines[0].Price.String())
	assert.Equal(t, "l9.pdf", lines[1].ContentURL)
}

func TestCartRepository_DeleteByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCartRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "carrinho" WHERE usuario_id = \$1`).
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(0, 2))

	removed, err := repo.DeleteByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
}
