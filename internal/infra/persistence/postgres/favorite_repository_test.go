package postgres

import (
	"context"
	"testing"
	"time"

	"pluma/internal/domain/entity"
	"pluma/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteRepository_Find(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)
	userID := uuid.New()
	created := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "favoritos" WHERE usuario_id = \$1 AND produto_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario_id", "produto_id", "created_at"}).
			AddRow(3, userID.String(), 7, created))

	favorite, err := repo.Find(context.Background(), userID, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), favorite.ID)
	assert.Equal(t, userID, favorite.UserID)
	assert.Equal(t, int64(7), favorite.ProductID)
}

func TestFavoriteRepository_Find_Missing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "favoritos" WHERE usuario_id = \$1 AND produto_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario_id", "produto_id", "created_at"}))

	_, err := repo.Find(context.Background(), uuid.New(), 7)
	assert.ErrorIs(t, err, repository.ErrFavoriteNotFound)
}

func TestFavoriteRepository_Create_UnknownProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)

	mock.ExpectQuery(`INSERT INTO "favoritos"`).
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolation})

	err := repo.Create(context.Background(), &entity.Favorite{UserID: uuid.New(), ProductID: 999})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestFavoriteRepository_Delete_ScopedToUserAndProduct(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)
	userID := uuid.New()

	mock.ExpectExec(`DELETE FROM "favoritos" WHERE usuario_id = \$1 AND produto_id = \$2`).
		WithArgs(userID, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "favoritos" WHERE usuario_id = \$1 AND produto_id = \$2`).
		WithArgs(userID, int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), userID, 7))
	assert.ErrorIs(t, repo.Delete(context.Background(), userID, 8), repository.ErrFavoriteNotFound)
}

// Favorites whose product was removed have no produtos row and are left out by the join.
func TestFavoriteRepository_ListEntries_JoinsProducts(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)
	userID := uuid.New()
	created := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT f.id AS favorite_id.* FROM favoritos AS f JOIN produtos AS p ON p.id = f.produto_id WHERE f.usuario_id = \$1 ORDER BY f.id DESC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{
			"favorite_id", "product_id", "title", "author", "description", "genre", "language",
			"page_count", "publication_year", "price", "cover_url", "content_url", "created_at",
		}).
			AddRow(12, 9, "Dom Casmurro", "Machado de Assis", "", "Romance", "pt", 256, 1899, "15.00", "c9.png", "l9.pdf", created).
			AddRow(10, 7, "Drácula", "Bram Stoker", "", "Terror", "pt", 418, 1897, "29.90", "c7.png", "l7.pdf", created))

	entries, err := repo.ListEntries(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(12), entries[0].FavoriteID)
	assert.Equal(t, int64(9), entries[0].Product.ID)
	assert.Equal(t, "Romance", entries[0].Product.Genre)
	assert.Equal(t, "29.9", entries[1].Product.Price.String())
}

func TestFavoriteRepository_ListProductIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT "produto_id" FROM "favoritos" WHERE usuario_id = \$1 ORDER BY produto_id`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"produto_id"}).AddRow(7).AddRow(9))

	ids, err := repo.ListProductIDs(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9}, ids)
}
