package repository

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrFavoriteNotFound is returned when a favorite does not exist for the user.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository persists the favoritos table.
type FavoriteRepository interface {
	// Find returns the favorite for (userID, productID) or ErrFavoriteNotFound.
	Find(ctx context.Context, userID uuid.UUID, productID int64) (*entity.Favorite, error)

	Create(ctx context.Context, favorite *entity.Favorite) error

	// Delete removes the favorite for (userID, productID).
	Delete(ctx context.Context, userID uuid.UUID, productID int64) error

	// DeleteByID removes a favorite row owned by userID.
	DeleteByID(ctx context.Context, userID uuid.UUID, favoriteID int64) error

	// ListEntries returns favorites joined with their products. Favorites of deleted products are omitted.
	ListEntries(ctx context.Context, userID uuid.UUID) ([]entity.FavoriteEntry, error)

	ListProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)
}
