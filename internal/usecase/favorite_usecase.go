package usecase

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
)

// FavoriteItem is one entry of the grouped favorites view.
type FavoriteItem struct {
	FavoriteID int64
	Product    entity.Product
	Owned      bool
}

// FavoriteUsecase manages the reader's wishlist.
type FavoriteUsecase interface {
	// ToggleFavorite flips membership and reports whether the product is now a favorite.
	ToggleFavorite(ctx context.Context, userID uuid.UUID, productID int64) (bool, error)
	ListFavoritesGroupedByGenre(ctx context.Context, userID uuid.UUID) (map[string][]FavoriteItem, error)
	RemoveFavorite(ctx context.Context, userID uuid.UUID, favoriteID int64) error
	FavoriteProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error)
}
