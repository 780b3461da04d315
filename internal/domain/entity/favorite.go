package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite marks a product on a user's wishlist.
type Favorite struct {
	ID        int64
	UserID    uuid.UUID
	ProductID int64
	CreatedAt time.Time
}

// FavoriteEntry is a favorite row joined with its product.
type FavoriteEntry struct {
	FavoriteID int64
	Product    Product
}

// GroupFavoritesByGenre buckets entries by product genre, using fallback for blank genres.
// Entry order inside each bucket follows the input order.
func GroupFavoritesByGenre(entries []FavoriteEntry, fallback string) map[string][]FavoriteEntry {
	groups := make(map[string][]FavoriteEntry)
	for _, entry := range entries {
		genre := entry.Product.GenreOr(fallback)
		groups[genre] = append(groups[genre], entry)
	}

	return groups
}
