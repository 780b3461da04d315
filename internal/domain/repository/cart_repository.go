package repository

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrCartItemNotFound is returned when a cart row does not exist for the user.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository persists the carrinho table.
type CartRepository interface {
	// Upsert inserts (userID, productID) with quantity 1, or resets the quantity of the existing row to 1.
	Upsert(ctx context.Context, userID uuid.UUID, productID int64) (*entity.CartItem, error)

	// DeleteByID removes one row owned by userID.
	DeleteByID(ctx context.Context, userID uuid.UUID, itemID int64) error

	// ListLines returns the user's rows joined with their products, oldest first.
	// Rows whose product no longer exists are omitted.
	ListLines(ctx context.Context, userID uuid.UUID) ([]entity.CartLine, error)

	// DeleteByUser empties the cart and returns the number of removed rows.
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteByProducts removes the user's rows referencing productIDs.
	DeleteByProducts(ctx context.Context, userID uuid.UUID, productIDs []int64) (int64, error)
}
