package usecase

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase manages the reader's cart.
type CartUsecase interface {
	// AddToCart is idempotent: a product is in the cart at most once.
	AddToCart(ctx context.Context, userID uuid.UUID, productID int64) (*entity.CartItem, error)
	// RemoveFromCart treats a missing row as already removed.
	RemoveFromCart(ctx context.Context, userID uuid.UUID, itemID int64) error
	// ListCart drops lines the reader already owns before returning.
	ListCart(ctx context.Context, userID uuid.UUID) ([]entity.CartLine, error)
}
