package repository

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository persists the pedidos ledger. Orders are never updated or deleted.
type OrderRepository interface {
	// Create inserts the order and fills its generated ID and CreatedAt.
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser returns every order of the user, oldest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)
}
