package usecase

import (
	"context"

	"pluma/internal/domain/entity"

	"github.com/google/uuid"
)

// EntitlementUsecase derives what a reader owns from the order ledger.
type EntitlementUsecase interface {
	// ResolveEntitlements recomputes the set from every order on each call.
	ResolveEntitlements(ctx context.Context, userID uuid.UUID) (entity.Entitlements, error)
	// OwnedProducts joins the set with the catalog, skipping deleted products.
	OwnedProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)
}
