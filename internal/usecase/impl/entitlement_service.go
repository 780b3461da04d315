package impl

import (
	"context"
	"log/slog"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// entitlementService implements the EntitlementUsecase interface.
type entitlementService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementService, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	OrderRepo   repository.OrderRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewEntitlementService is the constructor for entitlementService.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		orderRepo:   params.OrderRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *entitlementService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// ResolveEntitlements flattens the product ids of every order of the user.
func (srv *entitlementService) ResolveEntitlements(ctx context.Context, userID uuid.UUID) (entity.Entitlements, error) {
	if userID == uuid.Nil {
		return entity.Entitlements{}, nil
	}

	orders, err := srv.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to load orders", slog.Any("user_id", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to resolve entitlements")
	}

	return entity.EntitlementsFromOrders(orders), nil
}

// OwnedProducts returns the catalog entries the user owns.
func (srv *entitlementService) OwnedProducts(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	owned, err := srv.ResolveEntitlements(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := owned.IDs()
	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load owned products")
	}

	if len(products) < len(ids) {
		srv.log(ctx).Warn("Owned products missing from catalog",
			slog.Any("user_id", userID),
			slog.Int("owned", len(ids)),
			slog.Int("found", len(products)),
		)
	}

	return products, nil
}
