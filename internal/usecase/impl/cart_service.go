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

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	entitlements usecase.EntitlementUsecase
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	Entitlements usecase.EntitlementUsecase
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:     params.CartRepo,
		entitlements: params.Entitlements,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// AddToCart puts one copy of the product in the cart.
func (srv *cartService) AddToCart(ctx context.Context, userID uuid.UUID, productID int64) (*entity.CartItem, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	item, err := srv.cartRepo.Upsert(ctx, userID, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.WithStack(domainerrors.ErrProductNotFound)
		}
		srv.log(ctx).Error("Failed to add to cart",
			slog.Any("user_id", userID),
			slog.Int64("product_id", productID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to add to cart")
	}

	return item, nil
}

// RemoveFromCart deletes one line of the cart.
func (srv *cartService) RemoveFromCart(ctx context.Context, userID uuid.UUID, itemID int64) error {
	if userID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	if err := srv.cartRepo.DeleteByID(ctx, userID, itemID); err != nil {
		if errors.Is(err, repository.ErrCartItemNotFound) {
			srv.log(ctx).Info("Cart item already removed", slog.Any("user_id", userID), slog.Int64("item_id", itemID))

			return nil
		}

		return errors.Wrap(err, "failed to remove from cart")
	}

	return nil
}

// ListCart returns the cart lines, dropping books the user already owns.
func (srv *cartService) ListCart(ctx context.Context, userID uuid.UUID) ([]entity.CartLine, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	lines, err := srv.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cart")
	}
	if len(lines) == 0 {
		return lines, nil
	}

	owned, err := srv.entitlements.ResolveEntitlements(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Skipping cart reconciliation", slog.Any("user_id", userID), slog.Any("error", err))

		return lines, nil
	}

	return srv.reconcile(ctx, userID, lines, owned), nil
}

// reconcile removes lines for books the user already owns.
func (srv *cartService) reconcile(ctx context.Context, userID uuid.UUID, lines []entity.CartLine, owned entity.Entitlements) []entity.CartLine {
	kept, stale := entity.SplitOwned(lines, owned)
	if len(stale) == 0 {
		return lines
	}

	removed, err := srv.cartRepo.DeleteByProducts(ctx, userID, stale)
	if err != nil {
		srv.log(ctx).Error("Failed to remove owned books from cart", slog.Any("user_id", userID), slog.Any("error", err))
	} else {
		srv.log(ctx).Warn("Removed owned books from cart",
			slog.Any("user_id", userID),
			slog.Any("product_ids", stale),
			slog.Int64("removed", removed),
		)
	}

	return kept
}
