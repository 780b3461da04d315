package impl

import (
	"context"
	"log/slog"

	"pluma/internal/domain/constants"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// favoriteService implements the FavoriteUsecase interface.
type favoriteService struct {
	txManager    repository.TransactionManager
	favoriteRepo repository.FavoriteRepository
	entitlements usecase.EntitlementUsecase
	logger       *slog.Logger
}

// FavoriteServiceParams holds dependencies for FavoriteService, injected by Fx.
type FavoriteServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	FavoriteRepo repository.FavoriteRepository
	Entitlements usecase.EntitlementUsecase
	Logger       *slog.Logger
}

// NewFavoriteService is the constructor for favoriteService.
func NewFavoriteService(params FavoriteServiceParams) usecase.FavoriteUsecase {
	return &favoriteService{
		txManager:    params.TxManager,
		favoriteRepo: params.FavoriteRepo,
		entitlements: params.Entitlements,
		logger:       params.Logger,
	}
}

func (srv *favoriteService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger)
}

// ToggleFavorite removes the favorite when present, otherwise adds it.
func (srv *favoriteService) ToggleFavorite(ctx context.Context, userID uuid.UUID, productID int64) (bool, error) {
	if userID == uuid.Nil {
		return false, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	var favorited bool

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		favoriteRepo := repoFactory.FavoriteRepo()

		_, err := favoriteRepo.Find(ctx, userID, productID)
		switch {
		case err == nil:
			if err := favoriteRepo.Delete(ctx, userID, productID); err != nil {
				return errors.Wrap(err, "failed to remove favorite")
			}
			favorited = false

			return nil

		case !errors.Is(err, repository.ErrFavoriteNotFound):
			return errors.Wrap(err, "failed to find favorite")
		}

		if _, err := repoFactory.ProductRepo().FindByID(ctx, productID); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return errors.WithStack(domainerrors.ErrProductNotFound)
			}

			return errors.Wrap(err, "failed to find product")
		}

		if err := favoriteRepo.Create(ctx, &entity.Favorite{UserID: userID, ProductID: productID}); err != nil {
			return errors.Wrap(err, "failed to add favorite")
		}
		favorited = true

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to toggle favorite",
			slog.Any("user_id", userID),
			slog.Int64("product_id", productID),
			slog.Any("error", err),
		)

		return false, errors.Wrap(err, "failed to toggle favorite")
	}

	srv.log(ctx).Debug("Favorite toggled",
		slog.Any("user_id", userID),
		slog.Int64("product_id", productID),
		slog.Bool("favorited", favorited),
	)

	return favorited, nil
}

// ListFavoritesGroupedByGenre groups the wishlist for the favorites page.
func (srv *favoriteService) ListFavoritesGroupedByGenre(ctx context.Context, userID uuid.UUID) (map[string][]usecase.FavoriteItem, error) {
	if userID == uuid.Nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	entries, err := srv.favoriteRepo.ListEntries(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	owned, err := srv.entitlements.ResolveEntitlements(ctx, userID)
	if err != nil {
		srv.log(ctx).Warn("Favorites listed without ownership", slog.Any("user_id", userID), slog.Any("error", err))
		owned = entity.Entitlements{}
	}

	groups := make(map[string][]usecase.FavoriteItem)
	for genre, bucket := range entity.GroupFavoritesByGenre(entries, constants.DefaultGenre) {
		items := make([]usecase.FavoriteItem, 0, len(bucket))
		for _, entry := range bucket {
			items = append(items, usecase.FavoriteItem{
				FavoriteID: entry.FavoriteID,
				Product:    entry.Product,
				Owned:      owned.Has(entry.Product.ID),
			})
		}
		groups[genre] = items
	}

	return groups, nil
}

// RemoveFavorite deletes a favorite by row id. A missing row is a no-op.
func (srv *favoriteService) RemoveFavorite(ctx context.Context, userID uuid.UUID, favoriteID int64) error {
	if userID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}

	if err := srv.favoriteRepo.DeleteByID(ctx, userID, favoriteID); err != nil {
		if errors.Is(err, repository.ErrFavoriteNotFound) {
			srv.log(ctx).Info("Favorite already removed", slog.Any("user_id", userID), slog.Int64("favorite_id", favoriteID))

			return nil
		}

		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// FavoriteProductIDs lists the favorited product ids.
func (srv *favoriteService) FavoriteProductIDs(ctx context.Context, userID uuid.UUID) ([]int64, error) {
	if userID == uuid.Nil {
		return []int64{}, nil
	}

	ids, err := srv.favoriteRepo.ListProductIDs(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorite ids")
	}

	return ids, nil
}
