package impl

import (
	"context"
	"testing"

	"pluma/internal/domain/constants"
	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	mockRepo "pluma/internal/mocks/repository"
	mockUsecase "pluma/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type favoriteServiceFixtures struct {
	service      *favoriteService
	txManager    *mockRepo.MockTransactionManager
	favoriteRepo *mockRepo.MockFavoriteRepository
	entitlements *mockUsecase.MockEntitlementUsecase
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	entitlements := mockUsecase.NewMockEntitlementUsecase(t)

	srv := NewFavoriteService(FavoriteServiceParams{
		TxManager:    txManager,
		FavoriteRepo: favoriteRepo,
		Entitlements: entitlements,
		Logger:       discardLogger(),
	}).(*favoriteService)

	return favoriteServiceFixtures{
		service:      srv,
		txManager:    txManager,
		favoriteRepo: favoriteRepo,
		entitlements: entitlements,
	}
}

func TestFavoriteService_ToggleFavorite_Anonymous(t *testing.T) {
	fx := createTestFavoriteService(t)

	_, err := fx.service.ToggleFavorite(context.Background(), uuid.Nil, 7)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestFavoriteService_ToggleFavorite_TwiceRestoresState(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().FavoriteRepo().Return(txFavoriteRepo)
	factory.EXPECT().ProductRepo().Return(txProductRepo)
	runTxWith(fx.txManager, factory)

	// First toggle adds.
	txFavoriteRepo.EXPECT().Find(ctx, userID, int64(7)).Return(nil, repository.ErrFavoriteNotFound).Once()
	txProductRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Product{ID: 7}, nil).Once()
	txFavoriteRepo.EXPECT().Create(ctx, mock.MatchedBy(func(f *entity.Favorite) bool {
		return f.UserID == userID && f.ProductID == 7
	})).Return(nil).Once()

	favorited, err := fx.service.ToggleFavorite(ctx, userID, 7)
	require.NoError(t, err)
	assert.True(t, favorited)

	// Second toggle removes.
	txFavoriteRepo.EXPECT().Find(ctx, userID, int64(7)).Return(&entity.Favorite{ID: 1, UserID: userID, ProductID: 7}, nil).Once()
	txFavoriteRepo.EXPECT().Delete(ctx, userID, int64(7)).Return(nil).Once()

	favorited, err = fx.service.ToggleFavorite(ctx, userID, 7)
	require.NoError(t, err)
	assert.False(t, favorited)
}

func TestFavoriteService_ToggleFavorite_UnknownProduct(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	factory := mockRepo.NewMockRepositoryFactory(t)
	txFavoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	txProductRepo := mockRepo.NewMockProductRepository(t)
	factory.EXPECT().FavoriteRepo().Return(txFavoriteRepo)
	factory.EXPECT().ProductRepo().Return(txProductRepo)
	runTxWith(fx.txManager, factory)

	txFavoriteRepo.EXPECT().Find(ctx, userID, int64(404)).Return(nil, repository.ErrFavoriteNotFound)
	txProductRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.ToggleFavorite(ctx, userID, 404)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestFavoriteService_ListFavoritesGroupedByGenre(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().ListEntries(ctx, userID).Return([]entity.FavoriteEntry{
		{FavoriteID: 1, Product: entity.Product{ID: 7, Genre: "Terror"}},
		{FavoriteID: 2, Product: entity.Product{ID: 9, Genre: "Romance"}},
		{FavoriteID: 3, Product: entity.Product{ID: 12, Genre: "  "}},
		{FavoriteID: 4, Product: entity.Product{ID: 13, Genre: "Terror"}},
	}, nil)
	fx.entitlements.EXPECT().ResolveEntitlements(ctx, userID).Return(entity.Entitlements{13: {}}, nil)

	groups, err := fx.service.ListFavoritesGroupedByGenre(ctx, userID)

	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Len(t, groups["Terror"], 2)
	assert.Equal(t, int64(7), groups["Terror"][0].Product.ID)
	assert.False(t, groups["Terror"][0].Owned)
	assert.True(t, groups["Terror"][1].Owned)
	require.Len(t, groups[constants.DefaultGenre], 1)
	assert.Equal(t, int64(3), groups[constants.DefaultGenre][0].FavoriteID)
}

func TestFavoriteService_RemoveFavorite_MissingIsNoop(t *testing.T) {
	fx := createTestFavoriteService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.favoriteRepo.EXPECT().DeleteByID(ctx, userID, int64(5)).Return(repository.ErrFavoriteNotFound)

	assert.NoError(t, fx.service.RemoveFavorite(ctx, userID, 5))
}

func TestFavoriteService_FavoriteProductIDs_Anonymous(t *testing.T) {
	fx := createTestFavoriteService(t)

	ids, err := fx.service.FavoriteProductIDs(context.Background(), uuid.Nil)

	require.NoError(t, err)
	assert.Empty(t, ids)
}
