package impl

import (
	"context"
	"errors"
	"testing"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	mockRepo "pluma/internal/mocks/repository"
	mockUsecase "pluma/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartServiceFixtures struct {
	service      *cartService
	cartRepo     *mockRepo.MockCartRepository
	entitlements *mockUsecase.MockEntitlementUsecase
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	entitlements := mockUsecase.NewMockEntitlementUsecase(t)

	srv := NewCartService(CartServiceParams{
		CartRepo:     cartRepo,
		Entitlements: entitlements,
		Logger:       discardLogger(),
	}).(*cartService)

	return cartServiceFixtures{service: srv, cartRepo: cartRepo, entitlements: entitlements}
}

func TestCartService_AddToCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()
	item := &entity.CartItem{ID: 1, UserID: userID, ProductID: 7, Quantity: 1}

	fx.cartRepo.EXPECT().Upsert(ctx, userID, int64(7)).Return(item, nil)

	got, err := fx.service.AddToCart(ctx, userID, 7)

	require.NoError(t, err)
	assert.Equal(t, item, got)
}

func TestCartService_AddToCart_Anonymous(t *testing.T) {
	fx := createTestCartService(t)

	_, err := fx.service.AddToCart(context.Background(), uuid.Nil, 7)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestCartService_AddToCart_UnknownProduct(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().Upsert(ctx, userID, int64(999)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddToCart(ctx, userID, 999)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_RemoveFromCart_MissingItemIsNoop(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().DeleteByID(ctx, userID, int64(3)).Return(repository.ErrCartItemNotFound)

	assert.NoError(t, fx.service.RemoveFromCart(ctx, userID, 3))
}

func TestCartService_RemoveFromCart_RepoError(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().DeleteByID(ctx, userID, int64(3)).Return(errors.New("boom"))

	assert.Error(t, fx.service.RemoveFromCart(ctx, userID, 3))
}

func TestCartService_ListCart_Empty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ListLines(ctx, userID).Return([]entity.CartLine{}, nil)

	lines, err := fx.service.ListCart(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestCartService_ListCart_DropsOwnedBooks(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ListLines(ctx, userID).Return([]entity.CartLine{
		{ItemID: 1, ProductID: 7, Price: decimal.RequireFromString("29.90")},
		{ItemID: 2, ProductID: 9, Price: decimal.RequireFromString("15.00")},
	}, nil)
	fx.entitlements.EXPECT().ResolveEntitlements(ctx, userID).Return(entity.Entitlements{7: {}}, nil)
	fx.cartRepo.EXPECT().DeleteByProducts(ctx, userID, []int64{7}).Return(int64(1), nil)

	lines, err := fx.service.ListCart(ctx, userID)

	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, int64(9), lines[0].ProductID)
}

func TestCartService_ListCart_EntitlementErrorKeepsLines(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.cartRepo.EXPECT().ListLines(ctx, userID).Return([]entity.CartLine{{ItemID: 1, ProductID: 7}}, nil)
	fx.entitlements.EXPECT().ResolveEntitlements(ctx, userID).Return(nil, errors.New("timeout"))

	lines, err := fx.service.ListCart(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, lines, 1)
}
