package impl

import (
	"context"
	"errors"
	"testing"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	mockRepo "pluma/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entitlementServiceFixtures struct {
	service     *entitlementService
	orderRepo   *mockRepo.MockOrderRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestEntitlementService(t *testing.T) entitlementServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	srv := NewEntitlementService(EntitlementServiceParams{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Logger:      discardLogger(),
	}).(*entitlementService)

	return entitlementServiceFixtures{service: srv, orderRepo: orderRepo, productRepo: productRepo}
}

func TestEntitlementService_ResolveEntitlements_Anonymous(t *testing.T) {
	fx := createTestEntitlementService(t)

	owned, err := fx.service.ResolveEntitlements(context.Background(), uuid.Nil)

	require.NoError(t, err)
	assert.Empty(t, owned)
}

func TestEntitlementService_ResolveEntitlements_UnionOfOrders(t *testing.T) {
	fx := createTestEntitlementService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.Order{
		{ID: 1, UserID: userID, ProductIDs: []int64{7, 9}},
		{ID: 2, UserID: userID, ProductIDs: []int64{9, 12}},
	}, nil)

	owned, err := fx.service.ResolveEntitlements(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, []int64{7, 9, 12}, owned.IDs())
}

func TestEntitlementService_ResolveEntitlements_RepoError(t *testing.T) {
	fx := createTestEntitlementService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return(nil, errors.New("connection reset"))

	owned, err := fx.service.ResolveEntitlements(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, owned)
}

func TestEntitlementService_OwnedProducts(t *testing.T) {
	fx := createTestEntitlementService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.orderRepo.EXPECT().ListByUser(ctx, userID).Return([]*entity.Order{
		{ID: 1, UserID: userID, ProductIDs: []int64{9, 7, 404}},
	}, nil)
	// 404 was removed from the catalog, only the live products come back.
	fx.productRepo.EXPECT().FindByIDs(ctx, []int64{7, 9, 404}).Return([]*entity.Product{
		{ID: 7, Title: "O Chamado de Cthulhu"},
		{ID: 9, Title: "Dom Casmurro"},
	}, nil)

	products, err := fx.service.OwnedProducts(ctx, userID)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(7), products[0].ID)
}

func TestEntitlementService_OwnedProducts_Anonymous(t *testing.T) {
	fx := createTestEntitlementService(t)

	_, err := fx.service.OwnedProducts(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}
