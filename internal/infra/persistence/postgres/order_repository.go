package postgres

import (
	"context"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create appends an order to the ledger.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// ListByUser returns the user's orders oldest first.
func (repo *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var models []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Order("id").
		Find(&models).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	orders := make([]*entity.Order, 0, len(models))
	for _, m := range models {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		Total:         data.Total,
		Status:        entity.OrderStatus(data.Status),
		ProductIDs:    []int64(data.ProductIDs),
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		CreatedAt:     data.CreatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Total:         data.Total,
		Status:        string(data.Status),
		ProductIDs:    pq.Int64Array(data.ProductIDs),
		PaymentMethod: string(data.PaymentMethod),
		CreatedAt:     data.CreatedAt,
	}
}
