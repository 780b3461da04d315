package postgres

import (
	"context"

	"pluma/internal/domain/entity"
	domainerrors "pluma/internal/domain/errors"
	"pluma/internal/domain/repository"
	"pluma/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the domain.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// cartLineRow is the scan target of the carrinho/produtos join.
type cartLineRow struct {
	ItemID     int64
	ProductID  int64
	Title      string
	Price      decimal.Decimal
	CoverURL   string
	ContentURL string
	Quantity   int
}

// Upsert adds the product to the cart or resets the existing row to quantity 1.
func (repo *cartRepository) Upsert(ctx context.Context, userID uuid.UUID, productID int64) (*entity.CartItem, error) {
	itemM := &model.CartItemModel{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "usuario_id"}, {Name: "produto_id"}},
			DoUpdates: clause.Assignments(map[string]any{"quantidade": 1}),
		}).
		Create(itemM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, repository.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return toCartItemDomain(itemM), nil
}

// DeleteByID removes one cart row owned by userID.
func (repo *cartRepository) DeleteByID(ctx context.Context, userID uuid.UUID, itemID int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND usuario_id = ?", itemID, userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart item")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartItemNotFound
	}

	return nil
}

// ListLines returns the cart joined with products, oldest row first.
func (repo *cartRepository) ListLines(ctx context.Context, userID uuid.UUID) ([]entity.CartLine, error) {
	var rows []cartLineRow
	if err := repo.db.WithContext(ctx).
		Table("carrinho AS c").
		Select(`c.id AS item_id, c.produto_id AS product_id, p.titulo AS title, p.preco AS price,
			p.url_capa AS cover_url, p.url_arquivo_pdf AS content_url, c.quantidade AS quantity`).
		Joins("JOIN produtos AS p ON p.id = c.produto_id").
		Where("c.usuario_id = ?", userID).
		Order("c.id").
		Scan(&rows).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	lines := make([]entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entity.CartLine(row))
	}

	return lines, nil
}

// DeleteByUser empties the user's cart.
func (repo *cartRepository) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("usuario_id = ?", userID).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

// DeleteByProducts removes the user's rows for productIDs.
func (repo *cartRepository) DeleteByProducts(ctx context.Context, userID uuid.UUID, productIDs []int64) (int64, error) {
	if len(productIDs) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("usuario_id = ? AND produto_id IN ?", userID, productIDs).
		Delete(&model.CartItemModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete cart items")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		ID:        data.ID,
		UserID:    data.UserID,
		ProductID: data.ProductID,
		Quantity:  data.Quantity,
		CreatedAt: data.CreatedAt,
	}
}
