package model

import (
	"time"

	"github.com/google/uuid"
)

// CartItemModel mirrors the 'carrinho' table. (usuario_id, produto_id) is unique so adds are upserts.
type CartItemModel struct {
	ID        int64         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uuid.UUID     `gorm:"column:usuario_id;type:uuid;not null;uniqueIndex:idx_carrinho_usuario_produto,priority:1"`
	ProductID int64         `gorm:"column:produto_id;not null;uniqueIndex:idx_carrinho_usuario_produto,priority:2"`
	Quantity  int           `gorm:"column:quantidade;not null;default:1"`
	CreatedAt time.Time     `gorm:"column:created_at"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CartItemModel) TableName() string {
	return "carrinho"
}
