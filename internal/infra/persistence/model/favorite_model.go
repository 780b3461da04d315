package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favoritos' table.
type FavoriteModel struct {
	ID        int64         `gorm:"column:id;primaryKey;autoIncrement"`
	UserID    uuid.UUID     `gorm:"column:usuario_id;type:uuid;not null;uniqueIndex:idx_favoritos_usuario_produto,priority:1"`
	ProductID int64         `gorm:"column:produto_id;not null;uniqueIndex:idx_favoritos_usuario_produto,priority:2"`
	CreatedAt time.Time     `gorm:"column:created_at"`
	Product   *ProductModel `gorm:"foreignKey:ProductID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favoritos"
}
