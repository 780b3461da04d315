package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the append-only 'pedidos' table. produtos_ids has no foreign key
// so a purchase survives the removal of a product from the catalog.
type OrderModel struct {
	ID            int64           `gorm:"column:id;primaryKey;autoIncrement"`
	UserID        uuid.UUID       `gorm:"column:usuario_id;type:uuid;not null;index"`
	Total         decimal.Decimal `gorm:"column:total;type:numeric(10,2);not null"`
	Status        string          `gorm:"column:status;type:varchar(20);not null"`
	ProductIDs    pq.Int64Array   `gorm:"column:produtos_ids;type:bigint[];not null"`
	PaymentMethod string          `gorm:"column:metodo_pagamento;type:varchar(10);not null"`
	CreatedAt     time.Time       `gorm:"column:created_at"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "pedidos"
}
