package postgres

import (
	"context"
	"testing"
	"time"

	"pluma/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery(`INSERT INTO "pedidos"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(100))

	order := &entity.Order{
		UserID:        uuid.New(),
		Total:         decimal.RequireFromString("44.90"),
		Status:        entity.OrderStatusPaid,
		ProductIDs:    []int64{7, 9},
		PaymentMethod: entity.PaymentMethodPix,
	}

	require.NoError(t, repo.Create(context.Background(), order))
	assert.Equal(t, int64(100), order.ID)
}

func TestOrderRepository_ListByUser_DecodesProductArray(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "pedidos" WHERE usuario_id = \$1 ORDER BY id`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "usuario_id", "total", "status", "produtos_ids", "metodo_pagamento", "created_at"}).
			AddRow(1, userID.String(), "44.90", "paid", "{7,9}", "pix", time.Now()))

	orders, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, []int64{7, 9}, orders[0].ProductIDs)
	assert.Equal(t, entity.OrderStatusPaid, orders[0].Status)
	assert.Equal(t, entity.PaymentMethodPix, orders[0].PaymentMethod)
}
