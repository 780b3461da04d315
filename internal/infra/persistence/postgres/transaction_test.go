package postgres

import (
	"context"
	"testing"

	"pluma/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := txManager.Execute(context.Background(), func(factory repository.RepositoryFactory) error {
		called = true
		assert.NotNil(t, factory.CartRepo())
		assert.NotNil(t, factory.OrderRepo())

		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db, mock := newMockDB(t)
	txManager := NewTransactionManager(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = txManager.Execute(context.Background(), func(repository.RepositoryFactory) error {
			panic("kaboom")
		})
	})
}
