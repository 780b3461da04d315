package impl

import (
	"context"
	"io"
	"log/slog"

	"pluma/internal/domain/repository"
	mockRepo "pluma/internal/mocks/repository"

	"github.com/stretchr/testify/mock"
)

const txFuncType = "func(repository.RepositoryFactory) error"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runTxWith makes txManager hand factory to the transaction body and return its error.
func runTxWith(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType(txFuncType)).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}
