package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/repositories"
)

// ExecutorFactory runs transaction callbacks against TxMock so usecase tests
// can assert on the repository calls made inside the transaction.
type ExecutorFactory struct {
	mock.Mock
	ExecMock *Executor
	TxMock   *Transaction
}

func (f *ExecutorFactory) NewExecutor() repositories.Executor {
	f.Called()
	return f.ExecMock
}

func (f *ExecutorFactory) Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error {
	args := f.Called(ctx, fn)
	if err := fn(f.TxMock); err != nil {
		return err
	}
	return args.Error(0)
}
