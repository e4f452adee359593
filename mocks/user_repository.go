package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(
	ctx context.Context,
	tx repositories.Transaction,
	user models.User,
) error {
	args := m.Called(ctx, tx, user)
	return args.Error(0)
}

func (m *UserRepository) UserByEmail(
	ctx context.Context,
	exec repositories.Executor,
	email string,
) (models.User, error) {
	args := m.Called(ctx, exec, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *UserRepository) UserById(
	ctx context.Context,
	exec repositories.Executor,
	userId string,
) (*models.User, error) {
	args := m.Called(ctx, exec, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
