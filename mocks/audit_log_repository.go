package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
)

type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) CreateAuditLogEntry(
	ctx context.Context,
	exec repositories.Executor,
	entry models.AuditLogEntry,
) error {
	args := m.Called(ctx, exec, entry)
	return args.Error(0)
}

func (m *AuditLogRepository) ListAuditLogEntries(
	ctx context.Context,
	exec repositories.Executor,
	authorIdFilter *string,
) ([]models.AuditLogEntry, error) {
	args := m.Called(ctx, exec, authorIdFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AuditLogEntry), args.Error(1)
}
