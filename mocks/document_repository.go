package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
)

type DocumentRepository struct {
	mock.Mock
}

func (m *DocumentRepository) CreateDocument(
	ctx context.Context,
	tx repositories.Transaction,
	document models.Document,
) error {
	args := m.Called(ctx, tx, document)
	return args.Error(0)
}

func (m *DocumentRepository) GetDocuments(
	ctx context.Context,
	exec repositories.Executor,
	requesterRole models.Role,
	requesterId string,
	statusFilter *models.DocumentStatus,
) ([]models.Document, error) {
	args := m.Called(ctx, exec, requesterRole, requesterId, statusFilter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Document), args.Error(1)
}

func (m *DocumentRepository) GetDocumentById(
	ctx context.Context,
	exec repositories.Executor,
	documentId string,
) (models.Document, error) {
	args := m.Called(ctx, exec, documentId)
	return args.Get(0).(models.Document), args.Error(1)
}

func (m *DocumentRepository) UpdateDocumentStatus(
	ctx context.Context,
	tx repositories.Transaction,
	document models.Document,
	newStatus models.DocumentStatus,
	comment *string,
	now time.Time,
) (models.Document, error) {
	args := m.Called(ctx, tx, document, newStatus, comment, now)
	return args.Get(0).(models.Document), args.Error(1)
}
