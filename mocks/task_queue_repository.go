package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/models"
)

type TaskQueueRepository struct {
	mock.Mock
}

func (m *TaskQueueRepository) PublishWorkflowEvent(
	ctx context.Context,
	event models.WorkflowEvent,
	consumer models.ConsumerTag,
) error {
	args := m.Called(ctx, event, consumer)
	return args.Error(0)
}
