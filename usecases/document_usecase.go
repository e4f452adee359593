package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
	"github.com/docflow/docflow-backend/utils"
)

// DocumentUsecase is the workflow engine: it owns the document lifecycle and
// coordinates persistence and event emission. Persistence always commits
// before any event is published; if persistence fails, no event is ever
// published.
type DocumentUsecase struct {
	executorFactory     executorFactory
	documentRepository  repositories.DocumentRepository
	userRepository      repositories.UserRepository
	taskQueueRepository repositories.TaskQueueRepository
	bucketName          string
}

func (usecase DocumentUsecase) CreateDocument(
	ctx context.Context,
	creds models.Credentials,
	input models.CreateDocumentInput,
) (models.Document, error) {
	if creds.UserId == "" {
		return models.Document{}, errors.WithStack(models.ErrMissingUserContext)
	}

	now := time.Now().UTC()
	document := models.Document{
		Id:        input.DocumentId,
		AuthorId:  creds.UserId,
		Status:    models.DocumentStatusPending,
		BlobPath:  fmt.Sprintf("s3://%s/%s", usecase.bucketName, input.FileKey),
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return usecase.documentRepository.CreateDocument(ctx, tx, document)
	})
	if err != nil {
		return models.Document{}, errors.Wrap(err, "failed to create document")
	}

	event := models.WorkflowEvent{
		EventId:   uuid.NewString(),
		EventType: models.EventTypeDocumentCreated,
		Payload: models.WorkflowEventPayload{
			DocId:     document.Id,
			AuthorId:  document.AuthorId,
			Status:    string(models.DocumentStatusPending),
			Timestamp: now.Format(time.RFC3339Nano),
		},
	}
	if err := usecase.taskQueueRepository.PublishWorkflowEvent(ctx, event, models.ConsumerAudit); err != nil {
		// The document is already durable at this point.
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "failed to publish DOCUMENT_CREATED event",
			"doc_id", document.Id, "error", err.Error())
		return models.Document{}, err
	}

	return document, nil
}

// ListDocuments delegates the role-aware projection lookup to the store; it
// never filters in-process. An empty projection is an empty list, not an
// error.
func (usecase DocumentUsecase) ListDocuments(
	ctx context.Context,
	creds models.Credentials,
	statusFilter *models.DocumentStatus,
) ([]models.Document, error) {
	if creds.UserId == "" {
		return nil, errors.WithStack(models.ErrMissingUserContext)
	}

	documents, err := usecase.documentRepository.GetDocuments(
		ctx, usecase.executorFactory.NewExecutor(), creds.Role, creds.UserId, statusFilter)
	if errors.Is(err, models.NotFoundError) {
		return []models.Document{}, nil
	}
	return documents, err
}

func (usecase DocumentUsecase) UpdateDocumentStatus(
	ctx context.Context,
	creds models.Credentials,
	input models.UpdateDocumentStatusInput,
) (models.Document, error) {
	if creds.UserId == "" {
		return models.Document{}, errors.WithStack(models.ErrMissingUserContext)
	}
	if creds.Role != models.RoleApprover {
		return models.Document{}, errors.WithStack(models.ErrOnlyApproverAllowed)
	}

	document, err := usecase.documentRepository.GetDocumentById(
		ctx, usecase.executorFactory.NewExecutor(), input.DocumentId)
	if err != nil {
		return models.Document{}, err
	}

	if err := document.Status.ValidateTransition(input.NewStatus); err != nil {
		return models.Document{}, err
	}

	now := time.Now().UTC()
	var updated models.Document
	err = usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		var txErr error
		updated, txErr = usecase.documentRepository.UpdateDocumentStatus(
			ctx, tx, document, input.NewStatus, input.Comment, now)
		return txErr
	})
	if err != nil {
		return models.Document{}, err
	}

	var authorEmail string
	if author, err := usecase.userRepository.UserById(
		ctx, usecase.executorFactory.NewExecutor(), document.AuthorId); err != nil {
		utils.LoggerFromContext(ctx).WarnContext(ctx, "failed to resolve author for notification",
			"author_id", document.AuthorId, "error", err.Error())
	} else if author != nil {
		authorEmail = author.Email
	}

	event := models.WorkflowEvent{
		EventId:   uuid.NewString(),
		EventType: models.EventTypeDocumentStatusUpdated,
		Payload: models.WorkflowEventPayload{
			DocId:       document.Id,
			AuthorId:    document.AuthorId,
			OldStatus:   string(document.Status),
			NewStatus:   string(updated.Status),
			ApproverId:  creds.UserId,
			AuthorEmail: authorEmail,
			Comment:     input.Comment,
			Timestamp:   now.Format(time.RFC3339Nano),
		},
	}

	// One logical event, fanned out to both consumer groups.
	for _, consumer := range []models.ConsumerTag{models.ConsumerAudit, models.ConsumerNotify} {
		if err := usecase.taskQueueRepository.PublishWorkflowEvent(ctx, event, consumer); err != nil {
			utils.LoggerFromContext(ctx).ErrorContext(ctx, "failed to publish DOCUMENT_STATUS_UPDATED event",
				"doc_id", document.Id, "consumer", string(consumer), "error", err.Error())
			return models.Document{}, err
		}
	}

	return updated, nil
}
