package consumers

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riverqueue/river"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
	"github.com/docflow/docflow-backend/utils"
)

type auditLogWriter interface {
	CreateAuditLogEntry(ctx context.Context, exec repositories.Executor, entry models.AuditLogEntry) error
}

type auditExecutorFactory interface {
	NewExecutor() repositories.Executor
}

// AuditWorker durably records one audit log entry per workflow event. The
// guarded write makes it idempotent: a duplicate delivery of the same event
// collides on the (author, event id) key and is treated as success.
type AuditWorker struct {
	river.WorkerDefaults[models.AuditEventArgs]

	executorFactory auditExecutorFactory
	repository      auditLogWriter
}

func NewAuditWorker(executorFactory auditExecutorFactory, repository auditLogWriter) *AuditWorker {
	return &AuditWorker{
		executorFactory: executorFactory,
		repository:      repository,
	}
}

func (w *AuditWorker) Work(ctx context.Context, job *river.Job[models.AuditEventArgs]) error {
	logger := utils.LoggerFromContext(ctx)

	event, err := models.UnwrapEventEnvelope(job.Args.Envelope)
	if err != nil {
		// Nothing to retry on malformed content, but the failure is still
		// signaled so the queue can apply its own dead-lettering policy.
		return err
	}

	entry, err := auditLogEntryFromEvent(event)
	if err != nil {
		return err
	}

	err = w.repository.CreateAuditLogEntry(ctx, w.executorFactory.NewExecutor(), entry)
	switch {
	case errors.Is(err, models.ErrDuplicateAuditLogEntry):
		logger.WarnContext(ctx, "Duplicate event ignored", "event_id", event.EventId)
		return nil
	case err != nil:
		return err
	}

	logger.InfoContext(ctx, "Audit log written", "event_id", event.EventId)
	return nil
}

func auditLogEntryFromEvent(event models.WorkflowEvent) (models.AuditLogEntry, error) {
	payload := event.Payload
	if payload.AuthorId == "" || payload.DocId == "" {
		return models.AuditLogEntry{}, errors.Wrap(models.ErrMalformedEventEnvelope,
			"missing author_id or doc_id in payload")
	}

	status, err := models.DocumentStatusFrom(payload.EffectiveStatus())
	if err != nil {
		return models.AuditLogEntry{}, errors.Wrap(models.ErrMalformedEventEnvelope, err.Error())
	}

	timestamp, err := time.Parse(time.RFC3339Nano, payload.Timestamp)
	if err != nil {
		return models.AuditLogEntry{}, errors.Wrap(models.ErrMalformedEventEnvelope,
			"invalid timestamp in payload")
	}

	var approverId *string
	if payload.ApproverId != "" {
		approverId = &payload.ApproverId
	}

	return models.AuditLogEntry{
		EventId:    event.EventId,
		AuthorId:   payload.AuthorId,
		DocId:      payload.DocId,
		Status:     status,
		ApproverId: approverId,
		Comment:    payload.Comment,
		Timestamp:  timestamp,
	}, nil
}
