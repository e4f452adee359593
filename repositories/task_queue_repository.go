package repositories

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

const nbRetriesWorkflowEvent = 5

// TaskQueueRepository is the broadcast channel between the workflow engine and
// its consumers. Publishing the same logical event once per consumer tag is
// intentional fan-out: the tag selects the job kind, and each kind is routed
// to its own queue and worker.
type TaskQueueRepository interface {
	PublishWorkflowEvent(ctx context.Context, event models.WorkflowEvent, consumer models.ConsumerTag) error
}

type riverRepository struct {
	client *river.Client[pgx.Tx]
}

func NewTaskQueueRepository(client *river.Client[pgx.Tx]) TaskQueueRepository {
	return riverRepository{client: client}
}

func (r riverRepository) PublishWorkflowEvent(
	ctx context.Context,
	event models.WorkflowEvent,
	consumer models.ConsumerTag,
) error {
	envelope, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to encode workflow event")
	}

	var args river.JobArgs
	var queue string
	switch consumer {
	case models.ConsumerAudit:
		args = models.AuditEventArgs{Envelope: envelope}
		queue = models.QueueAudit
	case models.ConsumerNotify:
		args = models.NotificationEventArgs{Envelope: envelope}
		queue = models.QueueNotifications
	default:
		return errors.Newf("unknown consumer tag %q", consumer)
	}

	res, err := r.client.Insert(ctx, args, &river.InsertOpts{
		MaxAttempts: nbRetriesWorkflowEvent,
		Queue:       queue,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to publish workflow event %s", event.EventId)
	}

	utils.LoggerFromContext(ctx).DebugContext(ctx, "Published workflow event",
		"event_id", event.EventId, "consumer", string(consumer), "job_id", res.Job.ID)
	return nil
}
