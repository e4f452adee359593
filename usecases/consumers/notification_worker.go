package consumers

import (
	"context"
	"fmt"

	"github.com/riverqueue/river"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

type emailSender interface {
	SendEmail(ctx context.Context, toEmail, subject, body string) error
}

// NotificationWorker emails document authors when an approver has decided on
// one of their documents. Events of any other type are acknowledged without
// sending anything.
type NotificationWorker struct {
	river.WorkerDefaults[models.NotificationEventArgs]

	emailRepository emailSender
}

func NewNotificationWorker(emailRepository emailSender) *NotificationWorker {
	return &NotificationWorker{emailRepository: emailRepository}
}

func (w *NotificationWorker) Work(ctx context.Context, job *river.Job[models.NotificationEventArgs]) error {
	logger := utils.LoggerFromContext(ctx)

	event, err := models.UnwrapEventEnvelope(job.Args.Envelope)
	if err != nil {
		return err
	}

	if event.EventType != models.EventTypeDocumentStatusUpdated {
		logger.DebugContext(ctx, "Ignoring event type without notification",
			"event_id", event.EventId, "event_type", event.EventType)
		return nil
	}

	payload := event.Payload
	if payload.AuthorEmail == "" {
		logger.WarnContext(ctx, "No author email on event, skipping notification",
			"event_id", event.EventId, "doc_id", payload.DocId)
		return nil
	}

	comment := "No comment"
	if payload.Comment != nil && *payload.Comment != "" {
		comment = *payload.Comment
	}

	subject := fmt.Sprintf("Your document %s was %s", payload.DocId, payload.NewStatus)
	body := fmt.Sprintf(
		"Hello,\n\nYour document with ID %s has been %s.\n\nComment from approver:\n%s\n\nRegards,\nDocument System\n",
		payload.DocId, payload.NewStatus, comment)

	if err := w.emailRepository.SendEmail(ctx, payload.AuthorEmail, subject, body); err != nil {
		return err
	}

	logger.InfoContext(ctx, "Notification sent",
		"event_id", event.EventId, "doc_id", payload.DocId, "to", payload.AuthorEmail)
	return nil
}
