package models

import (
	"encoding/json"

	"github.com/cockroachdb/errors"
)

type EventType string

const (
	EventTypeDocumentCreated       EventType = "DOCUMENT_CREATED"
	EventTypeDocumentStatusUpdated EventType = "DOCUMENT_STATUS_UPDATED"
)

// Consumer tags route a published workflow event to the matching consumer
// group.
type ConsumerTag string

const (
	ConsumerAudit  ConsumerTag = "AUDIT"
	ConsumerNotify ConsumerTag = "NOTIFY"
)

// WorkflowEvent is the transient envelope emitted by the workflow engine after
// a document mutation has been committed. It is never persisted as its own
// entity; the audit consumer folds its content into an AuditLogEntry.
type WorkflowEvent struct {
	EventId   string               `json:"event_id"`
	EventType EventType            `json:"event_type"`
	Payload   WorkflowEventPayload `json:"payload"`
}

type WorkflowEventPayload struct {
	DocId       string  `json:"doc_id"`
	AuthorId    string  `json:"author_id"`
	Status      string  `json:"status,omitempty"`
	OldStatus   string  `json:"old_status,omitempty"`
	NewStatus   string  `json:"new_status,omitempty"`
	ApproverId  string  `json:"approver_id,omitempty"`
	AuthorEmail string  `json:"author_email,omitempty"`
	Comment     *string `json:"comment,omitempty"`
	Timestamp   string  `json:"timestamp"`
}

// EffectiveStatus returns the status an audit entry should record: the new
// status for a transition, otherwise the creation status.
func (p WorkflowEventPayload) EffectiveStatus() string {
	if p.NewStatus != "" {
		return p.NewStatus
	}
	return p.Status
}

type transportEnvelope struct {
	Message string `json:"Message"`
}

// UnwrapEventEnvelope decodes a workflow event from a queue message body. The
// body is either the event itself, or the event json-escaped inside a
// transport envelope under a "Message" field; both shapes are accepted.
func UnwrapEventEnvelope(raw []byte) (WorkflowEvent, error) {
	var outer transportEnvelope
	if err := json.Unmarshal(raw, &outer); err == nil && outer.Message != "" {
		raw = []byte(outer.Message)
	}

	var event WorkflowEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		return WorkflowEvent{}, errors.Wrap(ErrMalformedEventEnvelope, err.Error())
	}
	if event.EventId == "" || event.EventType == "" {
		return WorkflowEvent{}, errors.Wrap(ErrMalformedEventEnvelope,
			"missing event_id or event_type")
	}
	return event, nil
}

// River job args, one kind per consumer group. The workflow engine publishes
// the same logical event once per consumer tag; routing to the right queue
// and worker happens through the job kind.

type AuditEventArgs struct {
	Envelope json.RawMessage `json:"envelope"`
}

func (AuditEventArgs) Kind() string { return "workflow_audit_event" }

type NotificationEventArgs struct {
	Envelope json.RawMessage `json:"envelope"`
}

func (NotificationEventArgs) Kind() string { return "workflow_notification_event" }

const (
	QueueAudit         = "audit"
	QueueNotifications = "notifications"
)
