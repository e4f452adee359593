package dto

import (
	"time"

	"github.com/docflow/docflow-backend/models"
)

type AuditLogEntry struct {
	EventId    string    `json:"event_id"`
	AuthorId   string    `json:"author_id"`
	DocId      string    `json:"doc_id"`
	Status     string    `json:"status"`
	ApproverId *string   `json:"approver_id"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

func AdaptAuditLogEntryDto(entry models.AuditLogEntry) AuditLogEntry {
	return AuditLogEntry{
		EventId:    entry.EventId,
		AuthorId:   entry.AuthorId,
		DocId:      entry.DocId,
		Status:     string(entry.Status),
		ApproverId: entry.ApproverId,
		Comment:    entry.Comment,
		CreatedAt:  entry.Timestamp,
	}
}
