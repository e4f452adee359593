package models

import "time"

// AuditLogEntry is the immutable record the audit consumer writes for each
// workflow event. Keyed by (author, event id) so that duplicate deliveries of
// the same event collapse to a single entry.
type AuditLogEntry struct {
	EventId    string
	AuthorId   string
	DocId      string
	Status     DocumentStatus
	ApproverId *string
	Comment    *string
	Timestamp  time.Time
}
