package dbmodels

import (
	"fmt"
	"time"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

type DbAuditLogEntry struct {
	Pk         string    `db:"pk"`
	Sk         string    `db:"sk"`
	EventId    string    `db:"event_id"`
	DocId      string    `db:"doc_id"`
	Status     string    `db:"status"`
	AuthorId   string    `db:"author_id"`
	ApproverId *string   `db:"approver_id"`
	Comment    *string   `db:"comment"`
	Timestamp  time.Time `db:"event_timestamp"`
}

const TABLE_AUDIT_LOGS = "audit_logs"

var SelectAuditLogColumns = utils.ColumnList[DbAuditLogEntry]()

func AdaptAuditLogEntry(db DbAuditLogEntry) (models.AuditLogEntry, error) {
	status, err := models.DocumentStatusFrom(db.Status)
	if err != nil {
		return models.AuditLogEntry{}, err
	}

	return models.AuditLogEntry{
		EventId:    db.EventId,
		AuthorId:   db.AuthorId,
		DocId:      db.DocId,
		Status:     status,
		ApproverId: db.ApproverId,
		Comment:    db.Comment,
		Timestamp:  db.Timestamp,
	}, nil
}

const AuditLogPartitionKey = "AUDITLOG"

func AuditLogSortKey(authorId, eventId string) string {
	return fmt.Sprintf("USER#%s#EVENT#%s", authorId, eventId)
}

func AuditLogUserSortKeyPrefix(authorId string) string {
	return fmt.Sprintf("USER#%s#EVENT#", authorId)
}
