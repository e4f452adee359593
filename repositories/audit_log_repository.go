package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories/dbmodels"
)

// AuditLogRepository is the append-only store behind the audit consumer.
// Entries are keyed (AUDITLOG, USER#<author_id>#EVENT#<event_id>); writing the
// same key twice fails with ErrDuplicateAuditLogEntry, which makes the
// consumer idempotent under at-least-once delivery.
type AuditLogRepository interface {
	CreateAuditLogEntry(ctx context.Context, exec Executor, entry models.AuditLogEntry) error
	ListAuditLogEntries(ctx context.Context, exec Executor, authorIdFilter *string) ([]models.AuditLogEntry, error)
}

type AuditLogRepositoryPostgresql struct{}

func (repo AuditLogRepositoryPostgresql) CreateAuditLogEntry(
	ctx context.Context,
	exec Executor,
	entry models.AuditLogEntry,
) error {
	_, err := ExecBuilder(ctx, exec, NewQueryBuilder().
		Insert(dbmodels.TABLE_AUDIT_LOGS).
		Columns(dbmodels.SelectAuditLogColumns...).
		Values(
			dbmodels.AuditLogPartitionKey,
			dbmodels.AuditLogSortKey(entry.AuthorId, entry.EventId),
			entry.EventId,
			entry.DocId,
			string(entry.Status),
			entry.AuthorId,
			entry.ApproverId,
			entry.Comment,
			entry.Timestamp,
		))
	if IsUniqueViolationError(err) {
		return errors.WithStack(models.ErrDuplicateAuditLogEntry)
	}
	return errors.Wrap(err, "failed to write audit log entry")
}

func (repo AuditLogRepositoryPostgresql) ListAuditLogEntries(
	ctx context.Context,
	exec Executor,
	authorIdFilter *string,
) ([]models.AuditLogEntry, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectAuditLogColumns...).
		From(dbmodels.TABLE_AUDIT_LOGS).
		Where(squirrel.Eq{"pk": dbmodels.AuditLogPartitionKey}).
		OrderBy("event_timestamp DESC, sk")

	if authorIdFilter != nil {
		query = query.Where(squirrel.Like{
			"sk": dbmodels.AuditLogUserSortKeyPrefix(*authorIdFilter) + "%",
		})
	}

	entries, err := SqlToListOfModels(ctx, exec, query, dbmodels.AdaptAuditLogEntry)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.Wrap(models.NotFoundError, "no audit logs found")
	}
	return entries, nil
}
