package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
)

type AuditUsecase struct {
	executorFactory    executorFactory
	auditLogRepository repositories.AuditLogRepository
}

// ListAuditLogs returns the audit trail scoped to the caller: authors see
// their own entries, approvers see everything.
func (usecase AuditUsecase) ListAuditLogs(ctx context.Context, creds models.Credentials) ([]models.AuditLogEntry, error) {
	exec := usecase.executorFactory.NewExecutor()

	switch creds.Role {
	case models.RoleAuthor:
		if creds.UserId == "" {
			return nil, errors.Wrap(models.ErrMissingUserContext, "missing user id for author")
		}
		return usecase.auditLogRepository.ListAuditLogEntries(ctx, exec, &creds.UserId)
	case models.RoleApprover:
		return usecase.auditLogRepository.ListAuditLogEntries(ctx, exec, nil)
	default:
		return nil, errors.WithStack(models.ErrRoleNotPermittedViewLogs)
	}
}
