package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/riverqueue/river/rivertype"

	"github.com/docflow/docflow-backend/utils"
)

// LoggerMiddleware wraps every job attempt: it stores a job-scoped logger in
// the context for the worker to pick up, and logs the outcome with its
// duration. Failures are also reported to Sentry.
type LoggerMiddleware struct {
	l *slog.Logger
}

func NewLoggerMiddleware(l *slog.Logger) LoggerMiddleware {
	return LoggerMiddleware{l: l}
}

func (m LoggerMiddleware) IsMiddleware() bool { return true }

func (m LoggerMiddleware) Work(ctx context.Context, job *rivertype.JobRow, doInner func(context.Context) error) error {
	logger := m.l.With(
		"job_id", job.ID,
		"job_kind", job.Kind,
		"job_attempt", job.Attempt,
		"queue", job.Queue,
	)
	start := time.Now()

	ctx = utils.StoreLoggerInContext(ctx, logger)
	err := doInner(ctx)
	if err != nil {
		logger.ErrorContext(ctx, fmt.Sprintf("%s job %d failed after %s", job.Kind, job.ID, time.Since(start)))
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	logger.InfoContext(ctx, fmt.Sprintf("%s job %d succeeded after %s", job.Kind, job.ID, time.Since(start)))
	return nil
}

// RecovererMiddleware converts a panicking job into a failed attempt, so one
// bad payload cannot take the worker process down.
type RecovererMiddleware struct{}

func NewRecovererMiddleware() RecovererMiddleware {
	return RecovererMiddleware{}
}

func (m RecovererMiddleware) IsMiddleware() bool { return true }

func (m RecovererMiddleware) Work(ctx context.Context, job *rivertype.JobRow, doInner func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return doInner(ctx)
}
