package jobs

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/assert"

	"github.com/docflow/docflow-backend/utils"
)

func testJobRow() *rivertype.JobRow {
	return &rivertype.JobRow{
		ID:      42,
		Kind:    "workflow_audit_event",
		Attempt: 1,
		Queue:   "audit",
	}
}

func TestLoggerMiddleware_Work(t *testing.T) {
	t.Run("stores a job-scoped logger in the context and logs success", func(t *testing.T) {
		var buf bytes.Buffer
		middleware := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

		var innerLogged bool
		err := middleware.Work(context.Background(), testJobRow(), func(ctx context.Context) error {
			utils.LoggerFromContext(ctx).InfoContext(ctx, "inner")
			innerLogged = true
			return nil
		})

		assert.NoError(t, err)
		assert.True(t, innerLogged)
		assert.Contains(t, buf.String(), `"msg":"inner"`)
		assert.Contains(t, buf.String(), `"job_kind":"workflow_audit_event"`)
		assert.Contains(t, buf.String(), "succeeded after")
	})

	t.Run("logs and returns the failure", func(t *testing.T) {
		var buf bytes.Buffer
		middleware := NewLoggerMiddleware(slog.New(slog.NewJSONHandler(&buf, nil)))

		err := middleware.Work(context.Background(), testJobRow(), func(ctx context.Context) error {
			return assert.AnError
		})

		assert.ErrorIs(t, err, assert.AnError)
		assert.Contains(t, buf.String(), "failed after")
		assert.Contains(t, buf.String(), `"queue":"audit"`)
	})
}

func TestRecovererMiddleware_Work(t *testing.T) {
	t.Run("passes results through", func(t *testing.T) {
		middleware := NewRecovererMiddleware()

		err := middleware.Work(context.Background(), testJobRow(), func(ctx context.Context) error {
			return nil
		})
		assert.NoError(t, err)

		err = middleware.Work(context.Background(), testJobRow(), func(ctx context.Context) error {
			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("converts a panic into an error", func(t *testing.T) {
		middleware := NewRecovererMiddleware()

		err := middleware.Work(context.Background(), testJobRow(), func(ctx context.Context) error {
			panic("bad payload")
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "panic: bad payload")
	})
}
