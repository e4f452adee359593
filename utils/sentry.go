package utils

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// LogAndReportSentryError logs the error and forwards it to Sentry, for errors
// that are handled (no panic) but still unexpected.
func LogAndReportSentryError(ctx context.Context, err error) {
	LoggerFromContext(ctx).ErrorContext(ctx, err.Error())

	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.CaptureException(err)
	} else {
		sentry.CaptureException(err)
	}
}
