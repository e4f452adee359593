package utils

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/models"
)

type ContextKey int

const (
	ContextKeyCredentials ContextKey = iota
	ContextKeyLogger
)

func StoreLoggerInContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ContextKeyLogger, logger)
}

func StoreLoggerInContextMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		newContext := StoreLoggerInContext(c.Request.Context(), logger)
		c.Request = c.Request.WithContext(newContext)
		c.Next()
	}
}

func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ContextKeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

func StoreCredentialsInContext(ctx context.Context, creds models.Credentials) context.Context {
	return context.WithValue(ctx, ContextKeyCredentials, creds)
}

func CredentialsFromCtx(ctx context.Context) models.Credentials {
	creds, _ := ctx.Value(ContextKeyCredentials).(models.Credentials)
	return creds
}
