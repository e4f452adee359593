package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/utils"
)

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// NewLogging logs one record per request once the handler chain has finished,
// leveled by response status. Requests on the ignored paths (probes) produce
// no record at all. When the request was authenticated, the caller's user id
// and role are part of the record.
func NewLogging(logger *slog.Logger, ignorePaths ...string) gin.HandlerFunc {
	ignore := make(map[string]struct{}, len(ignorePaths))
	for _, path := range ignorePaths {
		ignore[path] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := ignore[path]; ok {
			return
		}

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		dataLength := max(c.Writer.Size(), 0)

		attributes := []slog.Attr{
			slog.Int("status", status),
			slog.Int64("latency", time.Since(start).Milliseconds()),
			slog.String("client_ip", c.ClientIP()),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("data_length", dataLength),
			slog.String("user_agent", c.Request.UserAgent()),
		}
		// The authentication middleware swaps the request, so the credentials
		// are visible here after c.Next.
		if creds := utils.CredentialsFromCtx(c.Request.Context()); creds.UserId != "" {
			attributes = append(attributes,
				slog.String("user_id", creds.UserId),
				slog.String("role", string(creds.Role)))
		}
		if len(c.Errors) > 0 {
			attributes = append(attributes, slog.String("error", c.Errors.String()))
		}

		logger.LogAttrs(c.Request.Context(), levelForStatus(status),
			fmt.Sprintf("%s %s", c.Request.Method, path), attributes...)
	}
}
