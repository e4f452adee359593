package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

type tokenValidator interface {
	ValidateToken(tokenString string) (models.Credentials, error)
}

type Authentication struct {
	validator tokenValidator
}

func NewAuthentication(validator tokenValidator) Authentication {
	return Authentication{validator: validator}
}

func ParseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "missing Authorization header")
	}

	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found || strings.TrimSpace(token) == "" {
		return "", errors.Wrap(models.UnAuthorizedError, "malformed Authorization header, expected 'Bearer <token>'")
	}
	return strings.TrimSpace(token), nil
}

func wrapErrInUnAuthorizedError(err error) error {
	// 401 whether the token is missing, expired or otherwise invalid, per
	// https://auth0.com/blog/forbidden-unauthorized-http-status-codes
	if errors.Is(err, models.UnAuthorizedError) {
		return err
	}
	return errors.Join(models.UnAuthorizedError, err)
}

// Middleware authenticates the request from its Authorization bearer token and
// stores the resulting credentials in the request context.
func (auth Authentication) Middleware(c *gin.Context) {
	ctx := c.Request.Context()

	token, err := ParseAuthorizationBearerHeader(c.Request.Header)
	if presentError(ctx, c, err) {
		c.Abort()
		return
	}

	creds, err := auth.validator.ValidateToken(token)
	if err != nil {
		err = wrapErrInUnAuthorizedError(err)
	}
	if presentError(ctx, c, err) {
		c.Abort()
		return
	}

	newContext := utils.StoreCredentialsInContext(ctx, creds)

	logger := utils.LoggerFromContext(newContext).With(
		slog.String("user_id", creds.UserId),
		slog.String("role", string(creds.Role)),
	)
	newContext = utils.StoreLoggerInContext(newContext, logger)

	c.Request = c.Request.WithContext(newContext)
	c.Next()
}
