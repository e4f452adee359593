package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// UnAuthorizedError is rendered with the http status code 401
	UnAuthorizedError = errors.New("unauthorized")

	// ForbiddenError is rendered with the http status code 403
	ForbiddenError = errors.New("forbidden")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Authentication related errors
var (
	ErrInvalidCredentials  = errors.Wrap(BadParameterError, "invalid credentials")
	ErrUserAlreadyExists   = errors.Wrap(ConflictError, "user already exists")
	ErrUnknownUser         = errors.Wrap(NotFoundError, "unknown user")
	ErrTokenExpired        = errors.Wrap(UnAuthorizedError, "token expired")
	ErrMissingUserContext  = errors.Wrap(BadParameterError, "unauthorized or invalid user context")
	ErrOnlyApproverAllowed = errors.Wrap(ForbiddenError, "only approver can update status")
)

// Document workflow related errors
var (
	ErrDocumentNotFound         = errors.Wrap(NotFoundError, "document not found")
	ErrInvalidStatusTransition  = errors.Wrap(BadParameterError, "invalid status transition")
	ErrConcurrentStatusUpdate   = errors.Wrap(ConflictError, "document was modified concurrently")
	ErrDuplicateAuditLogEntry   = errors.Wrap(ConflictError, "audit log entry already recorded")
	ErrMalformedEventEnvelope   = errors.New("malformed event envelope")
	ErrRoleNotPermittedViewLogs = errors.Wrap(ForbiddenError, "role not permitted to view logs")
)
