package models

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestDocumentStatusFrom(t *testing.T) {
	for _, valid := range []string{"PENDING", "APPROVED", "REJECTED"} {
		status, err := DocumentStatusFrom(valid)
		assert.NoError(t, err)
		assert.Equal(t, DocumentStatus(valid), status)
	}

	_, err := DocumentStatusFrom("ARCHIVED")
	assert.ErrorIs(t, err, BadParameterError)
}

func TestValidateTransition_FromPending(t *testing.T) {
	assert.NoError(t, DocumentStatusPending.ValidateTransition(DocumentStatusApproved))
	assert.NoError(t, DocumentStatusPending.ValidateTransition(DocumentStatusRejected))
}

func TestValidateTransition_SameStatus(t *testing.T) {
	for _, status := range []DocumentStatus{
		DocumentStatusApproved, DocumentStatusRejected,
	} {
		err := status.ValidateTransition(status)
		assert.ErrorIs(t, err, BadParameterError)
		assert.Contains(t, err.Error(), "already")
	}
}

func TestValidateTransition_PendingToPending(t *testing.T) {
	err := DocumentStatusPending.ValidateTransition(DocumentStatusPending)
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Contains(t, err.Error(), "cannot move from PENDING")
}

func TestValidateTransition_ReDecision(t *testing.T) {
	// an approver may reverse a decision, as long as the status changes
	assert.NoError(t, DocumentStatusApproved.ValidateTransition(DocumentStatusRejected))
	assert.NoError(t, DocumentStatusRejected.ValidateTransition(DocumentStatusApproved))
}

func TestValidateTransition_ErrorWrapsInvalidStatusTransition(t *testing.T) {
	err := DocumentStatusApproved.ValidateTransition(DocumentStatusApproved)
	assert.True(t, errors.Is(err, ErrInvalidStatusTransition))
}
