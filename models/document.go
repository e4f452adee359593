package models

import (
	"fmt"
	"time"

	"github.com/cockroachdb/errors"
)

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "PENDING"
	DocumentStatusApproved DocumentStatus = "APPROVED"
	DocumentStatusRejected DocumentStatus = "REJECTED"
)

func DocumentStatusFrom(s string) (DocumentStatus, error) {
	switch DocumentStatus(s) {
	case DocumentStatusPending, DocumentStatusApproved, DocumentStatusRejected:
		return DocumentStatus(s), nil
	}
	return "", errors.Wrapf(BadParameterError, "unknown document status %q", s)
}

// ValidateTransition enforces the document lifecycle. From PENDING, the
// document may move to APPROVED or REJECTED. A terminal status may be
// re-decided to the other terminal status; only a transition to the value the
// document already has is blocked.
func (status DocumentStatus) ValidateTransition(newStatus DocumentStatus) error {
	if status == DocumentStatusPending {
		if newStatus != DocumentStatusApproved && newStatus != DocumentStatusRejected {
			return errors.Wrapf(ErrInvalidStatusTransition,
				"cannot move from PENDING to %s", newStatus)
		}
		return nil
	}
	if newStatus == status {
		return errors.Wrap(ErrInvalidStatusTransition,
			fmt.Sprintf("your status is already %s", status))
	}
	return nil
}

type Document struct {
	Id        string
	AuthorId  string
	Status    DocumentStatus
	BlobPath  string
	Comment   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateDocumentInput struct {
	DocumentId string
	FileKey    string
}

type UpdateDocumentStatusInput struct {
	DocumentId string
	NewStatus  DocumentStatus
	Comment    *string
}
