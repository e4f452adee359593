package dto

import (
	"strings"
	"time"

	"github.com/docflow/docflow-backend/models"
)

type CreateDocumentBody struct {
	DocumentId string `json:"document_id" binding:"required"`
	FileKey    string `json:"file_key" binding:"required"`
}

type UpdateDocumentStatusBody struct {
	Status  string  `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
	Comment *string `json:"comment"`
}

type Document struct {
	DocumentId string    `json:"document_id"`
	AuthorId   string    `json:"author_id"`
	Status     string    `json:"status"`
	S3Path     string    `json:"s3_path,omitempty"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	DocUrl     string    `json:"doc_url,omitempty"`
}

func AdaptDocumentDto(document models.Document) Document {
	return Document{
		DocumentId: document.Id,
		AuthorId:   document.AuthorId,
		Status:     string(document.Status),
		S3Path:     document.BlobPath,
		Comment:    document.Comment,
		CreatedAt:  document.CreatedAt,
		UpdatedAt:  document.UpdatedAt,
	}
}

// AdaptDocumentWithUrlDto is the listing shape: the raw blob path is replaced
// by a short-lived presigned url the browser can render directly.
func AdaptDocumentWithUrlDto(document models.Document, docUrl string) Document {
	dto := AdaptDocumentDto(document)
	dto.S3Path = ""
	dto.DocUrl = docUrl
	return dto
}

// FileKeyFromBlobPath extracts the object key from an "s3://bucket/key" path.
func FileKeyFromBlobPath(blobPath string) string {
	trimmed := strings.TrimPrefix(blobPath, "s3://")
	if _, key, found := strings.Cut(trimmed, "/"); found {
		return key
	}
	return trimmed
}
