package dto

import (
	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/pure_utils"
)

type PresignBody struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type PresignResponse struct {
	DocumentId string `json:"document_id"`
	UploadUrl  string `json:"upload_url"`
	FileKey    string `json:"file_key"`
}

func AdaptPresignedUploadDto(upload models.PresignedUpload) PresignResponse {
	return PresignResponse{
		DocumentId: upload.DocumentId,
		UploadUrl:  upload.UploadUrl,
		FileKey:    upload.FileKey,
	}
}

type MultipartInitiateBody struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
}

type MultipartInitiateResponse struct {
	DocumentId string `json:"document_id"`
	UploadId   string `json:"upload_id"`
	FileKey    string `json:"file_key"`
}

func AdaptMultipartUploadDto(upload models.MultipartUpload) MultipartInitiateResponse {
	return MultipartInitiateResponse{
		DocumentId: upload.DocumentId,
		UploadId:   upload.UploadId,
		FileKey:    upload.FileKey,
	}
}

type MultipartPresignPartBody struct {
	UploadId   string `json:"upload_id" binding:"required"`
	FileKey    string `json:"file_key" binding:"required"`
	PartNumber int32  `json:"part_number" binding:"required,gte=1,lte=10000"`
}

type UploadedPart struct {
	PartNumber int32  `json:"part_number" binding:"required,gte=1,lte=10000"`
	ETag       string `json:"etag" binding:"required"`
}

type MultipartCompleteBody struct {
	UploadId string         `json:"upload_id" binding:"required"`
	FileKey  string         `json:"file_key" binding:"required"`
	Parts    []UploadedPart `json:"parts" binding:"required,min=1,dive"`
}

func AdaptUploadedParts(parts []UploadedPart) []models.UploadedPart {
	return pure_utils.Map(parts, func(part UploadedPart) models.UploadedPart {
		return models.UploadedPart{
			PartNumber: part.PartNumber,
			ETag:       part.ETag,
		}
	})
}

type MultipartAbortBody struct {
	UploadId string `json:"upload_id" binding:"required"`
	FileKey  string `json:"file_key" binding:"required"`
}
