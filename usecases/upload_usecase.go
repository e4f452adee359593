package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
)

// UploadUsecase issues time-limited blob handles; document bytes never pass
// through the API.
type UploadUsecase struct {
	blobRepository repositories.BlobRepository
}

func fileKeyFor(documentId, filename string) string {
	return fmt.Sprintf("documents/%s/%s", documentId, filename)
}

func (usecase UploadUsecase) GeneratePresignedUpload(
	ctx context.Context,
	filename, contentType string,
) (models.PresignedUpload, error) {
	documentId := uuid.NewString()
	fileKey := fileKeyFor(documentId, filename)

	uploadUrl, err := usecase.blobRepository.GeneratePresignedPutUrl(ctx, fileKey, contentType)
	if err != nil {
		return models.PresignedUpload{}, err
	}

	return models.PresignedUpload{
		DocumentId: documentId,
		UploadUrl:  uploadUrl,
		FileKey:    fileKey,
	}, nil
}

func (usecase UploadUsecase) GeneratePresignedDownload(ctx context.Context, fileKey string) (string, error) {
	return usecase.blobRepository.GeneratePresignedGetUrl(ctx, fileKey)
}

func (usecase UploadUsecase) InitiateMultipartUpload(
	ctx context.Context,
	filename, contentType string,
) (models.MultipartUpload, error) {
	documentId := uuid.NewString()
	fileKey := fileKeyFor(documentId, filename)

	uploadId, err := usecase.blobRepository.InitiateMultipartUpload(ctx, fileKey, contentType)
	if err != nil {
		return models.MultipartUpload{}, err
	}

	return models.MultipartUpload{
		DocumentId: documentId,
		UploadId:   uploadId,
		FileKey:    fileKey,
	}, nil
}

func (usecase UploadUsecase) GeneratePresignedPartUrl(
	ctx context.Context,
	uploadId, fileKey string,
	partNumber int32,
) (string, error) {
	return usecase.blobRepository.GeneratePresignedPartUrl(ctx, uploadId, fileKey, partNumber)
}

func (usecase UploadUsecase) CompleteMultipartUpload(
	ctx context.Context,
	uploadId, fileKey string,
	parts []models.UploadedPart,
) error {
	return usecase.blobRepository.CompleteMultipartUpload(ctx, uploadId, fileKey, parts)
}

func (usecase UploadUsecase) AbortMultipartUpload(ctx context.Context, uploadId, fileKey string) error {
	return usecase.blobRepository.AbortMultipartUpload(ctx, uploadId, fileKey)
}
