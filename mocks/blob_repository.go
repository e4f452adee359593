package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/models"
)

type BlobRepository struct {
	mock.Mock
}

func (m *BlobRepository) GeneratePresignedPutUrl(
	ctx context.Context,
	fileKey, contentType string,
) (string, error) {
	args := m.Called(ctx, fileKey, contentType)
	return args.String(0), args.Error(1)
}

func (m *BlobRepository) GeneratePresignedGetUrl(ctx context.Context, fileKey string) (string, error) {
	args := m.Called(ctx, fileKey)
	return args.String(0), args.Error(1)
}

func (m *BlobRepository) InitiateMultipartUpload(ctx context.Context, fileKey, contentType string) (string, error) {
	args := m.Called(ctx, fileKey, contentType)
	return args.String(0), args.Error(1)
}

func (m *BlobRepository) GeneratePresignedPartUrl(
	ctx context.Context,
	uploadId, fileKey string,
	partNumber int32,
) (string, error) {
	args := m.Called(ctx, uploadId, fileKey, partNumber)
	return args.String(0), args.Error(1)
}

func (m *BlobRepository) CompleteMultipartUpload(
	ctx context.Context,
	uploadId, fileKey string,
	parts []models.UploadedPart,
) error {
	args := m.Called(ctx, uploadId, fileKey, parts)
	return args.Error(0)
}

func (m *BlobRepository) AbortMultipartUpload(ctx context.Context, uploadId, fileKey string) error {
	args := m.Called(ctx, uploadId, fileKey)
	return args.Error(0)
}
