package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/cockroachdb/errors"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/pure_utils"
)

const (
	presignedPutExpiry  = 5 * time.Minute
	presignedGetExpiry  = 1000 * time.Second
	presignedPartExpiry = 15 * time.Minute
)

// BlobRepository issues time-limited upload/download handles on the document
// bucket. It never touches document content itself.
type BlobRepository interface {
	GeneratePresignedPutUrl(ctx context.Context, fileKey, contentType string) (string, error)
	GeneratePresignedGetUrl(ctx context.Context, fileKey string) (string, error)
	InitiateMultipartUpload(ctx context.Context, fileKey, contentType string) (uploadId string, err error)
	GeneratePresignedPartUrl(ctx context.Context, uploadId, fileKey string, partNumber int32) (string, error)
	CompleteMultipartUpload(ctx context.Context, uploadId, fileKey string, parts []models.UploadedPart) error
	AbortMultipartUpload(ctx context.Context, uploadId, fileKey string) error
}

type AwsS3Repository struct {
	// You can create goroutines that concurrently use the same service client to send multiple requests.
	// source: https://aws.github.io/aws-sdk-go-v2/docs/making-requests/
	s3Client      *s3.Client
	presignClient *s3.PresignClient
	bucketName    string
}

func NewS3Client() *s3.Client {
	// aws auto configure itself with the following environment variables:
	// AWS_REGION, AWS_ACCESS_KEY, AWS_SECRET_KEY
	conf, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		panic(fmt.Errorf("fail to load AWS config: %w", err))
	}

	return s3.NewFromConfig(conf)
}

func NewAwsS3Repository(s3Client *s3.Client, bucketName string) *AwsS3Repository {
	return &AwsS3Repository{
		s3Client:      s3Client,
		presignClient: s3.NewPresignClient(s3Client),
		bucketName:    bucketName,
	}
}

func (repo *AwsS3Repository) GeneratePresignedPutUrl(
	ctx context.Context,
	fileKey, contentType string,
) (string, error) {
	request, err := repo.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(repo.bucketName),
		Key:         aws.String(fileKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignedPutExpiry))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate upload URL")
	}
	return request.URL, nil
}

func (repo *AwsS3Repository) GeneratePresignedGetUrl(ctx context.Context, fileKey string) (string, error) {
	request, err := repo.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(repo.bucketName),
		Key:    aws.String(fileKey),
	}, s3.WithPresignExpires(presignedGetExpiry))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate download URL")
	}
	return request.URL, nil
}

func (repo *AwsS3Repository) InitiateMultipartUpload(ctx context.Context, fileKey, contentType string) (string, error) {
	output, err := repo.s3Client.CreateMultipartUpload(ctx, &s3.CreateMultipartUploadInput{
		Bucket:      aws.String(repo.bucketName),
		Key:         aws.String(fileKey),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to initiate multipart upload")
	}
	return aws.ToString(output.UploadId), nil
}

func (repo *AwsS3Repository) GeneratePresignedPartUrl(
	ctx context.Context,
	uploadId, fileKey string,
	partNumber int32,
) (string, error) {
	request, err := repo.presignClient.PresignUploadPart(ctx, &s3.UploadPartInput{
		Bucket:     aws.String(repo.bucketName),
		Key:        aws.String(fileKey),
		UploadId:   aws.String(uploadId),
		PartNumber: aws.Int32(partNumber),
	}, s3.WithPresignExpires(presignedPartExpiry))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate part upload URL")
	}
	return request.URL, nil
}

func (repo *AwsS3Repository) CompleteMultipartUpload(
	ctx context.Context,
	uploadId, fileKey string,
	parts []models.UploadedPart,
) error {
	_, err := repo.s3Client.CompleteMultipartUpload(ctx, &s3.CompleteMultipartUploadInput{
		Bucket:   aws.String(repo.bucketName),
		Key:      aws.String(fileKey),
		UploadId: aws.String(uploadId),
		MultipartUpload: &types.CompletedMultipartUpload{
			Parts: pure_utils.Map(parts, func(part models.UploadedPart) types.CompletedPart {
				return types.CompletedPart{
					PartNumber: aws.Int32(part.PartNumber),
					ETag:       aws.String(part.ETag),
				}
			}),
		},
	})
	return errors.Wrap(err, "failed to complete multipart upload")
}

func (repo *AwsS3Repository) AbortMultipartUpload(ctx context.Context, uploadId, fileKey string) error {
	_, err := repo.s3Client.AbortMultipartUpload(ctx, &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(repo.bucketName),
		Key:      aws.String(fileKey),
		UploadId: aws.String(uploadId),
	})
	return errors.Wrap(err, "failed to abort multipart upload")
}
