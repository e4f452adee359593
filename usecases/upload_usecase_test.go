package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/docflow/docflow-backend/mocks"
	"github.com/docflow/docflow-backend/models"
)

type UploadUsecaseTestSuite struct {
	suite.Suite
	blobRepository *mocks.BlobRepository
}

func (suite *UploadUsecaseTestSuite) SetupTest() {
	suite.blobRepository = new(mocks.BlobRepository)
}

func (suite *UploadUsecaseTestSuite) makeUsecase() UploadUsecase {
	return UploadUsecase{blobRepository: suite.blobRepository}
}

func (suite *UploadUsecaseTestSuite) TestGeneratePresignedUpload() {
	ctx := context.Background()

	suite.blobRepository.On("GeneratePresignedPutUrl", ctx,
		mock.MatchedBy(func(fileKey string) bool {
			return strings.HasPrefix(fileKey, "documents/") && strings.HasSuffix(fileKey, "/report.pdf")
		}), "application/pdf").
		Return("https://bucket.example.com/put", nil)

	upload, err := suite.makeUsecase().GeneratePresignedUpload(ctx, "report.pdf", "application/pdf")

	suite.NoError(err)
	suite.NotEmpty(upload.DocumentId)
	suite.Equal("https://bucket.example.com/put", upload.UploadUrl)
	// the object key embeds the freshly minted document id
	suite.Equal("documents/"+upload.DocumentId+"/report.pdf", upload.FileKey)
}

func (suite *UploadUsecaseTestSuite) TestInitiateMultipartUpload() {
	ctx := context.Background()

	suite.blobRepository.On("InitiateMultipartUpload", ctx, mock.Anything, "video/mp4").
		Return("upload-123", nil)

	upload, err := suite.makeUsecase().InitiateMultipartUpload(ctx, "large.mp4", "video/mp4")

	suite.NoError(err)
	suite.Equal("upload-123", upload.UploadId)
	suite.Equal("documents/"+upload.DocumentId+"/large.mp4", upload.FileKey)
}

func (suite *UploadUsecaseTestSuite) TestCompleteMultipartUpload() {
	ctx := context.Background()
	parts := []models.UploadedPart{{PartNumber: 1, ETag: "etag-1"}, {PartNumber: 2, ETag: "etag-2"}}

	suite.blobRepository.On("CompleteMultipartUpload", ctx, "upload-123", "documents/doc-1/large.mp4", parts).
		Return(nil)

	err := suite.makeUsecase().CompleteMultipartUpload(ctx, "upload-123", "documents/doc-1/large.mp4", parts)

	suite.NoError(err)
	suite.blobRepository.AssertExpectations(suite.T())
}

func TestUploadUsecase(t *testing.T) {
	suite.Run(t, new(UploadUsecaseTestSuite))
}
