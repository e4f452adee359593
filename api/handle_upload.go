package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/dto"
	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/usecases"
)

func handleGeneratePresignedUpload(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.PresignBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewUploadUsecase()
		upload, err := usecase.GeneratePresignedUpload(ctx, body.Filename, body.ContentType)
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK,
			dto.AdaptPresignedUploadDto(upload), "Presigned URL generated successfully")
	}
}

func handleInitiateMultipartUpload(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.MultipartInitiateBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewUploadUsecase()
		upload, err := usecase.InitiateMultipartUpload(ctx, body.Filename, body.ContentType)
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK,
			dto.AdaptMultipartUploadDto(upload), "Multipart upload initiated")
	}
}

func handlePresignMultipartPart(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.MultipartPresignPartBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewUploadUsecase()
		uploadUrl, err := usecase.GeneratePresignedPartUrl(ctx, body.UploadId, body.FileKey, body.PartNumber)
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK,
			gin.H{"upload_url": uploadUrl}, "Presigned part URL generated")
	}
}

func handleCompleteMultipartUpload(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.MultipartCompleteBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewUploadUsecase()
		err := usecase.CompleteMultipartUpload(ctx, body.UploadId, body.FileKey,
			dto.AdaptUploadedParts(body.Parts))
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK, gin.H{}, "Multipart upload completed successfully")
	}
}

func handleAbortMultipartUpload(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var body dto.MultipartAbortBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewUploadUsecase()
		err := usecase.AbortMultipartUpload(ctx, body.UploadId, body.FileKey)
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK, gin.H{}, "Multipart upload aborted")
	}
}
