package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/dto"
	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/usecases"
	"github.com/docflow/docflow-backend/utils"
)

func handleListDocuments(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		var statusFilter *models.DocumentStatus
		if raw, ok := c.GetQuery("status"); ok {
			status, err := models.DocumentStatusFrom(raw)
			if presentError(ctx, c, err) {
				return
			}
			statusFilter = &status
		}

		documentUsecase := uc.NewDocumentUsecase()
		documents, err := documentUsecase.ListDocuments(ctx, creds, statusFilter)
		if presentError(ctx, c, err) {
			return
		}

		uploadUsecase := uc.NewUploadUsecase()
		result := make([]dto.Document, 0, len(documents))
		for _, document := range documents {
			docUrl, err := uploadUsecase.GeneratePresignedDownload(ctx,
				dto.FileKeyFromBlobPath(document.BlobPath))
			if presentError(ctx, c, err) {
				return
			}
			result = append(result, dto.AdaptDocumentWithUrlDto(document, docUrl))
		}

		presentSuccess(c, http.StatusOK, result, "Documents fetched successfully")
	}
}

func handleCreateDocument(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		var body dto.CreateDocumentBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		usecase := uc.NewDocumentUsecase()
		document, err := usecase.CreateDocument(ctx, creds, models.CreateDocumentInput{
			DocumentId: body.DocumentId,
			FileKey:    body.FileKey,
		})
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusCreated,
			dto.AdaptDocumentDto(document), "Document created successfully")
	}
}

func handleUpdateDocumentStatus(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)
		documentId := c.Param("document_id")

		var body dto.UpdateDocumentStatusBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(ctx, c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		newStatus, err := models.DocumentStatusFrom(body.Status)
		if presentError(ctx, c, err) {
			return
		}

		usecase := uc.NewDocumentUsecase()
		document, err := usecase.UpdateDocumentStatus(ctx, creds, models.UpdateDocumentStatusInput{
			DocumentId: documentId,
			NewStatus:  newStatus,
			Comment:    body.Comment,
		})
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK,
			dto.AdaptDocumentDto(document), "status updated successfully")
	}
}
