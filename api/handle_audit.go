package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/dto"
	"github.com/docflow/docflow-backend/pure_utils"
	"github.com/docflow/docflow-backend/usecases"
	"github.com/docflow/docflow-backend/utils"
)

func handleListAuditLogs(uc usecases.Usecases) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		usecase := uc.NewAuditUsecase()
		entries, err := usecase.ListAuditLogs(ctx, creds)
		if presentError(ctx, c, err) {
			return
		}

		presentSuccess(c, http.StatusOK,
			pure_utils.Map(entries, dto.AdaptAuditLogEntryDto),
			"audit logs fetched successfully")
	}
}
