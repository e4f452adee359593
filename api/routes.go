package api

import (
	"github.com/gin-gonic/gin"

	"github.com/docflow/docflow-backend/usecases"
)

func addRoutes(r *gin.Engine, auth Authentication, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe)
	r.GET("/health", handleLivenessProbe)
	r.POST("/auth/register", handleRegister(uc))
	r.POST("/auth/login", handleLogin(uc))

	router := r.Use(auth.Middleware)

	router.GET("/documents", handleListDocuments(uc))
	router.POST("/documents", handleCreateDocument(uc))
	router.PATCH("/documents/:document_id", handleUpdateDocumentStatus(uc))

	router.POST("/documents/presign", handleGeneratePresignedUpload(uc))
	router.POST("/documents/multipart/initiate", handleInitiateMultipartUpload(uc))
	router.POST("/documents/multipart/presign-part", handlePresignMultipartPart(uc))
	router.POST("/documents/multipart/complete", handleCompleteMultipartUpload(uc))
	router.POST("/documents/multipart/abort", handleAbortMultipartUpload(uc))

	router.GET("/auditlogs", handleListAuditLogs(uc))
}
