package api

import "github.com/gin-gonic/gin"

// Success responses all share the same envelope. Data may be nil for
// operations that only acknowledge.
func presentSuccess(c *gin.Context, statusCode int, data any, message string) {
	body := gin.H{
		"status": true,
		"data":   data,
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(statusCode, body)
}
