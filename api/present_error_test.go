package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/docflow/docflow-backend/models"
)

func TestPresentError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nil error renders nothing", func(t *testing.T) {
		r := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(r)

		assert.False(t, presentError(context.Background(), c, nil))
		assert.False(t, c.Writer.Written())
	})

	cases := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"bad parameter", errors.Wrap(models.BadParameterError, "bad payload"), http.StatusBadRequest},
		{"unauthorized", errors.Wrap(models.UnAuthorizedError, "missing token"), http.StatusUnauthorized},
		{"forbidden", models.ErrOnlyApproverAllowed, http.StatusForbidden},
		{"not found", models.ErrDocumentNotFound, http.StatusNotFound},
		{"conflict", models.ErrUserAlreadyExists, http.StatusConflict},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := httptest.NewRecorder()
			ginCtx, _ := gin.CreateTestContext(r)

			assert.True(t, presentError(context.Background(), ginCtx, c.err))
			assert.Equal(t, c.expectedStatus, r.Code)
			assert.Contains(t, r.Body.String(), `"success":false`)
			assert.Contains(t, r.Body.String(), c.err.Error())
		})
	}

	t.Run("unexpected errors are a 500 without detail", func(t *testing.T) {
		r := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(r)

		assert.True(t, presentError(context.Background(), c, errors.New("pool exhausted")))
		assert.Equal(t, http.StatusInternalServerError, r.Code)
		assert.NotContains(t, r.Body.String(), "pool exhausted")
		assert.Contains(t, r.Body.String(), "an unexpected error occurred")
	})
}
