package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

type mockTokenValidator struct {
	mock.Mock
}

func (m *mockTokenValidator) ValidateToken(tokenString string) (models.Credentials, error) {
	args := m.Called(tokenString)
	return args.Get(0).(models.Credentials), args.Error(1)
}

func TestParseAuthorizationBearerHeader(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Bearer some.jwt.token")

		token, err := ParseAuthorizationBearerHeader(header)
		assert.NoError(t, err)
		assert.Equal(t, "some.jwt.token", token)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := ParseAuthorizationBearerHeader(http.Header{})
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("missing Bearer prefix", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "some.jwt.token")

		_, err := ParseAuthorizationBearerHeader(header)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})

	t.Run("empty token", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", "Bearer   ")

		_, err := ParseAuthorizationBearerHeader(header)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}

func TestAuthentication_Middleware(t *testing.T) {
	creds := models.Credentials{
		UserId: "user-1",
		Role:   models.RoleApprover,
		Name:   "Grace",
		Email:  "grace@example.com",
	}

	newRouter := func(auth Authentication, captured *models.Credentials) *gin.Engine {
		gin.SetMode(gin.TestMode)
		router := gin.New()
		router.GET("/documents", auth.Middleware, func(c *gin.Context) {
			*captured = utils.CredentialsFromCtx(c.Request.Context())
			c.Status(http.StatusOK)
		})
		return router
	}

	t.Run("stores credentials in the request context", func(t *testing.T) {
		validator := new(mockTokenValidator)
		validator.On("ValidateToken", "some.jwt.token").Return(creds, nil)

		var captured models.Credentials
		router := newRouter(NewAuthentication(validator), &captured)

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set("Authorization", "Bearer some.jwt.token")
		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusOK, r.Code)
		assert.Equal(t, creds, captured)
		validator.AssertExpectations(t)
	})

	t.Run("missing header aborts with 401", func(t *testing.T) {
		validator := new(mockTokenValidator)

		var captured models.Credentials
		router := newRouter(NewAuthentication(validator), &captured)

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.Equal(t, models.Credentials{}, captured)
		validator.AssertNotCalled(t, "ValidateToken", mock.Anything)
	})

	t.Run("invalid token aborts with 401", func(t *testing.T) {
		validator := new(mockTokenValidator)
		validator.On("ValidateToken", "expired.jwt.token").
			Return(models.Credentials{}, assert.AnError)

		var captured models.Credentials
		router := newRouter(NewAuthentication(validator), &captured)

		req := httptest.NewRequest(http.MethodGet, "/documents", nil)
		req.Header.Set("Authorization", "Bearer expired.jwt.token")
		r := httptest.NewRecorder()
		router.ServeHTTP(r, req)

		assert.Equal(t, http.StatusUnauthorized, r.Code)
		assert.Equal(t, models.Credentials{}, captured)
		validator.AssertExpectations(t)
	})
}
