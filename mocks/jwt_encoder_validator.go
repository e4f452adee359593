package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/docflow/docflow-backend/models"
)

type JwtEncoderValidator struct {
	mock.Mock
}

func (m *JwtEncoderValidator) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := m.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

func (m *JwtEncoderValidator) ValidateToken(tokenString string) (models.Credentials, error) {
	args := m.Called(tokenString)
	return args.Get(0).(models.Credentials), args.Error(1)
}
