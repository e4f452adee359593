package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type EmailRepository struct {
	mock.Mock
}

func (m *EmailRepository) SendEmail(ctx context.Context, toEmail, subject, body string) error {
	args := m.Called(ctx, toEmail, subject, body)
	return args.Error(0)
}
