package repositories

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/cockroachdb/errors"

	"github.com/docflow/docflow-backend/utils"
)

// EmailRepository is the notifier capability: given an address, a subject and
// a body, send an email. Delivery is best-effort; the caller decides what a
// failure means.
type EmailRepository interface {
	SendEmail(ctx context.Context, toEmail, subject, body string) error
}

type SesEmailRepository struct {
	sesClient *sesv2.Client
	fromEmail string
}

func NewSesClient() *sesv2.Client {
	conf, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		panic(fmt.Errorf("fail to load AWS config: %w", err))
	}

	return sesv2.NewFromConfig(conf)
}

func NewSesEmailRepository(sesClient *sesv2.Client, fromEmail string) *SesEmailRepository {
	return &SesEmailRepository{
		sesClient: sesClient,
		fromEmail: fromEmail,
	}
}

func (repo *SesEmailRepository) SendEmail(ctx context.Context, toEmail, subject, body string) error {
	output, err := repo.sesClient.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(repo.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Text: &types.Content{Data: aws.String(body)},
				},
			},
		},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to send email to %s", toEmail)
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "email sent",
		"to", toEmail, "message_id", aws.ToString(output.MessageId))
	return nil
}
