package consumers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/docflow/docflow-backend/mocks"
	"github.com/docflow/docflow-backend/models"
)

type NotificationWorkerTestSuite struct {
	suite.Suite
	emailRepository *mocks.EmailRepository
}

func (suite *NotificationWorkerTestSuite) SetupTest() {
	suite.emailRepository = new(mocks.EmailRepository)
}

func (suite *NotificationWorkerTestSuite) jobFor(event models.WorkflowEvent) *river.Job[models.NotificationEventArgs] {
	envelope, err := json.Marshal(event)
	suite.Require().NoError(err)
	return &river.Job[models.NotificationEventArgs]{
		Args: models.NotificationEventArgs{Envelope: envelope},
	}
}

func (suite *NotificationWorkerTestSuite) statusUpdatedEvent(authorEmail string, comment *string) models.WorkflowEvent {
	return models.WorkflowEvent{
		EventId:   "evt-1",
		EventType: models.EventTypeDocumentStatusUpdated,
		Payload: models.WorkflowEventPayload{
			DocId:       "doc-1",
			AuthorId:    "author-1",
			OldStatus:   "PENDING",
			NewStatus:   "APPROVED",
			ApproverId:  "approver-1",
			AuthorEmail: authorEmail,
			Comment:     comment,
			Timestamp:   "2026-08-31T10:00:00Z",
		},
	}
}

func (suite *NotificationWorkerTestSuite) TestWork_SendsDecisionEmail() {
	ctx := context.Background()
	comment := "well structured"

	suite.emailRepository.On("SendEmail", ctx, "author@example.com",
		"Your document doc-1 was APPROVED",
		mock.MatchedBy(func(body string) bool {
			return len(body) > 0
		})).Return(nil)

	worker := NewNotificationWorker(suite.emailRepository)
	err := worker.Work(ctx, suite.jobFor(suite.statusUpdatedEvent("author@example.com", &comment)))

	suite.NoError(err)
	suite.emailRepository.AssertExpectations(suite.T())
}

func (suite *NotificationWorkerTestSuite) TestWork_BodyContainsCommentOrPlaceholder() {
	ctx := context.Background()
	comment := "well structured"
	var capturedBody string

	suite.emailRepository.On("SendEmail", ctx, mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			capturedBody = args.String(3)
		}).Return(nil)

	worker := NewNotificationWorker(suite.emailRepository)

	suite.NoError(worker.Work(ctx, suite.jobFor(suite.statusUpdatedEvent("author@example.com", &comment))))
	suite.Contains(capturedBody, "well structured")

	suite.NoError(worker.Work(ctx, suite.jobFor(suite.statusUpdatedEvent("author@example.com", nil))))
	suite.Contains(capturedBody, "No comment")
}

func (suite *NotificationWorkerTestSuite) TestWork_IgnoresCreationEvents() {
	ctx := context.Background()
	event := models.WorkflowEvent{
		EventId:   "evt-2",
		EventType: models.EventTypeDocumentCreated,
		Payload: models.WorkflowEventPayload{
			DocId:     "doc-1",
			AuthorId:  "author-1",
			Status:    "PENDING",
			Timestamp: "2026-08-31T10:00:00Z",
		},
	}

	worker := NewNotificationWorker(suite.emailRepository)
	err := worker.Work(ctx, suite.jobFor(event))

	suite.NoError(err)
	suite.emailRepository.AssertNotCalled(suite.T(), "SendEmail")
}

func (suite *NotificationWorkerTestSuite) TestWork_SkipsWithoutAuthorEmail() {
	ctx := context.Background()

	worker := NewNotificationWorker(suite.emailRepository)
	err := worker.Work(ctx, suite.jobFor(suite.statusUpdatedEvent("", nil)))

	suite.NoError(err)
	suite.emailRepository.AssertNotCalled(suite.T(), "SendEmail")
}

func (suite *NotificationWorkerTestSuite) TestWork_MalformedEnvelope() {
	ctx := context.Background()
	job := &river.Job[models.NotificationEventArgs]{
		Args: models.NotificationEventArgs{Envelope: []byte("not-a-json")},
	}

	worker := NewNotificationWorker(suite.emailRepository)
	err := worker.Work(ctx, job)

	suite.ErrorIs(err, models.ErrMalformedEventEnvelope)
}

func TestNotificationWorker(t *testing.T) {
	suite.Run(t, new(NotificationWorkerTestSuite))
}
