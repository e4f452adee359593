package usecases

import (
	"context"
	"time"

	"github.com/docflow/docflow-backend/repositories"
)

type Configuration struct {
	TokenLifetime      time.Duration
	DocumentBucketName string
}

type Usecases struct {
	Repositories repositories.Repositories
	Config       Configuration
}

// executorFactory hands out plain executors and transactions on the database.
type executorFactory interface {
	NewExecutor() repositories.Executor
	Transaction(ctx context.Context, fn func(tx repositories.Transaction) error) error
}

func (usecases Usecases) NewAuthUsecase() AuthUsecase {
	return AuthUsecase{
		executorFactory: usecases.Repositories.ExecutorGetter,
		userRepository:  usecases.Repositories.UserRepository,
		jwtEncoder:      usecases.Repositories.JwtRepository,
		tokenLifetime:   usecases.Config.TokenLifetime,
	}
}

func (usecases Usecases) NewDocumentUsecase() DocumentUsecase {
	return DocumentUsecase{
		executorFactory:     usecases.Repositories.ExecutorGetter,
		documentRepository:  usecases.Repositories.DocumentRepository,
		userRepository:      usecases.Repositories.UserRepository,
		taskQueueRepository: usecases.Repositories.TaskQueueRepository,
		bucketName:          usecases.Config.DocumentBucketName,
	}
}

func (usecases Usecases) NewAuditUsecase() AuditUsecase {
	return AuditUsecase{
		executorFactory:    usecases.Repositories.ExecutorGetter,
		auditLogRepository: usecases.Repositories.AuditLogRepository,
	}
}

func (usecases Usecases) NewUploadUsecase() UploadUsecase {
	return UploadUsecase{
		blobRepository: usecases.Repositories.BlobRepository,
	}
}
