package repositories

import (
	"crypto/rsa"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
)

type Repositories struct {
	ExecutorGetter      ExecutorGetter
	JwtRepository       *JwtRepository
	DocumentRepository  DocumentRepository
	UserRepository      UserRepository
	AuditLogRepository  AuditLogRepository
	BlobRepository      BlobRepository
	EmailRepository     EmailRepository
	TaskQueueRepository TaskQueueRepository
}

type Option func(*options)

type options struct {
	riverClient *river.Client[pgx.Tx]
	blob        BlobRepository
	email       EmailRepository
}

func WithRiverClient(client *river.Client[pgx.Tx]) Option {
	return func(o *options) {
		o.riverClient = client
	}
}

func WithBlobRepository(blob BlobRepository) Option {
	return func(o *options) {
		o.blob = blob
	}
}

func WithEmailRepository(email EmailRepository) Option {
	return func(o *options) {
		o.email = email
	}
}

func NewRepositories(
	pool *pgxpool.Pool,
	jwtSigningKey *rsa.PrivateKey,
	opts ...Option,
) Repositories {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	repositories := Repositories{
		ExecutorGetter:     NewExecutorGetter(pool),
		DocumentRepository: DocumentRepositoryPostgresql{},
		UserRepository:     UserRepositoryPostgresql{},
		AuditLogRepository: AuditLogRepositoryPostgresql{},
		BlobRepository:     o.blob,
		EmailRepository:    o.email,
	}
	if jwtSigningKey != nil {
		repositories.JwtRepository = NewJwtRepository(jwtSigningKey)
	}
	if o.riverClient != nil {
		repositories.TaskQueueRepository = NewTaskQueueRepository(o.riverClient)
	}
	return repositories
}
