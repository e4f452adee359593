package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/getsentry/sentry-go"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"

	"github.com/docflow/docflow-backend/api"
	"github.com/docflow/docflow-backend/infra"
	"github.com/docflow/docflow-backend/repositories"
	"github.com/docflow/docflow-backend/usecases"
	"github.com/docflow/docflow-backend/utils"
)

func RunServer() error {
	// This is where we read the environment variables and set up the configuration for the application.
	apiConfig := api.Configuration{
		Env:            utils.GetEnv("ENV", "development"),
		AppName:        "docflow-backend",
		Port:           utils.GetRequiredEnv[string]("PORT"),
		FrontendUrl:    utils.GetEnv("FRONTEND_URL", ""),
		DefaultTimeout: time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 10)) * time.Second,
	}
	pgConfig := infra.PgConfig{
		ConnectionString:   utils.GetEnv("PG_CONNECTION_STRING", ""),
		Database:           "docflow",
		Hostname:           utils.GetEnv("PG_HOSTNAME", ""),
		Password:           utils.GetEnv("PG_PASSWORD", ""),
		Port:               utils.GetEnv("PG_PORT", "5432"),
		User:               utils.GetEnv("PG_USER", ""),
		MaxPoolConnections: utils.GetEnv("PG_MAX_POOL_SIZE", infra.DEFAULT_MAX_CONNECTIONS),
		SslMode:            utils.GetEnv("PG_SSL_MODE", "prefer"),
	}
	awsConfig := infra.AwsConfig{
		DocumentBucketName: utils.GetRequiredEnv[string]("DOCUMENT_BUCKET_NAME"),
		EmailSender:        utils.GetEnv("EMAIL_SENDER", ""),
	}
	serverConfig := struct {
		jwtSigningKey string
		loggingFormat string
		sentryDsn     string
		tokenLifetime time.Duration
	}{
		jwtSigningKey: utils.GetRequiredEnv[string]("AUTHENTICATION_JWT_SIGNING_KEY"),
		loggingFormat: utils.GetEnv("LOGGING_FORMAT", "text"),
		sentryDsn:     utils.GetEnv("SENTRY_DSN", ""),
		tokenLifetime: time.Duration(utils.GetEnv("TOKEN_LIFETIME_MINUTE", 60)) * time.Minute,
	}

	logger := utils.NewLogger(serverConfig.loggingFormat)
	ctx := utils.StoreLoggerInContext(context.Background(), logger)
	jwtSigningKey := infra.MustParseSigningKey(serverConfig.jwtSigningKey)

	infra.SetupSentry(serverConfig.sentryDsn, apiConfig.Env)
	defer sentry.Flush(3 * time.Second)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConfig.GetConnectionString(),
		pgConfig.MaxPoolConnections)
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	// Insert-only river client: the server publishes workflow events, the
	// worker process consumes them.
	riverClient, err := river.NewClient(riverpgxv5.New(pool), &river.Config{})
	if err != nil {
		utils.LogAndReportSentryError(ctx, err)
		return err
	}

	repos := repositories.NewRepositories(
		pool,
		jwtSigningKey,
		repositories.WithRiverClient(riverClient),
		repositories.WithBlobRepository(
			repositories.NewAwsS3Repository(repositories.NewS3Client(), awsConfig.DocumentBucketName)),
	)

	uc := usecases.Usecases{
		Repositories: repos,
		Config: usecases.Configuration{
			TokenLifetime:      serverConfig.tokenLifetime,
			DocumentBucketName: awsConfig.DocumentBucketName,
		},
	}

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	auth := api.NewAuthentication(repos.JwtRepository)
	server := api.NewServer(router, apiConfig, uc, auth)

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			utils.LogAndReportSentryError(ctx, errors.Wrap(err, "Error while serving the app"))
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		utils.LogAndReportSentryError(ctx,
			errors.Wrap(err, "Error while shutting down the server"))
		return err
	}

	return nil
}
