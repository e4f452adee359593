package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories"
	"github.com/docflow/docflow-backend/utils"
)

type jwtEncoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type AuthUsecase struct {
	executorFactory executorFactory
	userRepository  repositories.UserRepository
	jwtEncoder      jwtEncoder
	tokenLifetime   time.Duration
}

// Register creates a new AUTHOR user. Approvers are provisioned out-of-band;
// no self-service approver signup is exposed.
func (usecase AuthUsecase) Register(ctx context.Context, input models.CreateUser) (models.User, error) {
	if err := models.ValidatePassword(input.Password); err != nil {
		return models.User{}, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, errors.Wrap(err, "failed to process password")
	}

	user := models.User{
		Id:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleAuthor,
		CreatedAt:    time.Now().UTC(),
	}

	err = usecase.executorFactory.Transaction(ctx, func(tx repositories.Transaction) error {
		return usecase.userRepository.CreateUser(ctx, tx, user)
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Login verifies the credentials and issues a signed session token. Lookup
// failure and password mismatch are indistinguishable to the caller.
func (usecase AuthUsecase) Login(ctx context.Context, email, password string) (string, models.User, error) {
	user, err := usecase.userRepository.UserByEmail(ctx, usecase.executorFactory.NewExecutor(), email)
	if err != nil {
		if errors.Is(err, models.NotFoundError) {
			return "", models.User{}, errors.WithStack(models.ErrInvalidCredentials)
		}
		return "", models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		utils.LoggerFromContext(ctx).InfoContext(ctx, "invalid password attempt", "email", email)
		return "", models.User{}, errors.WithStack(models.ErrInvalidCredentials)
	}

	token, err := usecase.jwtEncoder.EncodeToken(time.Now().Add(usecase.tokenLifetime), models.Credentials{
		UserId: user.Id,
		Role:   user.Role,
		Name:   user.Name,
		Email:  user.Email,
	})
	if err != nil {
		return "", models.User{}, errors.Wrap(err, "failed to generate token")
	}

	return token, user, nil
}
