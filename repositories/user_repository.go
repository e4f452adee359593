package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/repositories/dbmodels"
)

// UserRepository stores each user under two composite keys in one atomic
// write: (USER, EMAIL#<email>) for login and (USER, ID#<id>) for author
// resolution. A collision on either key means the user already exists.
type UserRepository interface {
	CreateUser(ctx context.Context, tx Transaction, user models.User) error
	UserByEmail(ctx context.Context, exec Executor, email string) (models.User, error)
	UserById(ctx context.Context, exec Executor, userId string) (*models.User, error)
}

type UserRepositoryPostgresql struct{}

func (repo UserRepositoryPostgresql) CreateUser(
	ctx context.Context,
	tx Transaction,
	user models.User,
) error {
	query := NewQueryBuilder().
		Insert(dbmodels.TABLE_USERS).
		Columns(dbmodels.SelectUserColumns...)
	for _, sk := range []string{
		dbmodels.UserEmailSortKey(user.Email),
		dbmodels.UserIdSortKey(user.Id),
	} {
		query = query.Values(
			dbmodels.UserPartitionKey,
			sk,
			user.Id,
			user.Name,
			user.Email,
			user.PasswordHash,
			string(user.Role),
			user.CreatedAt,
		)
	}

	_, err := ExecBuilder(ctx, tx, query)
	if IsUniqueViolationError(err) {
		return errors.WithStack(models.ErrUserAlreadyExists)
	}
	return errors.Wrap(err, "failed to create user")
}

func (repo UserRepositoryPostgresql) UserByEmail(
	ctx context.Context,
	exec Executor,
	email string,
) (models.User, error) {
	user, err := SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{
				"pk": dbmodels.UserPartitionKey,
				"sk": dbmodels.UserEmailSortKey(email),
			}),
		dbmodels.AdaptUser,
	)
	if errors.Is(err, models.NotFoundError) {
		return models.User{}, errors.Wrapf(models.ErrUnknownUser, "email %s", email)
	}
	return user, err
}

func (repo UserRepositoryPostgresql) UserById(
	ctx context.Context,
	exec Executor,
	userId string,
) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{
				"pk": dbmodels.UserPartitionKey,
				"sk": dbmodels.UserIdSortKey(userId),
			}),
		dbmodels.AdaptUser,
	)
}
