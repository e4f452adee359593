package dbmodels

import (
	"fmt"
	"time"

	"github.com/docflow/docflow-backend/models"
	"github.com/docflow/docflow-backend/utils"
)

// DbUser is one of the two rows a user is stored under: keyed by email for
// login, and by id for author resolution.
type DbUser struct {
	Pk           string    `db:"pk"`
	Sk           string    `db:"sk"`
	Id           string    `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = utils.ColumnList[DbUser]()

func AdaptUser(db DbUser) (models.User, error) {
	role, err := models.RoleFrom(db.Role)
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		Id:           db.Id,
		Name:         db.Name,
		Email:        db.Email,
		PasswordHash: db.PasswordHash,
		Role:         role,
		CreatedAt:    db.CreatedAt,
	}, nil
}

const UserPartitionKey = "USER"

func UserEmailSortKey(email string) string {
	return fmt.Sprintf("EMAIL#%s", email)
}

func UserIdSortKey(userId string) string {
	return fmt.Sprintf("ID#%s", userId)
}
