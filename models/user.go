package models

import (
	"time"
	"unicode"

	"github.com/cockroachdb/errors"
)

type Role string

const (
	RoleAuthor   Role = "AUTHOR"
	RoleApprover Role = "APPROVER"
)

func RoleFrom(s string) (Role, error) {
	switch Role(s) {
	case RoleAuthor, RoleApprover:
		return Role(s), nil
	}
	return "", errors.Wrapf(BadParameterError, "unknown role %q", s)
}

type User struct {
	Id           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

type CreateUser struct {
	Name     string
	Email    string
	Password string
}

const passwordMinLength = 12

// ValidatePassword applies the registration password policy: at least 12
// characters, one uppercase letter, one lowercase letter, one digit and one
// special character.
func ValidatePassword(password string) error {
	if len(password) < passwordMinLength {
		return errors.Wrap(BadParameterError, "password must be at least 12 characters")
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	switch {
	case !hasDigit:
		return errors.Wrap(BadParameterError, "password must contain at least one digit")
	case !hasSpecial:
		return errors.Wrap(BadParameterError, "password must contain at least one special character")
	case !hasUpper:
		return errors.Wrap(BadParameterError, "password must contain at least one uppercase letter")
	case !hasLower:
		return errors.Wrap(BadParameterError, "password must contain at least one lowercase letter")
	}
	return nil
}
