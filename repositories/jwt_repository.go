package repositories

import (
	"crypto/rsa"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v4"

	"github.com/docflow/docflow-backend/models"
)

type JwtRepository struct {
	jwtSigningPrivateKey rsa.PrivateKey
}

// We add jwt.RegisteredClaims as an embedded type, to provide fields like expiry time
type Claims struct {
	UserId string `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

var ValidationAlgo = jwt.SigningMethodRS256

func NewJwtRepository(key *rsa.PrivateKey) *JwtRepository {
	return &JwtRepository{
		jwtSigningPrivateKey: *key,
	}
}

func (repo *JwtRepository) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	claims := &Claims{
		UserId: creds.UserId,
		Role:   string(creds.Role),
		Name:   creds.Name,
		Email:  creds.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			Issuer:    "docflow",
		},
	}

	token := jwt.NewWithClaims(ValidationAlgo, claims)
	return token.SignedString(&repo.jwtSigningPrivateKey)
}

func (repo *JwtRepository) ValidateToken(tokenString string) (models.Credentials, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		method, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok || method != ValidationAlgo {
			return nil, errors.Wrapf(models.UnAuthorizedError,
				"unexpected signing method: %v", token.Header["alg"])
		}
		return &repo.jwtSigningPrivateKey.PublicKey, nil
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, keyFunc)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Credentials{}, errors.WithStack(models.ErrTokenExpired)
		}
		return models.Credentials{}, errors.Join(
			models.UnAuthorizedError,
			errors.Wrap(err, "error parsing jwt token claims"),
		)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid session token")
	}

	role, err := models.RoleFrom(claims.Role)
	if err != nil {
		return models.Credentials{}, errors.Wrap(models.UnAuthorizedError, "invalid role in token")
	}

	return models.Credentials{
		UserId: claims.UserId,
		Role:   role,
		Name:   claims.Name,
		Email:  claims.Email,
	}, nil
}
