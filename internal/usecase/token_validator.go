package usecase

import (
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, user.Roles, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, user.Roles, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, nil, err
	}

	id, err := claims.UserID()
	if err != nil {
		return uuid.Nil, nil, err
	}

	roles, err := user.NewRoles(claims.Roles)
	if err != nil {
		return uuid.Nil, nil, err
	}

	return id, roles, nil
}
