//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/pkg/config"
	"hotel-reservation/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, username string, roles user.Roles) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(userID, username, roles)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, username string, roles user.Roles) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, -time.Minute)
	token, err := service.GenerateToken(userID, username, roles)
	require.NoError(t, err)
	return token
}
