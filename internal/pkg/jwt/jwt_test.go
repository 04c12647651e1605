//go:build unit

package jwt

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/user"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := NewService("jwt-secret", time.Hour)
	id := uuid.New()

	token, err := svc.GenerateToken(id, "guest01", user.Roles{user.RoleUser, user.RoleAdmin})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, "guest01", claims.Username)
	assert.Equal(t, []string{"user", "admin"}, claims.Roles)
	assert.Equal(t, issuer, claims.Issuer)
	assert.NotEmpty(t, claims.ID)
}

func TestService_Rejects(t *testing.T) {
	svc := NewService("jwt-secret", time.Hour)
	id := uuid.New()

	expired := NewService("jwt-secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expiredToken, err := expired.GenerateToken(id, "guest01", user.Roles{user.RoleUser})
	require.NoError(t, err)

	foreign, err := NewService("other-secret", time.Hour).GenerateToken(id, "guest01", user.Roles{user.RoleUser})
	require.NoError(t, err)

	sign := func(method gojwt.SigningMethod, key any, claims *Claims) string {
		s, err := gojwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	future := gojwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := []struct {
		name  string
		token string
		want  error
	}{
		{"expired", expiredToken, ErrExpiredToken},
		{"foreign key", foreign, ErrInvalidToken},
		{"garbage", "a.b.c", ErrInvalidToken},
		{"other algorithm", sign(gojwt.SigningMethodHS512, []byte("jwt-secret"), &Claims{
			RegisteredClaims: gojwt.RegisteredClaims{Issuer: issuer, Subject: id.String(), ExpiresAt: future},
		}), ErrInvalidToken},
		{"wrong issuer", sign(gojwt.SigningMethodHS256, []byte("jwt-secret"), &Claims{
			RegisteredClaims: gojwt.RegisteredClaims{Issuer: "elsewhere", Subject: id.String(), ExpiresAt: future},
		}), ErrInvalidToken},
		{"no expiry", sign(gojwt.SigningMethodHS256, []byte("jwt-secret"), &Claims{
			RegisteredClaims: gojwt.RegisteredClaims{Issuer: issuer, Subject: id.String()},
		}), ErrInvalidToken},
		{"subject not a uuid", sign(gojwt.SigningMethodHS256, []byte("jwt-secret"), &Claims{
			RegisteredClaims: gojwt.RegisteredClaims{Issuer: issuer, Subject: "guest01", ExpiresAt: future},
		}), ErrInvalidToken},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.ValidateToken(c.token)
			assert.ErrorIs(t, err, c.want)
		})
	}
}
