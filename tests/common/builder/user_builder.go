//go:build unit || e2e

package builder

import (
	"time"

	"hotel-reservation/internal/domain/user"
	reqdto "hotel-reservation/internal/handler/dto/request"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Password     string
	PasswordHash string
	Roles        []string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "guest01",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Roles:        []string{"user"},
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}

	roles, err := user.NewRoles(u.Roles)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return user.ReconstructUser(u.ID, username, u.PasswordHash, roles, now, now), nil
}

func (u *UserBuilder) BuildInfra() sqlc.Users {
	now := time.Now()
	return sqlc.Users{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Roles:        u.Roles,
		CreatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: now, Valid: true},
	}
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:       u.ID,
		Username: u.Username,
		Roles:    u.Roles,
	}
}

func (u *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Username: u.Username,
		Password: u.Password,
	}
}

func (u *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Username: u.Username,
		Password: u.Password,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithPassword(password string) *UserBuilder {
	u.Password = password
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Roles = []string{"user", "admin"}
	return u
}
