package repository

import (
	"context"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/infra/repository/converter"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error)
	GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx sqlc.DBTX, u *user.User) (*user.User, error) {
	row, err := r.queries.CreateUser(ctx, tx, converter.UserToInfra(u))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	created, err := converter.UserFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return created, nil
}

// FindByUsername loads the user including its password hash.
func (r *UserRepository) FindByUsername(ctx context.Context, tx sqlc.DBTX, username user.Username) (*user.User, error) {
	row, err := r.queries.GetUserByUsername(ctx, tx, username.Value())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	u, err := converter.UserFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert user", err, infra.KindDBFailure)
	}
	return u, nil
}
