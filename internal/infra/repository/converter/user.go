package converter

import (
	"hotel-reservation/internal/domain/user"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/pgconv"
)

func UserToInfra(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
		Roles:        u.Roles().Strings(),
	}
}

func UserFromInfra(row sqlc.Users) (*user.User, error) {
	name, err := user.NewUsername(row.Username)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s has invalid username", row.ID)
	}
	roles, err := user.NewRoles(row.Roles)
	if err != nil {
		return nil, errs.Wrapf(err, "stored user %s has invalid roles", row.ID)
	}
	return user.ReconstructUser(
		row.ID,
		name,
		row.PasswordHash,
		roles,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
