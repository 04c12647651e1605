package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	passwordHash string
	roles        Roles
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(username Username, passwordHash string, roles Roles) *User {
	if len(roles) == 0 {
		roles = Roles{RoleUser}
	}
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		roles:        roles,
	}
}

func ReconstructUser(id uuid.UUID, username Username, passwordHash string, roles Roles, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		roles:        roles,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Roles() Roles         { return u.roles }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
