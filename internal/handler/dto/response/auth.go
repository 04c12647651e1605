package response

import (
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/usecase/commands"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Roles    []string  `json:"roles"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func FromUser(u *user.User) *UserResponse {
	return &UserResponse{
		ID:       u.ID(),
		Username: u.Username().Value(),
		Roles:    u.Roles().Strings(),
	}
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		AccessToken: r.AccessToken,
		User: UserResponse{
			ID:       r.UserID,
			Username: r.Username,
			Roles:    r.Roles,
		},
	}
}
