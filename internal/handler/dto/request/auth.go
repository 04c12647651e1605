package request

import (
	"hotel-reservation/internal/domain/user"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// ToDomain enforces the username format and password strength.
func (r *RegisterRequest) ToDomain() (user.Username, user.Password, error) {
	name, err := user.NewUsername(r.Username)
	if err != nil {
		return user.Username{}, user.Password{}, err
	}
	pw, err := user.NewPassword(r.Password)
	if err != nil {
		return user.Username{}, user.Password{}, err
	}
	return name, pw, nil
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToDomain() (user.Credentials, error) {
	return user.NewCredentials(r.Username, r.Password)
}
