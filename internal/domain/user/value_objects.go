package user

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidUsername = errors.New("username must be 3-50 characters of letters, digits, '.', '_' or '-'")
	ErrInvalidRole     = errors.New("invalid role")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._\-]{3,50}$`)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if !usernameRegex.MatchString(s) {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

func (u Username) String() string {
	return u.value
}

const minPasswordLength = 8

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if utf8.RuneCountInString(s) < minPasswordLength {
		return Password{}, ErrPasswordTooWeak
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	username Username
	password string
}

// NewCredentials does not enforce password strength; login must accept any stored password.
func NewCredentials(username, password string) (Credentials, error) {
	u, err := NewUsername(username)
	if err != nil {
		return Credentials{}, err
	}
	if password == "" {
		return Credentials{}, ErrPasswordTooWeak
	}
	return Credentials{username: u, password: password}, nil
}

func (c Credentials) Username() Username { return c.username }
func (c Credentials) Password() string   { return c.password }
