package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password is empty")
	ErrTooLong  = errors.New("password exceeds 72 bytes")
	ErrMismatch = errors.New("password does not match")
)

// bcrypt ignores everything past this many bytes.
const maxBytes = 72

var cost = bcrypt.DefaultCost

func Hash(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmpty
	case len(plain) > maxBytes:
		return "", ErrTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify returns ErrMismatch for a wrong password and the bcrypt error for a malformed hash.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
