package reservation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrEmptyStatus   = errors.New("status is required")
	ErrStatusTooLong = errors.New("status must be at most 50 characters")
)

const maxStatusLength = 50

// Status is a free-text label; only Archived has meaning to the system.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusArchived Status = "Archived"
)

func NewStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrEmptyStatus
	}
	if utf8.RuneCountInString(s) > maxStatusLength {
		return "", ErrStatusTooLong
	}
	return Status(s), nil
}

func (s Status) String() string {
	return string(s)
}
