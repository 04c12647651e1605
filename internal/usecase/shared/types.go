package shared

import "github.com/google/uuid"

// Minimal snapshots for command read operations
type UserSnapshot struct {
	ID       uuid.UUID
	Username string
	Roles    []string
}
