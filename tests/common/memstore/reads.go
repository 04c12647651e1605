//go:build unit || e2e

package memstore

import (
	"context"

	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type stateReads struct{ st *state }

func (r stateReads) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	u, ok := r.st.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return &shared.UserSnapshot{ID: u.ID(), Username: u.Username().Value(), Roles: u.Roles().Strings()}, nil
}

type lockedReads struct{ s *Store }

func (r lockedReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return stateReads{r.s.state}.UserByID(ctx, id)
}
