//go:build unit || e2e

// Package memstore is an in-memory shared.UnitOfWork for usecase tests.
// Within runs against a copy of the state and commits it only when fn
// returns nil, so rollback behaves like the postgres implementation.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

// HistoryEntry is a stored history row with its denormalized snapshot.
type HistoryEntry struct {
	Record     reservation.HistoryRecord
	RoomNumber int
	RoomType   string
	Username   string
}

type state struct {
	users        map[uuid.UUID]user.User
	rooms        map[uuid.UUID]room.Room
	reservations map[uuid.UUID]reservation.Reservation
	history      []HistoryEntry
}

func (s *state) clone() *state {
	c := &state{
		users:        make(map[uuid.UUID]user.User, len(s.users)),
		rooms:        make(map[uuid.UUID]room.Room, len(s.rooms)),
		reservations: make(map[uuid.UUID]reservation.Reservation, len(s.reservations)),
		history:      append([]HistoryEntry(nil), s.history...),
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	for k, v := range s.rooms {
		c.rooms[k] = v
	}
	for k, v := range s.reservations {
		c.reservations[k] = v
	}
	return c
}

type Store struct {
	mu       sync.Mutex
	state    *state
	failures map[string]error
	now      func() time.Time

	// Commits counts successful Within calls.
	Commits int
}

var _ shared.UnitOfWork = (*Store)(nil)

func New() *Store {
	return &Store{
		state: &state{
			users:        map[uuid.UUID]user.User{},
			rooms:        map[uuid.UUID]room.Room{},
			reservations: map[uuid.UUID]reservation.Reservation{},
		},
		failures: map[string]error{},
		now:      time.Now,
	}
}

// FailOn makes the named operation (e.g. "history.append",
// "reservations.delete") return err until cleared with a nil err.
func (s *Store) FailOn(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *Store) fail(op string) error {
	if err, ok := s.failures[op]; ok {
		return infra.WrapRepoErr(op+" failed", err)
	}
	return nil
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	work := s.state.clone()
	if err := fn(ctx, &memTx{store: s, st: work}); err != nil {
		return err
	}
	s.state = work
	s.Commits++
	return nil
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

// CommandReads reads committed state outside any transaction.
func (s *Store) CommandReads() shared.CommandReads {
	return lockedReads{s: s}
}

// Seed helpers write directly to committed state.

func (s *Store) AddUser(u *user.User) *user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.users[u.ID()] = *u
	return u
}

func (s *Store) AddRoom(r *room.Room) *room.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.rooms[r.ID()] = *r
	return r
}

func (s *Store) AddReservation(r *reservation.Reservation) *reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.reservations[r.ID()] = *r
	return r
}

func (s *Store) Reservation(id uuid.UUID) (*reservation.Reservation, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.reservations[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

// Reservations returns committed reservations ordered by start date.
func (s *Store) Reservations() []*reservation.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedReservations(s.state.reservations, func(reservation.Reservation) bool { return true })
}

func (s *Store) Room(id uuid.UUID) (*room.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.state.rooms[id]
	if !ok {
		return nil, false
	}
	return &r, true
}

func (s *Store) Users() []*user.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*user.User, 0, len(s.state.users))
	for _, u := range s.state.users {
		u := u
		out = append(out, &u)
	}
	return out
}

func (s *Store) History() []HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]HistoryEntry(nil), s.state.history...)
}

func sortedReservations(m map[uuid.UUID]reservation.Reservation, keep func(reservation.Reservation) bool) []*reservation.Reservation {
	out := make([]*reservation.Reservation, 0, len(m))
	for _, r := range m {
		if !keep(r) {
			continue
		}
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Dates().Start().Equal(out[j].Dates().Start()) {
			return out[i].Dates().Start().Before(out[j].Dates().Start())
		}
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}
