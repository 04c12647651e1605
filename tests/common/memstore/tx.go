//go:build unit || e2e

package memstore

import (
	"context"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/usecase/shared"

	"github.com/google/uuid"
)

type memTx struct {
	store *Store
	st    *state
}

func (t *memTx) Reservations() shared.ReservationRepository { return reservationRepo{t} }
func (t *memTx) History() shared.HistoryRepository          { return historyRepo{t} }
func (t *memTx) Rooms() shared.RoomRepository               { return roomRepo{t} }
func (t *memTx) Users() shared.UserRepository               { return userRepo{t} }
func (t *memTx) Reads() shared.CommandReads                 { return stateReads{t.st} }
func (t *memTx) DB() sqlc.DBTX                              { return nil }

type reservationRepo struct{ t *memTx }

func (r reservationRepo) Create(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.t.store.fail("reservations.create"); err != nil {
		return err
	}
	st := r.t.st
	if _, ok := st.reservations[res.ID()]; ok {
		return infra.WrapRepoErr("reservation already exists", nil, infra.KindDuplicateKey)
	}
	if _, ok := st.rooms[res.RoomID()]; !ok {
		return infra.WrapRepoErr("room does not exist", nil, infra.KindForeignKeyViolated)
	}
	if _, ok := st.users[res.UserID()]; !ok {
		return infra.WrapRepoErr("user does not exist", nil, infra.KindForeignKeyViolated)
	}
	if r.overlaps(res) {
		return infra.WrapRepoErr("reservation overlaps", nil, infra.KindConflict)
	}
	st.reservations[res.ID()] = *res
	return nil
}

// overlaps mirrors the exclusion constraint on (room_id, daterange).
func (r reservationRepo) overlaps(res *reservation.Reservation) bool {
	for id, other := range r.t.st.reservations {
		if id == res.ID() || other.RoomID() != res.RoomID() {
			continue
		}
		if other.Dates().Overlaps(res.Dates()) {
			return true
		}
	}
	return false
}

func (r reservationRepo) FindByIDForUpdate(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*reservation.Reservation, error) {
	if err := r.t.store.fail("reservations.find"); err != nil {
		return nil, err
	}
	res, ok := r.t.st.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return &res, nil
}

func (r reservationRepo) FindByRoom(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID) ([]*reservation.Reservation, error) {
	return sortedReservations(r.t.st.reservations, func(res reservation.Reservation) bool {
		return res.RoomID() == roomID
	}), nil
}

func (r reservationRepo) ExistsOverlapping(_ context.Context, _ sqlc.DBTX, roomID uuid.UUID, dates reservation.DateRange) (bool, error) {
	if err := r.t.store.fail("reservations.overlap"); err != nil {
		return false, err
	}
	for _, res := range r.t.st.reservations {
		if res.RoomID() == roomID && res.Dates().Overlaps(dates) {
			return true, nil
		}
	}
	return false, nil
}

func (r reservationRepo) ListExpiredIDs(_ context.Context, _ sqlc.DBTX, today time.Time) ([]uuid.UUID, error) {
	if err := r.t.store.fail("reservations.expired"); err != nil {
		return nil, err
	}
	expired := sortedReservations(r.t.st.reservations, func(res reservation.Reservation) bool {
		return res.IsExpired(today)
	})
	ids := make([]uuid.UUID, 0, len(expired))
	for _, res := range expired {
		ids = append(ids, res.ID())
	}
	return ids, nil
}

func (r reservationRepo) UpdateDates(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.t.store.fail("reservations.update"); err != nil {
		return err
	}
	if _, ok := r.t.st.reservations[res.ID()]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	if r.overlaps(res) {
		return infra.WrapRepoErr("reservation overlaps", nil, infra.KindConflict)
	}
	r.t.st.reservations[res.ID()] = *res
	return nil
}

func (r reservationRepo) UpdateStatus(_ context.Context, _ sqlc.DBTX, res *reservation.Reservation) error {
	if err := r.t.store.fail("reservations.update"); err != nil {
		return err
	}
	stored, ok := r.t.st.reservations[res.ID()]
	if !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	_ = stored.ChangeStatus(res.Status())
	r.t.st.reservations[res.ID()] = stored
	return nil
}

func (r reservationRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if err := r.t.store.fail("reservations.delete"); err != nil {
		return err
	}
	if _, ok := r.t.st.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.t.st.reservations, id)
	return nil
}

type historyRepo struct{ t *memTx }

func (h historyRepo) Append(_ context.Context, _ sqlc.DBTX, rec *reservation.HistoryRecord) error {
	if err := h.t.store.fail("history.append"); err != nil {
		return err
	}
	entry := HistoryEntry{Record: *rec}
	if rm, ok := h.t.st.rooms[rec.RoomID()]; ok {
		entry.RoomNumber = rm.Number()
		entry.RoomType = rm.Type()
	}
	if u, ok := h.t.st.users[rec.UserID()]; ok {
		entry.Username = u.Username().Value()
	}
	h.t.st.history = append(h.t.st.history, entry)
	return nil
}

type roomRepo struct{ t *memTx }

func (r roomRepo) numberTaken(number int, self uuid.UUID) bool {
	for id, rm := range r.t.st.rooms {
		if id != self && rm.Number() == number {
			return true
		}
	}
	return false
}

func (r roomRepo) Create(_ context.Context, _ sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	if err := r.t.store.fail("rooms.create"); err != nil {
		return nil, err
	}
	if r.numberTaken(rm.Number(), rm.ID()) {
		return nil, infra.WrapRepoErr("room number taken", nil, infra.KindDuplicateKey)
	}
	now := r.t.store.now()
	stored := room.ReconstructRoom(rm.ID(), rm.Attributes(), now, now)
	r.t.st.rooms[rm.ID()] = *stored
	return stored, nil
}

func (r roomRepo) Update(_ context.Context, _ sqlc.DBTX, rm *room.Room) (*room.Room, error) {
	if err := r.t.store.fail("rooms.update"); err != nil {
		return nil, err
	}
	prev, ok := r.t.st.rooms[rm.ID()]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	if r.numberTaken(rm.Number(), rm.ID()) {
		return nil, infra.WrapRepoErr("room number taken", nil, infra.KindDuplicateKey)
	}
	stored := room.ReconstructRoom(rm.ID(), rm.Attributes(), prev.CreatedAt(), r.t.store.now())
	r.t.st.rooms[rm.ID()] = *stored
	return stored, nil
}

func (r roomRepo) Delete(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if err := r.t.store.fail("rooms.delete"); err != nil {
		return err
	}
	if _, ok := r.t.st.rooms[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	for _, res := range r.t.st.reservations {
		if res.RoomID() == id {
			return infra.WrapRepoErr("room still referenced", nil, infra.KindForeignKeyViolated)
		}
	}
	delete(r.t.st.rooms, id)
	return nil
}

func (r roomRepo) FindByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.t.st.rooms[id]
	if !ok {
		return nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return &rm, nil
}

func (r roomRepo) LockByID(_ context.Context, _ sqlc.DBTX, id uuid.UUID) error {
	if err := r.t.store.fail("rooms.lock"); err != nil {
		return err
	}
	if _, ok := r.t.st.rooms[id]; !ok {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r roomRepo) CountReservations(_ context.Context, _ sqlc.DBTX, id uuid.UUID) (int64, error) {
	var n int64
	for _, res := range r.t.st.reservations {
		if res.RoomID() == id {
			n++
		}
	}
	return n, nil
}

type userRepo struct{ t *memTx }

func (r userRepo) Create(_ context.Context, _ sqlc.DBTX, u *user.User) (*user.User, error) {
	if err := r.t.store.fail("users.create"); err != nil {
		return nil, err
	}
	for _, existing := range r.t.st.users {
		if existing.Username() == u.Username() {
			return nil, infra.WrapRepoErr("username taken", nil, infra.KindDuplicateKey)
		}
	}
	now := r.t.store.now()
	stored := user.ReconstructUser(u.ID(), u.Username(), u.PasswordHash(), u.Roles(), now, now)
	r.t.st.users[u.ID()] = *stored
	return stored, nil
}

func (r userRepo) FindByUsername(_ context.Context, _ sqlc.DBTX, username user.Username) (*user.User, error) {
	for _, u := range r.t.st.users {
		if u.Username() == username {
			return &u, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}
