//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"
	"hotel-reservation/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReservationWriteQueries struct {
	mock.Mock
}

func (m *MockReservationWriteQueries) CreateReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateReservationParams) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) GetReservationByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Reservations, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) ListReservationsByRoom(ctx context.Context, db sqlc.DBTX, roomID uuid.UUID) ([]sqlc.Reservations, error) {
	args := m.Called(ctx, db, roomID)
	return args.Get(0).([]sqlc.Reservations), args.Error(1)
}

func (m *MockReservationWriteQueries) ExistsOverlappingReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsOverlappingReservationParams) (bool, error) {
	args := m.Called(ctx, db, arg)
	return args.Bool(0), args.Error(1)
}

func (m *MockReservationWriteQueries) ListExpiredReservationIDs(ctx context.Context, db sqlc.DBTX, endDate pgtype.Date) ([]uuid.UUID, error) {
	args := m.Called(ctx, db, endDate)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationDates(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationDatesParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) UpdateReservationStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateReservationStatusParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationWriteQueries) DeleteReservation(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(int64), args.Error(1)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, start, end time.Time) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(start, end)
	require.NoError(t, err)
	return r
}

func TestReservationRepository_Create(t *testing.T) {
	dates := mustRange(t, date(2025, 6, 10), date(2025, 6, 15))
	res, err := reservation.NewReservation(uuid.New(), uuid.New(), dates, reservation.StatusPending, date(2025, 6, 1))
	require.NoError(t, err)

	tests := []struct {
		name     string
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "exclusion violation", mockErr: &pgconn.PgError{Code: "23P01", ConstraintName: "reservations_no_overlap"}, wantKind: infra.KindConflict},
		{name: "unique start date", mockErr: &pgconn.PgError{Code: "23505", ConstraintName: "reservations_room_start_key"}, wantKind: infra.KindDuplicateKey},
		{name: "missing room", mockErr: &pgconn.PgError{Code: "23503", ConstraintName: "reservations_room_id_fkey"}, wantKind: infra.KindForeignKeyViolated},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			q.On("CreateReservation", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateReservationParams) bool {
				return p.ID == res.ID() &&
					pgconv.DateFromPgtype(p.StartDate).Equal(dates.Start()) &&
					pgconv.DateFromPgtype(p.EndDate).Equal(dates.End()) &&
					p.Status == "Pending"
			})).Return(sqlc.Reservations{}, tt.mockErr)

			err := NewReservationRepository(q).Create(context.Background(), nil, res)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
			} else {
				assert.NoError(t, err)
			}
			q.AssertExpectations(t)
		})
	}
}

func TestReservationRepository_FindByIDForUpdate(t *testing.T) {
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationByIDForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Reservations{
			ID:        id,
			RoomID:    uuid.New(),
			UserID:    uuid.New(),
			StartDate: pgconv.DateToPgtype(date(2025, 1, 1)),
			EndDate:   pgconv.DateToPgtype(date(2025, 1, 3)),
			AddedDate: pgconv.DateToPgtype(date(2024, 12, 1)),
			Status:    "Confirmed",
		}, nil)

		got, err := NewReservationRepository(q).FindByIDForUpdate(context.Background(), nil, id)

		require.NoError(t, err)
		assert.Equal(t, id, got.ID())
		assert.Equal(t, 2, got.Dates().Nights())
		assert.Equal(t, reservation.Status("Confirmed"), got.Status())
	})

	t.Run("not found", func(t *testing.T) {
		q := new(MockReservationWriteQueries)
		q.On("GetReservationByIDForUpdate", mock.Anything, mock.Anything, id).Return(sqlc.Reservations{}, pgx.ErrNoRows)

		_, err := NewReservationRepository(q).FindByIDForUpdate(context.Background(), nil, id)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestReservationRepository_ExistsOverlapping(t *testing.T) {
	roomID := uuid.New()
	dates := mustRange(t, date(2025, 3, 1), date(2025, 3, 5))

	q := new(MockReservationWriteQueries)
	q.On("ExistsOverlappingReservation", mock.Anything, mock.Anything, sqlc.ExistsOverlappingReservationParams{
		RoomID:    roomID,
		EndDate:   pgconv.DateToPgtype(dates.End()),
		StartDate: pgconv.DateToPgtype(dates.Start()),
	}).Return(true, nil)

	exists, err := NewReservationRepository(q).ExistsOverlapping(context.Background(), nil, roomID, dates)

	require.NoError(t, err)
	assert.True(t, exists)
	q.AssertExpectations(t)
}

func TestReservationRepository_RowCountedWrites(t *testing.T) {
	dates := mustRange(t, date(2025, 3, 1), date(2025, 3, 5))
	res, err := reservation.NewReservation(uuid.New(), uuid.New(), dates, reservation.StatusPending, date(2025, 2, 1))
	require.NoError(t, err)

	tests := []struct {
		name     string
		rows     int64
		wantKind infra.RepositoryErrorKind
	}{
		{name: "updated", rows: 1},
		{name: "missing row", rows: 0, wantKind: infra.KindNotFound},
	}

	for _, tt := range tests {
		t.Run("dates "+tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			q.On("UpdateReservationDates", mock.Anything, mock.Anything, mock.Anything).Return(tt.rows, nil)
			err := NewReservationRepository(q).UpdateDates(context.Background(), nil, res)
			assertKind(t, err, tt.wantKind)
		})
		t.Run("status "+tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			q.On("UpdateReservationStatus", mock.Anything, mock.Anything, sqlc.UpdateReservationStatusParams{ID: res.ID(), Status: "Pending"}).Return(tt.rows, nil)
			err := NewReservationRepository(q).UpdateStatus(context.Background(), nil, res)
			assertKind(t, err, tt.wantKind)
		})
		t.Run("delete "+tt.name, func(t *testing.T) {
			q := new(MockReservationWriteQueries)
			q.On("DeleteReservation", mock.Anything, mock.Anything, res.ID()).Return(tt.rows, nil)
			err := NewReservationRepository(q).Delete(context.Background(), nil, res.ID())
			assertKind(t, err, tt.wantKind)
		})
	}
}

func TestReservationRepository_ListExpiredIDs(t *testing.T) {
	today := date(2025, 7, 1)
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	q := new(MockReservationWriteQueries)
	q.On("ListExpiredReservationIDs", mock.Anything, mock.Anything, pgconv.DateToPgtype(today)).Return(ids, nil)

	got, err := NewReservationRepository(q).ListExpiredIDs(context.Background(), nil, today)

	require.NoError(t, err)
	assert.Equal(t, ids, got)
}

func assertKind(t *testing.T, err error, kind infra.RepositoryErrorKind) {
	t.Helper()
	if kind == "" {
		assert.NoError(t, err)
		return
	}
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, kind))
}
