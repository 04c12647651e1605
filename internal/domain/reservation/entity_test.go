//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/pkg/clock"
	"hotel-reservation/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReservation(t *testing.T) {
	userID, roomID := uuid.New(), uuid.New()
	dates := span(t, 10, 15)

	t.Run("basic success", func(t *testing.T) {
		res, err := reservation.NewReservation(userID, roomID, dates, reservation.StatusPending, d(1).Add(18*time.Hour))
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, res.ID())
		assert.Equal(t, userID, res.UserID())
		assert.Equal(t, roomID, res.RoomID())
		assert.Equal(t, dates, res.Dates())
		assert.Equal(t, d(1), res.AddedDate())
		assert.Equal(t, reservation.StatusPending, res.Status())
	})

	t.Run("zero dates NG", func(t *testing.T) {
		_, err := reservation.NewReservation(userID, roomID, reservation.DateRange{}, reservation.StatusPending, d(1))
		require.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("empty status NG", func(t *testing.T) {
		_, err := reservation.NewReservation(userID, roomID, dates, "", d(1))
		require.ErrorIs(t, err, reservation.ErrEmptyStatus)
	})
}

func TestReservation_Mutations(t *testing.T) {
	res := builder.NewReservationBuilder().BuildDomain()
	added := res.AddedDate()

	require.NoError(t, res.Reschedule(span(t, 20, 22)))
	assert.Equal(t, span(t, 20, 22), res.Dates())
	assert.Equal(t, added, res.AddedDate(), "rescheduling keeps the added date")
	require.ErrorIs(t, res.Reschedule(reservation.DateRange{}), reservation.ErrInvalidDateRange)

	require.NoError(t, res.ChangeStatus("Confirmed"))
	assert.Equal(t, reservation.Status("Confirmed"), res.Status())
	require.ErrorIs(t, res.ChangeStatus(""), reservation.ErrEmptyStatus)
	assert.Equal(t, span(t, 20, 22), res.Dates(), "status change leaves dates alone")
}

func TestReservation_ArchiveLifecycle(t *testing.T) {
	res := builder.NewReservationBuilder().
		WithDates("2025-03-10", "2025-03-15").
		WithStatus("Confirmed").
		BuildDomain()

	assert.False(t, res.IsExpired(d(14)))
	assert.False(t, res.IsExpired(d(15)))
	assert.True(t, res.IsExpired(d(16)))

	archivedAt := d(16).Add(time.Hour)
	rec := res.Archive(archivedAt)

	assert.NotEqual(t, res.ID(), rec.ID())
	assert.Equal(t, res.ID(), rec.ReservationID())
	assert.Equal(t, res.UserID(), rec.UserID())
	assert.Equal(t, res.RoomID(), rec.RoomID())
	assert.Equal(t, res.Dates(), rec.Dates())
	assert.Equal(t, res.AddedDate(), rec.AddedDate())
	assert.Equal(t, reservation.StatusArchived, rec.Status())
	assert.Equal(t, archivedAt, rec.ArchivedAt())
}

func TestFindConflict(t *testing.T) {
	roomID := uuid.New()
	first := reservation.ReconstructReservation(uuid.New(), uuid.New(), roomID, span(t, 10, 15), d(1), reservation.StatusPending, d(1), d(1))
	second := reservation.ReconstructReservation(uuid.New(), uuid.New(), roomID, span(t, 20, 25), d(1), reservation.StatusPending, d(1), d(1))
	existing := []*reservation.Reservation{first, nil, second}

	assert.Nil(t, reservation.FindConflict(span(t, 15, 20), existing, uuid.Nil), "back-to-back stays fit")
	assert.Equal(t, first, reservation.FindConflict(span(t, 14, 16), existing, uuid.Nil))
	assert.Equal(t, second, reservation.FindConflict(span(t, 18, 21), existing, uuid.Nil))

	assert.Nil(t, reservation.FindConflict(span(t, 11, 16), existing, first.ID()), "own reservation is ignored")
	assert.Equal(t, second, reservation.FindConflict(span(t, 11, 21), existing, first.ID()))
}

func TestFactory(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 2025-03-01 20:00 UTC is already 2025-03-02 in Tokyo
	clk := clock.NewMockClock(time.Date(2025, time.March, 1, 20, 0, 0, 0, time.UTC))
	f := reservation.NewFactory(clk, tokyo)

	assert.Equal(t, d(2), f.Today())

	res, err := f.CreateReservation(uuid.New(), uuid.New(), span(t, 10, 12), reservation.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, d(2), res.AddedDate())

	utc := reservation.NewFactory(clk, time.UTC)
	assert.Equal(t, d(1), utc.Today())
}
