//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hotel-reservation/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func span(t *testing.T, start, end int) reservation.DateRange {
	t.Helper()
	r, err := reservation.NewDateRange(d(start), d(end))
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	t.Run("start before end OK", func(t *testing.T) {
		r, err := reservation.NewDateRange(d(10), d(15))
		require.NoError(t, err)
		assert.Equal(t, d(10), r.Start())
		assert.Equal(t, d(15), r.End())
		assert.Equal(t, 5, r.Nights())
		assert.Equal(t, "[2025-03-10, 2025-03-15)", r.String())
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		r, err := reservation.NewDateRange(d(10).Add(15*time.Hour), d(11).Add(9*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, d(10), r.Start())
		assert.Equal(t, 1, r.Nights())
	})

	t.Run("same day NG", func(t *testing.T) {
		_, err := reservation.NewDateRange(d(10), d(10))
		require.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})

	t.Run("reversed NG", func(t *testing.T) {
		_, err := reservation.NewDateRange(d(15), d(10))
		require.ErrorIs(t, err, reservation.ErrInvalidDateRange)
	})
}

func TestParseDateRange(t *testing.T) {
	r, err := reservation.ParseDateRange("2025-03-10", "2025-03-12")
	require.NoError(t, err)
	assert.Equal(t, 2, r.Nights())

	_, err = reservation.ParseDateRange("2025-03-10", "12/03/2025")
	require.ErrorIs(t, err, reservation.ErrInvalidDate)

	_, err = reservation.ParseDateRange("2025-02-30", "2025-03-12")
	require.ErrorIs(t, err, reservation.ErrInvalidDate)

	_, err = reservation.ParseDateRange("2025-03-12", "2025-03-10")
	require.ErrorIs(t, err, reservation.ErrInvalidDateRange)
}

func TestDateRange_Overlaps(t *testing.T) {
	existing := span(t, 10, 15)

	cases := []struct {
		name       string
		start, end int
		want       bool
	}{
		{"ends on existing start", 5, 10, false},
		{"starts on existing end", 15, 20, false},
		{"ends one night into existing", 5, 11, true},
		{"starts on last existing night", 14, 16, true},
		{"identical", 10, 15, true},
		{"inside", 11, 13, true},
		{"covers", 1, 20, true},
		{"entirely before", 1, 5, false},
		{"entirely after", 20, 25, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			candidate := span(t, c.start, c.end)
			assert.Equal(t, c.want, candidate.Overlaps(existing))
			assert.Equal(t, c.want, existing.Overlaps(candidate), "overlap must be symmetric")
		})
	}
}

func TestNewWindow(t *testing.T) {
	w, err := reservation.NewWindow(d(10), d(10))
	require.NoError(t, err)
	assert.Equal(t, d(10), w.Start())
	assert.Equal(t, d(10), w.End())

	_, err = reservation.NewWindow(d(11), d(10))
	require.ErrorIs(t, err, reservation.ErrInvalidWindow)
}

func TestDateRange_EndsBefore(t *testing.T) {
	r := span(t, 10, 15)

	assert.True(t, r.EndsBefore(d(16)))
	assert.False(t, r.EndsBefore(d(15)), "checkout day is not yet expired")
	assert.False(t, r.EndsBefore(d(12)))
	assert.True(t, r.EndsBefore(d(16).Add(23*time.Hour)))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 600, reservation.TotalPrice(span(t, 10, 13), 200))
	assert.Equal(t, 0, reservation.TotalPrice(span(t, 10, 13), 0))
	assert.Equal(t, 0, reservation.TotalPrice(span(t, 10, 13), -5))
}

func TestNewStatus(t *testing.T) {
	s, err := reservation.NewStatus("  Confirmed ")
	require.NoError(t, err)
	assert.Equal(t, "Confirmed", s.String())

	_, err = reservation.NewStatus("   ")
	require.ErrorIs(t, err, reservation.ErrEmptyStatus)

	long := make([]rune, 51)
	for i := range long {
		long[i] = 'x'
	}
	_, err = reservation.NewStatus(string(long))
	require.ErrorIs(t, err, reservation.ErrStatusTooLong)
}
