//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"hotel-reservation/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DefaultPassword matches the bcrypt hash stored by CreateTestUser.
const DefaultPassword = "password123"

var defaultPasswordHash = sync.OnceValues(func() (string, error) {
	return password.Hash(DefaultPassword)
})

func CreateTestUser(t *testing.T, db DBLike, username string, roles ...string) uuid.UUID {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{"user"}
	}

	hash, err := defaultPasswordHash()
	require.NoError(t, err)

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, username, password_hash, roles) VALUES ($1, $2, $3, $4) ON CONFLICT (username) DO NOTHING",
		userID, username, hash, roles)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE username = $1", username).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestRoom(t *testing.T, db DBLike, number int, roomType string) uuid.UUID {
	t.Helper()

	var roomID uuid.UUID
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (room_number, room_type, capacity, price_per_night, beds) VALUES ($1, $2, 2, 100, 1) RETURNING id",
		number, roomType).Scan(&roomID)
	require.NoError(t, err)

	return roomID
}

// CreateTestReservation writes directly, bypassing the conflict check.
func CreateTestReservation(t *testing.T, db DBLike, roomID, userID uuid.UUID, start, end string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO reservations (id, room_id, user_id, start_date, end_date, added_date, status) VALUES ($1, $2, $3, $4::date, $5::date, $4::date, 'Pending')",
		id, roomID, userID, start, end)
	require.NoError(t, err)

	return id
}

func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
