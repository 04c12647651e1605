//go:build unit

package repository

import (
	"context"
	"testing"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/internal/infra"
	sqlc "hotel-reservation/internal/infra/sqlc/generated"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserWriteQueries struct {
	mock.Mock
}

func (m *MockUserWriteQueries) CreateUser(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateUserParams) (sqlc.Users, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserWriteQueries) GetUserByUsername(ctx context.Context, db sqlc.DBTX, username string) (sqlc.Users, error) {
	args := m.Called(ctx, db, username)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func TestUserRepository_FindByUsername(t *testing.T) {
	name, err := user.NewUsername("alice")
	require.NoError(t, err)
	stored := sqlc.Users{
		ID:           uuid.New(),
		Username:     "alice",
		PasswordHash: "hash",
		Roles:        []string{"user", "admin"},
	}

	tests := []struct {
		name     string
		row      sqlc.Users
		mockErr  error
		wantKind infra.RepositoryErrorKind
	}{
		{name: "success", row: stored},
		{name: "not found", mockErr: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", mockErr: assert.AnError, wantKind: infra.KindDBFailure},
		{name: "corrupted roles", row: sqlc.Users{ID: stored.ID, Username: "alice", Roles: []string{"root"}}, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockUserWriteQueries)
			q.On("GetUserByUsername", mock.Anything, mock.Anything, "alice").Return(tt.row, tt.mockErr)

			repo := NewUserRepository(q)
			got, err := repo.FindByUsername(context.Background(), nil, name)

			if tt.wantKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, stored.ID, got.ID())
				assert.True(t, got.Roles().IsAdmin())
				assert.Equal(t, "hash", got.PasswordHash())
			}
			q.AssertExpectations(t)
		})
	}
}

func TestUserRepository_Create(t *testing.T) {
	name, err := user.NewUsername("bob")
	require.NoError(t, err)
	u := user.NewUser(name, "hash", nil)

	t.Run("success", func(t *testing.T) {
		q := new(MockUserWriteQueries)
		q.On("CreateUser", mock.Anything, mock.Anything, mock.MatchedBy(func(p sqlc.CreateUserParams) bool {
			return p.ID == u.ID() && p.Username == "bob" && assert.ObjectsAreEqual([]string{"user"}, p.Roles)
		})).Return(sqlc.Users{ID: u.ID(), Username: "bob", PasswordHash: "hash", Roles: []string{"user"}}, nil)

		got, err := NewUserRepository(q).Create(context.Background(), nil, u)

		require.NoError(t, err)
		assert.Equal(t, u.ID(), got.ID())
		q.AssertExpectations(t)
	})

	t.Run("duplicate username", func(t *testing.T) {
		q := new(MockUserWriteQueries)
		dup := &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
		q.On("CreateUser", mock.Anything, mock.Anything, mock.Anything).Return(sqlc.Users{}, dup)

		_, err := NewUserRepository(q).Create(context.Background(), nil, u)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
		assert.Equal(t, "users_username_key", infra.ConstraintOf(err))
	})
}
