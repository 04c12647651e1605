//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"hotel-reservation/internal/domain/user"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/password"
	"hotel-reservation/internal/usecase/commands"
	"hotel-reservation/tests/common/builder"
	"hotel-reservation/tests/common/memstore"
	"hotel-reservation/tests/common/testutil"
	commandsmock "hotel-reservation/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memstore.Store
	mockCtrl *gomock.Controller
	tokens   *commandsmock.MockTokenIssuer
	cmds     commands.AuthCommands
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.tokens = commandsmock.NewMockTokenIssuer(s.mockCtrl)
	s.cmds = commands.NewAuthCommands(s.store, s.tokens)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *AuthCommandsTestSuite) TestRegister() {
	created, err := s.cmds.Register(s.ctx, builder.NewUserBuilder().WithUsername("alice").BuildRegisterDTO())
	s.Require().NoError(err)

	s.Equal("alice", created.Username().Value())
	s.Equal(user.Roles{user.RoleUser}, created.Roles())
	s.NotEqual("password123", created.PasswordHash())
	s.NoError(password.Verify(created.PasswordHash(), "password123"))

	s.Run("duplicate username", func() {
		_, err := s.cmds.Register(s.ctx, builder.NewUserBuilder().WithUsername("alice").BuildRegisterDTO())
		testutil.RequireMarked(s.T(), err, errs.ErrUsernameTaken)
		s.Len(s.store.Users(), 1)
	})

	s.Run("malformed username", func() {
		_, err := s.cmds.Register(s.ctx, builder.NewUserBuilder().WithUsername("a b").BuildRegisterDTO())
		testutil.RequireMarked(s.T(), err, errs.ErrInvalidArgument)
	})

	s.Run("weak password", func() {
		_, err := s.cmds.Register(s.ctx, builder.NewUserBuilder().WithUsername("bob").WithPassword("short").BuildRegisterDTO())
		testutil.RequireMarked(s.T(), err, errs.ErrInvalidArgument)
	})
}

func (s *AuthCommandsTestSuite) registered(username string) *user.User {
	u, err := s.cmds.Register(s.ctx, builder.NewUserBuilder().WithUsername(username).BuildRegisterDTO())
	s.Require().NoError(err)
	return u
}

func (s *AuthCommandsTestSuite) TestLogin() {
	u := s.registered("carol")

	s.Run("success", func() {
		s.tokens.EXPECT().GenerateToken(u.ID(), "carol", user.Roles{user.RoleUser}).Return("signed-token", nil)

		result, err := s.cmds.Login(s.ctx, reqdto.LoginRequest{Username: "carol", Password: "password123"})
		s.Require().NoError(err)
		s.Equal("signed-token", result.AccessToken)
		s.Equal(u.ID(), result.UserID)
		s.Equal([]string{"user"}, result.Roles)
	})

	cases := []struct {
		name string
		req  reqdto.LoginRequest
	}{
		{"wrong password", reqdto.LoginRequest{Username: "carol", Password: "wrong-password"}},
		{"unknown user", reqdto.LoginRequest{Username: "nobody", Password: "password123"}},
		{"malformed username", reqdto.LoginRequest{Username: "!", Password: "password123"}},
	}
	for _, c := range cases {
		s.Run(c.name, func() {
			_, err := s.cmds.Login(s.ctx, c.req)
			testutil.RequireMarked(s.T(), err, errs.ErrInvalidCredentials)
		})
	}

	s.Run("token signing failure", func() {
		s.tokens.EXPECT().GenerateToken(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("no key"))

		_, err := s.cmds.Login(s.ctx, reqdto.LoginRequest{Username: "carol", Password: "password123"})
		testutil.RequireMarked(s.T(), err, commands.ErrTokenGeneration)
	})
}
