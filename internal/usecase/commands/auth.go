package commands

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"hotel-reservation/internal/domain/user"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/infra"
	"hotel-reservation/internal/pkg/errs"
	"hotel-reservation/internal/pkg/password"
	"hotel-reservation/internal/usecase/shared"
)

var ErrTokenGeneration = errs.New("token generation failed")

type LoginResult struct {
	UserID      uuid.UUID
	Username    string
	Roles       []string
	AccessToken string
}

type AuthCommands interface {
	Register(ctx context.Context, req reqdto.RegisterRequest) (*user.User, error)
	Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error)
}

type TokenIssuer interface {
	GenerateToken(userID uuid.UUID, username string, roles user.Roles) (string, error)
}

type authCommandsImpl struct {
	uow    shared.UnitOfWork
	tokens TokenIssuer
}

func NewAuthCommands(uow shared.UnitOfWork, tokens TokenIssuer) AuthCommands {
	return &authCommandsImpl{
		uow:    uow,
		tokens: tokens,
	}
}

// Register creates an account with the user role.
func (a *authCommandsImpl) Register(ctx context.Context, req reqdto.RegisterRequest) (*user.User, error) {
	name, pw, err := req.ToDomain()
	if err != nil {
		return nil, invalid(err)
	}
	hash, err := password.Hash(pw.Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	var created *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, err = tx.Users().Create(ctx, tx.DB(), user.NewUser(name, hash, user.Roles{user.RoleUser}))
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrUsernameTaken)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("user registered", "user_id", created.ID().String(), "username", created.Username().Value())
	return created, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, req reqdto.LoginRequest) (*LoginResult, error) {
	credentials, err := req.ToDomain()
	if err != nil {
		// Malformed usernames cannot exist; answer like a wrong password
		return nil, errs.ErrInvalidCredentials
	}

	var found *user.User
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err = tx.Users().FindByUsername(ctx, tx.DB(), credentials.Username())
		return err
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password to prevent user enumeration
			return nil, errs.ErrInvalidCredentials
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := password.Verify(found.PasswordHash(), credentials.Password()); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.tokens.GenerateToken(found.ID(), found.Username().Value(), found.Roles())
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		UserID:      found.ID(),
		Username:    found.Username().Value(),
		Roles:       found.Roles().Strings(),
		AccessToken: token,
	}, nil
}
