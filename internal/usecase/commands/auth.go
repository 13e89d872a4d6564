package commands

import (
	"context"
	"log/slog"

	"leadpipe/internal/domain/auth"
	"leadpipe/internal/domain/user"
	"leadpipe/internal/infra"
	"leadpipe/internal/infra/db"
	"leadpipe/internal/pkg/errs"
	"leadpipe/internal/pkg/jwt"
	"leadpipe/internal/pkg/password"
	"leadpipe/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("account is inactive")
)

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}

type LoginResult struct {
	AccessToken string
	UserID      uuid.UUID
	Email       string
	Role        string
}

type AuthCommands interface {
	Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error)
}

type authCommandsImpl struct {
	userStore  queries.UserReadStore
	userRepo   UserRepository
	jwtService *jwt.Service
	pool       *pgxpool.Pool
}

func NewAuthCommands(
	userStore queries.UserReadStore,
	userRepo UserRepository,
	jwtService *jwt.Service,
	pool *pgxpool.Pool,
) AuthCommands {
	return &authCommandsImpl{
		userStore:  userStore,
		userRepo:   userRepo,
		jwtService: jwtService,
		pool:       pool,
	}
}

func (c *authCommandsImpl) Login(ctx context.Context, credentials auth.Credentials) (*LoginResult, error) {
	view, err := c.userStore.FindCredentialsByEmail(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same answer as a wrong password so emails cannot be probed.
			return nil, ErrInvalidCredentials
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !view.IsActive {
		return nil, ErrUserInactive
	}

	if err := password.ComparePassword(view.PasswordHash, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	token, err := c.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate token")
	}

	if err := c.userRepo.UpdateLastLogin(ctx, c.pool, view.ID); err != nil {
		// Login still succeeds; the timestamp is best-effort bookkeeping.
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err)
	}

	return &LoginResult{
		AccessToken: token,
		UserID:      view.ID,
		Email:       view.Email,
		Role:        view.Role,
	}, nil
}
