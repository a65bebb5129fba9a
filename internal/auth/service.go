package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/internal/users"
	pkgAuth "github.com/riwi/jobboard-backend/pkg/auth"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/security"
)

const invalidCredentialsMessage = "Invalid credentials"

// Service defines the behavior needed by the auth controller for existing
// accounts.
type Service interface {
	Login(ctx context.Context, req LoginRequest) (*Result, error)
	Logout(ctx context.Context, token string)
}

type userRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type sessionManager interface {
	sessionRegistrar
	sessionRevoker
}

// ServiceParams bundles the dependencies required to build an auth service.
// SessionManager is optional; without it tokens are valid until they expire.
type ServiceParams struct {
	UserRepo       userRepository
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	Logger         *logger.Logger
}

type service struct {
	users    userRepository
	sessions sessionManager
	jwtCfg   config.JWTConfig
	logg     *logger.Logger
	now      func() time.Time
}

// NewService constructs a login service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.UserRepo == nil {
		return nil, fmt.Errorf("user repository is required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &service{
		users:    params.UserRepo,
		sessions: params.SessionManager,
		jwtCfg:   params.JWTConfig,
		logg:     logg,
		now:      time.Now,
	}, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*Result, error) {
	user, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	var registrar sessionRegistrar
	if s.sessions != nil {
		registrar = s.sessions
	}
	token, expiresAt, err := issueToken(ctx, s.jwtCfg, registrar, user, s.now().UTC())
	if err != nil {
		return nil, err
	}

	ctx = s.logg.WithUserID(ctx, user.ID)
	s.logg.Info(s.logg.WithActorRole(ctx, string(user.Role)), "auth.login")
	return &Result{
		User:        users.FromModel(user),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout revokes the token's session entry when both exist. It never fails:
// an unreadable or already revoked token still ends in a cleared cookie.
func (s *service) Logout(ctx context.Context, token string) {
	if s.sessions == nil || strings.TrimSpace(token) == "" {
		return
	}
	claims, err := pkgAuth.ParseAccessTokenAllowExpired(s.jwtCfg, token)
	if err != nil {
		return
	}
	if err := s.sessions.Revoke(ctx, claims.ID); err != nil {
		s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), "auth.logout_revoke_failed")
	}
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.User, error) {
	input := users.NormalizeEmail(email)
	if input == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	user, err := s.users.FindByEmail(ctx, input)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "lookup user")
	}

	valid, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid || user.Status != models.UserStatusActive {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return user, nil
}
