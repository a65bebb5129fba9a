package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/riwi/jobboard-backend/internal/users"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	"github.com/riwi/jobboard-backend/pkg/enums"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/security"
)

const emailExistsMessage = "Email already exists"

// RegisterService handles public sign-up.
type RegisterService interface {
	Register(ctx context.Context, req RegisterRequest) (*Result, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// RegisterServiceParams packages the dependencies for the registration flow.
type RegisterServiceParams struct {
	DB             txRunner
	PasswordConfig config.PasswordConfig
	JWTConfig      config.JWTConfig
	SessionManager sessionRegistrar
	Logger         *logger.Logger
}

type registerService struct {
	db       txRunner
	hasher   security.Hasher
	jwtCfg   config.JWTConfig
	sessions sessionRegistrar
	logg     *logger.Logger
	now      func() time.Time
}

// NewRegisterService builds a registration service with the provided dependencies.
func NewRegisterService(params RegisterServiceParams) (RegisterService, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client required")
	}
	logg := params.Logger
	if logg == nil {
		logg = logger.Nop()
	}
	return &registerService{
		db:       params.DB,
		hasher:   security.NewHasher(params.PasswordConfig),
		jwtCfg:   params.JWTConfig,
		sessions: params.SessionManager,
		logg:     logg,
		now:      time.Now,
	}, nil
}

func (s *registerService) Register(ctx context.Context, req RegisterRequest) (*Result, error) {
	email := users.NormalizeEmail(req.Email)
	name := strings.TrimSpace(req.Name)
	if email == "" || name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name and email are required")
	}
	if len(req.Password) < 6 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "password must be at least 6 characters")
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		Role:         enums.RoleCoder,
		Status:       models.UserStatusActive,
	}
	err = s.db.WithTx(ctx, func(tx *gorm.DB) error {
		userRepo := users.NewRepository(tx)

		taken, err := userRepo.EmailInUse(ctx, email, 0)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check user email")
		}
		if taken {
			return pkgerrors.New(pkgerrors.CodeConflict, emailExistsMessage)
		}
		if err := userRepo.Create(ctx, user); err != nil {
			if db.IsUniqueViolation(err, "") {
				return pkgerrors.Wrap(pkgerrors.CodeConflict, err, emailExistsMessage)
			}
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create user")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, expiresAt, err := issueToken(ctx, s.jwtCfg, s.sessions, user, s.now().UTC())
	if err != nil {
		return nil, err
	}

	s.logg.Info(s.logg.WithUserID(ctx, user.ID), "auth.registered")
	return &Result{
		User:        users.FromModel(user),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
