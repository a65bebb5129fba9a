package auth

import (
	"context"
	"time"

	pkgAuth "github.com/riwi/jobboard-backend/pkg/auth"
	"github.com/riwi/jobboard-backend/pkg/config"
	"github.com/riwi/jobboard-backend/pkg/db/models"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
)

type sessionRegistrar interface {
	Register(ctx context.Context, accessID string, userID uint, expiresAt time.Time) error
}

type sessionRevoker interface {
	Revoke(ctx context.Context, accessID string) error
}

// issueToken signs an access token for user and records its jti when a
// session registry is configured.
func issueToken(ctx context.Context, cfg config.JWTConfig, sessions sessionRegistrar, user *models.User, now time.Time) (string, time.Time, error) {
	token, claims, err := pkgAuth.MintAccessToken(cfg, now, pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		return "", time.Time{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	expiresAt := claims.ExpiresAt.Time
	if sessions != nil {
		if err := sessions.Register(ctx, claims.ID, user.ID, expiresAt); err != nil {
			return "", time.Time{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "register session")
		}
	}
	return token, expiresAt, nil
}
