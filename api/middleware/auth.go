package middleware

import (
	"net/http"
	"strings"

	"github.com/riwi/jobboard-backend/api/responses"
	"github.com/riwi/jobboard-backend/internal/access"
	pkgAuth "github.com/riwi/jobboard-backend/pkg/auth"
	"github.com/riwi/jobboard-backend/pkg/auth/session"
	"github.com/riwi/jobboard-backend/pkg/config"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
)

// Auth proves identity from the access_token cookie, falling back to a bearer
// header, and seeds the request context with the principal. A nil verifier
// skips the session registry check.
func Auth(cfg config.JWTConfig, verifier session.AccessSessionChecker, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := TokenFromRequest(r, cfg.Cookie())
			if token == "" {
				responses.WriteError(r.Context(), logg, w, r, pkgerrors.New(pkgerrors.CodeUnauthorized, "Authentication required"))
				return
			}

			claims, err := pkgAuth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, r, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "Invalid or expired token"))
				return
			}
			userID, err := claims.UserID()
			if err != nil || claims.ID == "" {
				responses.WriteError(r.Context(), logg, w, r, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid or expired token"))
				return
			}

			if verifier != nil {
				ok, err := verifier.HasSession(r.Context(), claims.ID)
				if err != nil {
					responses.WriteError(r.Context(), logg, w, r, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "validate session"))
					return
				}
				if !ok {
					responses.WriteError(r.Context(), logg, w, r, pkgerrors.New(pkgerrors.CodeUnauthorized, "Session expired or revoked"))
					return
				}
			}

			ctx := access.WithPrincipal(r.Context(), &access.Principal{
				UserID:  userID,
				Email:   claims.Email,
				Role:    claims.Role,
				TokenID: claims.ID,
			})
			if logg != nil {
				ctx = logg.WithUserID(ctx, userID)
				ctx = logg.WithActorRole(ctx, string(claims.Role))
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TokenFromRequest returns the access token from the named cookie or the
// Authorization header, in that order.
func TokenFromRequest(r *http.Request, cookieName string) string {
	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil {
			if v := strings.TrimSpace(c.Value); v != "" {
				return v
			}
		}
	}
	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(raw) > 7 && strings.EqualFold(raw[:7], "bearer ") {
		return strings.TrimSpace(raw[7:])
	}
	return ""
}
