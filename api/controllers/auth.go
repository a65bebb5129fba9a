package controllers

import (
	"net/http"
	"time"

	"github.com/riwi/jobboard-backend/api/middleware"
	"github.com/riwi/jobboard-backend/api/responses"
	"github.com/riwi/jobboard-backend/api/validators"
	"github.com/riwi/jobboard-backend/internal/auth"
	"github.com/riwi/jobboard-backend/pkg/config"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
)

const logoutMessage = "Logged out"

// AuthRegister creates a coder account and signs it in.
func AuthRegister(svc auth.RegisterService, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "register service unavailable")
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		var body auth.RegisterRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		result, err := svc.Register(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		setIdentityCookie(w, cfg, result.AccessToken, result.ExpiresAt)
		responses.WriteSuccessStatus(w, http.StatusCreated, result, "")
	}
}

// AuthLogin wires the login endpoint into the HTTP layer.
func AuthLogin(svc auth.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			err := pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable")
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		var body auth.LoginRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		result, err := svc.Login(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, r, err)
			return
		}

		setIdentityCookie(w, cfg, result.AccessToken, result.ExpiresAt)
		responses.WriteSuccess(w, result)
	}
}

// AuthLogout always succeeds: the cookie is cleared and, when the request
// still carries a token, its session is revoked.
func AuthLogout(svc auth.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc != nil {
			if token := middleware.TokenFromRequest(r, cfg.JWT.Cookie()); token != "" {
				svc.Logout(r.Context(), token)
			}
		}
		clearIdentityCookie(w, cfg)
		responses.WriteSuccessStatus(w, http.StatusOK, map[string]string{"message": logoutMessage}, logoutMessage)
	}
}

func setIdentityCookie(w http.ResponseWriter, cfg *config.Config, token string, expiresAt time.Time) {
	if token == "" {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.JWT.Cookie(),
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		MaxAge:   int(cfg.JWT.TTL().Seconds()),
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteStrictMode,
	})
}

func clearIdentityCookie(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.JWT.Cookie(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteStrictMode,
	})
}
