package middleware

import (
	"net/http"
	"strings"

	"github.com/riwi/jobboard-backend/api/responses"
	pkgerrors "github.com/riwi/jobboard-backend/pkg/errors"
	"github.com/riwi/jobboard-backend/pkg/logger"
	"github.com/riwi/jobboard-backend/pkg/security"
)

// APIKeyHeader carries the shared client key.
const APIKeyHeader = "x-api-key"

// APIKey rejects requests whose x-api-key header does not match expected. It
// runs before identity proof so an unknown client never reaches token
// parsing.
func APIKey(expected string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := strings.TrimSpace(r.Header.Get(APIKeyHeader))
			if !security.ConstantTimeEqual(provided, expected) {
				responses.WriteError(r.Context(), logg, w, r, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid or missing API key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
