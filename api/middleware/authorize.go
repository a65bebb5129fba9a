package middleware

import (
	"net/http"

	"github.com/riwi/jobboard-backend/api/responses"
	"github.com/riwi/jobboard-backend/internal/access"
	"github.com/riwi/jobboard-backend/pkg/logger"
)

// Authorize consults the permission table for op. Routes that need a
// principal must mount Auth before it.
func Authorize(op access.Operation, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if logg != nil {
				ctx = logg.WithOperation(ctx, string(op))
			}
			if err := access.Decide(access.PrincipalFrom(ctx), op); err != nil {
				responses.WriteError(ctx, logg, w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
